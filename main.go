package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Eursukkul/restaurant-booking/config"
	"github.com/Eursukkul/restaurant-booking/internal/consumer"
	"github.com/Eursukkul/restaurant-booking/internal/handler"
	"github.com/Eursukkul/restaurant-booking/internal/jobs"
	"github.com/Eursukkul/restaurant-booking/internal/middleware"
	"github.com/Eursukkul/restaurant-booking/internal/repository"
	"github.com/Eursukkul/restaurant-booking/internal/service"
	"github.com/Eursukkul/restaurant-booking/internal/validator"
	"github.com/Eursukkul/restaurant-booking/pkg/database"
	"github.com/Eursukkul/restaurant-booking/pkg/logger"
	"github.com/Eursukkul/restaurant-booking/pkg/rabbitmq"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(database.Options{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DSN(),
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		ConnMaxIdleTime: cfg.DBConnIdleTime,
		Writer:          log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	loc := cfg.Location()

	// Repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// RabbitMQ is optional; without it bookings are not announced and the
	// catalogue is only managed over HTTP.
	var publisher service.Publisher
	restaurantSvc := service.NewRestaurantService(restaurantRepo, log)

	if cfg.MessagingEnabled() {
		mqPublisher, err := rabbitmq.NewPublisher(cfg.RabbitURL, rabbitmq.BookingExchange, log)
		if err != nil {
			log.WithError(err).Fatal("failed to connect RabbitMQ publisher")
		}
		defer mqPublisher.Close()
		publisher = mqPublisher

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, rabbitmq.RestaurantExchange,
			rabbitmq.RestaurantQueue, rabbitmq.RestaurantBindingKey, log)
		if err != nil {
			log.WithError(err).Fatal("failed to connect RabbitMQ consumer")
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.WithError(err).Fatal("failed to start consuming")
		}
		consumer.NewRestaurantConsumer(restaurantSvc, log).Start(ctx, msgs)
	} else {
		log.Info("RABBITMQ_URL not set, messaging disabled")
	}

	// Services
	availabilitySvc := service.NewAvailabilityService(restaurantRepo, loc, log)
	bookingSvc := service.NewBookingService(bookingRepo, publisher, log)

	// Jobs
	sched, err := jobs.Schedule(ctx, jobs.NewCompletionJob(bookingRepo, log), cfg.CompletionSchedule, loc)
	if err != nil {
		log.WithError(err).Fatal("failed to schedule completion job")
	}
	sched.Start()

	e := newServer(cfg, log)
	api := e.Group("/api")
	handler.NewBookingHandler(availabilitySvc, bookingSvc, loc).RegisterRoutes(api)
	handler.NewRestaurantHandler(restaurantSvc, bookingSvc).RegisterRoutes(api.Group("/restaurants"))

	go func() {
		log.WithField("port", cfg.ServerPort).Info("restaurant booking service starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	<-sched.Stop().Done()
}

func newServer(cfg *config.Config, log *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(log)

	e.Use(echoMw.Recover())
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			}).Info("request")
			return nil
		},
	}))
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{AllowOrigins: cfg.CORSAllowOrigins}))
	if cfg.RateLimitRPS > 0 {
		e.Use(echoMw.RateLimiterWithConfig(echoMw.RateLimiterConfig{
			Skipper: func(c echo.Context) bool { return c.Path() == "/health" },
			Store: echoMw.NewRateLimiterMemoryStoreWithConfig(echoMw.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.RateLimitRPS),
				Burst: cfg.RateLimitBurst,
			}),
		}))
	}
	if cfg.StaticDir != "" {
		e.Use(echoMw.StaticWithConfig(echoMw.StaticConfig{
			Root:  cfg.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api")
			},
		}))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "restaurant-booking"})
	})
	return e
}
