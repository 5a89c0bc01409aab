package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/Eursukkul/restaurant-booking/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

type RestaurantSyncer interface {
	SyncRestaurant(ctx context.Context, restaurant *models.Restaurant) error
}

// RestaurantConsumer applies restaurant snapshots published by the catalogue
// owner (onboarding, capacity changes, subscription toggles).
type RestaurantConsumer struct {
	syncer RestaurantSyncer
	log    logrus.FieldLogger
	wg     sync.WaitGroup
}

func NewRestaurantConsumer(syncer RestaurantSyncer, log logrus.FieldLogger) *RestaurantConsumer {
	return &RestaurantConsumer{syncer: syncer, log: log}
}

// Start handles deliveries in a goroutine until msgs is closed.
func (rc *RestaurantConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) {
	rc.wg.Add(1)
	go func() {
		defer rc.wg.Done()
		for msg := range msgs {
			rc.handleMessage(ctx, msg)
		}
		rc.log.Info("restaurant consumer: channel closed, stopping")
	}()
}

// Wait blocks until the delivery loop has exited.
func (rc *RestaurantConsumer) Wait() {
	rc.wg.Wait()
}

func (rc *RestaurantConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var restaurant models.Restaurant
	if err := json.Unmarshal(msg.Body, &restaurant); err != nil {
		rc.log.WithError(err).WithField("routing_key", msg.RoutingKey).Warn("restaurant consumer: malformed payload")
		_ = msg.Nack(false, false)
		return
	}

	if err := rc.syncer.SyncRestaurant(ctx, &restaurant); err != nil {
		entry := rc.log.WithError(err).WithField("restaurant_id", restaurant.ID)
		if errors.Is(err, service.ErrInvalidRestaurant) {
			entry.Warn("restaurant consumer: rejected snapshot")
			_ = msg.Nack(false, false)
			return
		}
		entry.Error("restaurant consumer: sync failed, requeueing")
		_ = msg.Nack(false, true)
		return
	}

	rc.log.WithFields(logrus.Fields{
		"restaurant_id": restaurant.ID,
		"routing_key":   msg.RoutingKey,
	}).Info("restaurant consumer: synced")
	_ = msg.Ack(false)
}
