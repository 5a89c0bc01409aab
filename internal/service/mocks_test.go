package service

import (
	"context"
	"io"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/sirupsen/logrus"
)

// --- Mock RestaurantRepository ---

type mockRestaurantRepo struct {
	createFn        func(ctx context.Context, r *models.Restaurant) error
	upsertFn        func(ctx context.Context, r *models.Restaurant) error
	findByIDFn      func(ctx context.Context, id uint) (*models.Restaurant, error)
	findAllFn       func(ctx context.Context) ([]models.Restaurant, error)
	findAvailableFn func(ctx context.Context, from, to time.Time, partySize int) ([]models.Availability, error)
}

func (m *mockRestaurantRepo) Create(ctx context.Context, r *models.Restaurant) error {
	return m.createFn(ctx, r)
}
func (m *mockRestaurantRepo) Upsert(ctx context.Context, r *models.Restaurant) error {
	return m.upsertFn(ctx, r)
}
func (m *mockRestaurantRepo) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRestaurantRepo) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	return m.findAllFn(ctx)
}
func (m *mockRestaurantRepo) FindAvailable(ctx context.Context, from, to time.Time, partySize int) ([]models.Availability, error) {
	return m.findAvailableFn(ctx, from, to, partySize)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn         func(ctx context.Context, b *models.Booking) error
	findByIDFn       func(ctx context.Context, id uint) (*models.Booking, error)
	findByRestFn     func(ctx context.Context, restaurantID uint, status *models.BookingStatus) ([]models.Booking, error)
	completeBeforeFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.createFn(ctx, b)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByRestaurantID(ctx context.Context, restaurantID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return m.findByRestFn(ctx, restaurantID, status)
}
func (m *mockBookingRepo) CompleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.completeBeforeFn(ctx, cutoff)
}

// --- Mock Publisher ---

type publishedMessage struct {
	routingKey string
	payload    any
}

type mockPublisher struct {
	published []publishedMessage
	err       error
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.published = append(m.published, publishedMessage{routingKey: routingKey, payload: payload})
	return m.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
