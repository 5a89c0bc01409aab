package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/Eursukkul/restaurant-booking/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const RoutingBookingCreated = "booking.created"

// Publisher announces domain events to other systems.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type CreateBookingInput struct {
	RestaurantID uint
	CustomerName string
	PartySize    int
	BookingTime  time.Time
	Deposit      float64
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, restaurantID uint, status *models.BookingStatus) ([]models.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher Publisher
	log       logrus.FieldLogger
}

// NewBookingService builds the service. A nil publisher disables event
// publication.
func NewBookingService(repo repository.BookingRepository, publisher Publisher, log logrus.FieldLogger) BookingService {
	return &bookingService{repo: repo, publisher: publisher, log: log}
}

// CreateBooking records a confirmed booking. Capacity is not re-checked here:
// availability is only filtered at search time, so concurrent bookings for
// the same slot can all succeed.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	booking := &models.Booking{
		RestaurantID:  in.RestaurantID,
		CustomerName:  in.CustomerName,
		PartySize:     in.PartySize,
		BookingTime:   normalize(in.BookingTime),
		Status:        models.StatusConfirmed,
		DepositAmount: in.Deposit,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"booking_id":    booking.ID,
		"restaurant_id": booking.RestaurantID,
		"party_size":    booking.PartySize,
	}).Info("booking created")

	if s.publisher != nil {
		if err := s.publisher.Publish(RoutingBookingCreated, booking); err != nil {
			s.log.WithError(err).WithField("booking_id", booking.ID).Warn("publish booking.created failed")
		}
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, restaurantID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return s.repo.FindByRestaurantID(ctx, restaurantID, status)
}
