package repository

import (
	"context"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByRestaurantID(ctx context.Context, restaurantID uint, status *models.BookingStatus) ([]models.Booking, error)
	CompleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByRestaurantID(ctx context.Context, restaurantID uint, status *models.BookingStatus) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	q := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("booking_time ASC, id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CompleteBefore marks confirmed bookings that started before cutoff as completed.
func (r *bookingRepository) CompleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ? AND booking_time < ?", models.StatusConfirmed, cutoff).
		Update("status", models.StatusCompleted)
	return result.RowsAffected, result.Error
}
