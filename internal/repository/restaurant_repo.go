package repository

import (
	"context"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *models.Restaurant) error
	Upsert(ctx context.Context, restaurant *models.Restaurant) error
	FindByID(ctx context.Context, id uint) (*models.Restaurant, error)
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	FindAvailable(ctx context.Context, from, to time.Time, partySize int) ([]models.Availability, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

// Upsert inserts the restaurant or overwrites the row with the same id.
// On postgres the id sequence is moved past the highest id afterwards, since
// explicit ids never advance it and a later Create would collide.
func (r *restaurantRepository) Upsert(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "capacity", "subscription_active", "daily_commission_rate", "city", "cuisine",
			}),
		}).Create(restaurant).Error
		if err != nil {
			return err
		}
		if tx.Dialector.Name() != "postgres" {
			return nil
		}
		return tx.Exec(`SELECT setval(pg_get_serial_sequence('restaurants', 'id'), GREATEST((SELECT MAX(id) FROM restaurants), 1))`).Error
	})
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindAvailable sums the party sizes of non-cancelled bookings with
// booking_time in [from, to] per subscribed restaurant and keeps the
// restaurants that can still seat partySize on top of that sum.
// Cancelled bookings are left out because a cancelled table is free again.
// No API path writes that status yet, so only rows cancelled outside the
// service are affected.
func (r *restaurantRepository) FindAvailable(ctx context.Context, from, to time.Time, partySize int) ([]models.Availability, error) {
	rows := make([]models.Availability, 0)
	err := r.db.WithContext(ctx).
		Table("restaurants AS r").
		Select("r.id, r.name, r.capacity, r.cuisine, COALESCE(SUM(b.party_size), 0) AS booked_count").
		Joins("LEFT JOIN bookings b ON r.id = b.restaurant_id AND b.booking_time >= ? AND b.booking_time <= ? AND b.status <> ?",
			from, to, models.StatusCancelled).
		Where("r.subscription_active = ?", true).
		Group("r.id, r.name, r.capacity, r.cuisine").
		Having("r.capacity >= ? + COALESCE(SUM(b.party_size), 0)", partySize).
		Order("r.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
