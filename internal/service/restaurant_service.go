package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/Eursukkul/restaurant-booking/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RestaurantService interface {
	CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error
	GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	SyncRestaurant(ctx context.Context, restaurant *models.Restaurant) error
}

type restaurantService struct {
	repo repository.RestaurantRepository
	log  logrus.FieldLogger
}

func NewRestaurantService(repo repository.RestaurantRepository, log logrus.FieldLogger) RestaurantService {
	return &restaurantService{repo: repo, log: log}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	if restaurant.Name == "" || restaurant.Capacity <= 0 {
		return fmt.Errorf("%w: name and capacity (>0) are required", ErrInvalidRestaurant)
	}
	if err := s.repo.Create(ctx, restaurant); err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	s.log.WithField("restaurant_id", restaurant.ID).Info("restaurant created")
	return nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("find restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.repo.FindAll(ctx)
}

// SyncRestaurant applies a restaurant snapshot received from another system.
func (s *restaurantService) SyncRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	if restaurant.ID == 0 || restaurant.Name == "" || restaurant.Capacity <= 0 {
		return fmt.Errorf("%w: id, name and capacity (>0) are required", ErrInvalidRestaurant)
	}
	if err := s.repo.Upsert(ctx, restaurant); err != nil {
		return fmt.Errorf("upsert restaurant %d: %w", restaurant.ID, err)
	}
	return nil
}
