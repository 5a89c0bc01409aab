package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/Eursukkul/restaurant-booking/internal/repository"
	"github.com/sirupsen/logrus"
)

type AvailabilityService interface {
	Search(ctx context.Context, date, clock string, partySize int) ([]models.Availability, error)
}

type availabilityService struct {
	repo repository.RestaurantRepository
	loc  *time.Location
	log  logrus.FieldLogger
}

func NewAvailabilityService(repo repository.RestaurantRepository, loc *time.Location, log logrus.FieldLogger) AvailabilityService {
	if loc == nil {
		loc = time.UTC
	}
	return &availabilityService{repo: repo, loc: loc, log: log}
}

func (s *availabilityService) Search(ctx context.Context, date, clock string, partySize int) ([]models.Availability, error) {
	target, err := ParseSlot(date, clock, s.loc)
	if err != nil {
		return nil, err
	}

	from, to := Window(target)
	rows, err := s.repo.FindAvailable(ctx, from, to, partySize)
	if err != nil {
		return nil, fmt.Errorf("find available restaurants: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"target":     target,
		"party_size": partySize,
		"matches":    len(rows),
	}).Debug("availability search")

	return rows, nil
}
