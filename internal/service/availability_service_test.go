package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Success(t *testing.T) {
	var gotFrom, gotTo time.Time
	var gotParty int
	repo := &mockRestaurantRepo{
		findAvailableFn: func(ctx context.Context, from, to time.Time, partySize int) ([]models.Availability, error) {
			gotFrom, gotTo, gotParty = from, to, partySize
			return []models.Availability{
				{ID: 1, Name: "The Local Bistro", Capacity: 20, Cuisine: "French", BookedCount: 6},
			}, nil
		},
	}

	svc := NewAvailabilityService(repo, time.UTC, quietLogger())
	rows, err := svc.Search(context.Background(), "2025-11-20", "19:00", 2)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 14, rows[0].AvailableSlots())
	assert.Equal(t, time.Date(2025, 11, 20, 18, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2025, 11, 20, 19, 0, 0, 0, time.UTC), gotTo)
	assert.Equal(t, 2, gotParty)
}

func TestSearch_InvalidSlot(t *testing.T) {
	repo := &mockRestaurantRepo{
		findAvailableFn: func(ctx context.Context, from, to time.Time, partySize int) ([]models.Availability, error) {
			t.Fatal("repository must not be queried for an invalid slot")
			return nil, nil
		},
	}

	svc := NewAvailabilityService(repo, nil, quietLogger())
	rows, err := svc.Search(context.Background(), "not-a-date", "19:00", 2)

	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Nil(t, rows)
}

func TestSearch_RepoError(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &mockRestaurantRepo{
		findAvailableFn: func(ctx context.Context, from, to time.Time, partySize int) ([]models.Availability, error) {
			return nil, dbErr
		},
	}

	svc := NewAvailabilityService(repo, time.UTC, quietLogger())
	_, err := svc.Search(context.Background(), "2025-11-20", "19:00", 2)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidSlot)
}
