package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/Eursukkul/restaurant-booking/pkg/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookingRepository_Create(t *testing.T) {
	db := dbtest.New(t)
	bistro := seedRestaurant(t, db, "The Local Bistro", 20, true)
	repo := NewBookingRepository(db)

	b := &models.Booking{
		RestaurantID:  bistro.ID,
		CustomerName:  "Demo User",
		PartySize:     2,
		BookingTime:   target,
		Status:        models.StatusConfirmed,
		DepositAmount: 100,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	assert.NotZero(t, b.ID)

	found, err := repo.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, found.Status)
	assert.True(t, target.Equal(found.BookingTime))
	assert.InDelta(t, 100.0, found.DepositAmount, 0.001)
}

func TestBookingRepository_Create_UnknownRestaurant(t *testing.T) {
	db := dbtest.New(t)
	repo := NewBookingRepository(db)

	err := repo.Create(context.Background(), &models.Booking{
		RestaurantID: 999,
		PartySize:    2,
		BookingTime:  target,
		Status:       models.StatusConfirmed,
	})

	assert.Error(t, err)
}

func TestBookingRepository_FindByID_NotFound(t *testing.T) {
	repo := NewBookingRepository(dbtest.New(t))

	_, err := repo.FindByID(context.Background(), 1)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingRepository_FindByRestaurantID(t *testing.T) {
	db := dbtest.New(t)
	bistro := seedRestaurant(t, db, "The Local Bistro", 20, true)
	cafe := seedRestaurant(t, db, "Cafe Solace", 10, true)
	seedBooking(t, db, bistro.ID, 2, target.Add(time.Hour), models.StatusConfirmed)
	seedBooking(t, db, bistro.ID, 4, target, models.StatusCompleted)
	seedBooking(t, db, cafe.ID, 3, target, models.StatusConfirmed)
	repo := NewBookingRepository(db)

	all, err := repo.FindByRestaurantID(context.Background(), bistro.ID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 4, all[0].PartySize, "ordered by booking time")

	confirmed := models.StatusConfirmed
	filtered, err := repo.FindByRestaurantID(context.Background(), bistro.ID, &confirmed)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].PartySize)

	none, err := repo.FindByRestaurantID(context.Background(), 999, nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestBookingRepository_CompleteBefore(t *testing.T) {
	db := dbtest.New(t)
	bistro := seedRestaurant(t, db, "The Local Bistro", 20, true)
	seedBooking(t, db, bistro.ID, 2, target.Add(-2*time.Hour), models.StatusConfirmed)
	seedBooking(t, db, bistro.ID, 2, target.Add(-3*time.Hour), models.StatusCancelled)
	seedBooking(t, db, bistro.ID, 2, target.Add(time.Hour), models.StatusConfirmed)
	repo := NewBookingRepository(db)

	n, err := repo.CompleteBefore(context.Background(), target)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	completed := models.StatusCompleted
	rows, err := repo.FindByRestaurantID(context.Background(), bistro.ID, &completed)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, target.Add(-2*time.Hour).Equal(rows[0].BookingTime))
}
