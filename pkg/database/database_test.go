package database_test

import (
	"testing"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/Eursukkul/restaurant-booking/pkg/database"
	"github.com/Eursukkul/restaurant-booking/pkg/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MigratesSchema(t *testing.T) {
	db := dbtest.New(t)

	assert.True(t, db.Migrator().HasTable(&models.Restaurant{}))
	assert.True(t, db.Migrator().HasTable(&models.Booking{}))
	assert.True(t, db.Migrator().HasColumn(&models.Restaurant{}, "daily_commission_rate"))
	assert.True(t, db.Migrator().HasColumn(&models.Booking{}, "deposit_amount"))
}

func TestOpen_ForeignKeysEnforced(t *testing.T) {
	db := dbtest.New(t)

	err := db.Create(&models.Booking{
		RestaurantID: 404,
		CustomerName: "Nobody",
		PartySize:    2,
		BookingTime:  time.Date(2025, 11, 20, 19, 0, 0, 0, time.UTC),
		Status:       models.StatusConfirmed,
	}).Error

	assert.Error(t, err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := database.Open(database.Options{Driver: "oracle", DSN: "x"})

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "oracle")
}
