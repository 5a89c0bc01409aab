package validator

import (
	"net/http"
	"testing"

	"github.com/Eursukkul/restaurant-booking/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&dto.SearchRequest{Date: "2025-11-20", Time: "19:00", PartySize: 2})

	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&dto.SearchRequest{Date: "2025-11-20", PartySize: 0})

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, he.Message, "time is required")
	assert.Contains(t, he.Message, "partySize is required")
}

func TestValidate_BookRequest(t *testing.T) {
	v := New()

	err := v.Validate(&dto.BookRequest{
		RestaurantID: 1,
		PartySize:    2,
		BookingTime:  "2025-11-20T19:00:00",
		Deposit:      -5,
	})

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "deposit must be at least 0", he.Message)
}

func TestValidate_OptionalPointer(t *testing.T) {
	v := New()
	rate := 12.5

	assert.NoError(t, v.Validate(&dto.CreateRestaurantRequest{Name: "Cafe", Capacity: 4}))

	err := v.Validate(&dto.CreateRestaurantRequest{Name: "Cafe", Capacity: 4, DailyCommissionRate: &rate})
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "daily_commission_rate must be less than 10", he.Message)
}
