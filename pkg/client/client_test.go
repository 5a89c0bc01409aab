package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eursukkul/restaurant-booking/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-11-20", body["date"])
		assert.Equal(t, "19:00", body["time"])
		assert.Equal(t, float64(2), body["partySize"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"The Local Bistro","capacity":10,"cuisine":"Filipino","booked_count":4,"available_slots":6}]`))
	}))
	defer srv.Close()

	got, err := New(srv.URL+"/").Search(context.Background(), dto.SearchRequest{Date: "2025-11-20", Time: "19:00", PartySize: 2})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Local Bistro", got[0].Name)
	assert.Equal(t, int64(4), got[0].BookedCount)
	assert.Equal(t, 6, got[0].AvailableSlots)
}

func TestBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/book", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Booking successful!","booking":{"id":9,"restaurant_id":1,"party_size":2,"status":"Confirmed"}}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).Book(context.Background(), dto.BookRequest{RestaurantID: 1, PartySize: 2, BookingTime: "2025-11-20T19:00:00"})

	require.NoError(t, err)
	assert.Equal(t, dto.BookingSuccessMessage, got.Message)
	assert.Equal(t, uint(9), got.Booking.ID)
}

func TestBook_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to create booking."}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Book(context.Background(), dto.BookRequest{RestaurantID: 99, PartySize: 2, BookingTime: "x"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to create booking.", apiErr.Message)
}

func TestGetBooking_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"booking not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetBooking(context.Background(), 42)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestSearch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).Search(context.Background(), dto.SearchRequest{Date: "2025-11-20", Time: "19:00", PartySize: 2})
	assert.Error(t, err)
}
