package dto

import (
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/models"
)

const BookingSuccessMessage = "Booking successful!"

type AvailableRestaurantResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Capacity       int    `json:"capacity"`
	Cuisine        string `json:"cuisine"`
	BookedCount    int64  `json:"booked_count"`
	AvailableSlots int    `json:"available_slots"`
}

type BookingResponse struct {
	ID            uint                 `json:"id"`
	RestaurantID  uint                 `json:"restaurant_id"`
	CustomerName  string               `json:"customer_name"`
	PartySize     int                  `json:"party_size"`
	BookingTime   time.Time            `json:"booking_time"`
	Status        models.BookingStatus `json:"status"`
	DepositAmount float64              `json:"deposit_amount"`
}

type BookResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type RestaurantResponse struct {
	ID                  uint    `json:"id"`
	Name                string  `json:"name"`
	Capacity            int     `json:"capacity"`
	Cuisine             string  `json:"cuisine"`
	City                string  `json:"city"`
	SubscriptionActive  bool    `json:"subscription_active"`
	DailyCommissionRate float64 `json:"daily_commission_rate"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAvailableRestaurantResponses(rows []models.Availability) []AvailableRestaurantResponse {
	resp := make([]AvailableRestaurantResponse, len(rows))
	for i, r := range rows {
		resp[i] = AvailableRestaurantResponse{
			ID:             r.ID,
			Name:           r.Name,
			Capacity:       r.Capacity,
			Cuisine:        r.Cuisine,
			BookedCount:    r.BookedCount,
			AvailableSlots: r.AvailableSlots(),
		}
	}
	return resp
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		RestaurantID:  b.RestaurantID,
		CustomerName:  b.CustomerName,
		PartySize:     b.PartySize,
		BookingTime:   b.BookingTime,
		Status:        b.Status,
		DepositAmount: b.DepositAmount,
	}
}

func ToRestaurantResponse(r *models.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:                  r.ID,
		Name:                r.Name,
		Capacity:            r.Capacity,
		Cuisine:             r.Cuisine,
		City:                r.City,
		SubscriptionActive:  r.SubscriptionActive,
		DailyCommissionRate: r.DailyCommissionRate,
	}
}
