package service

import "errors"

var (
	ErrInvalidSlot        = errors.New("invalid date or time")
	ErrInvalidBookingTime = errors.New("invalid booking time")
	ErrInvalidRestaurant  = errors.New("invalid restaurant")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrBookingNotFound    = errors.New("booking not found")
)
