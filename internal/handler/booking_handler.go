package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/dto"
	"github.com/Eursukkul/restaurant-booking/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	msgSearchFailed  = "Database query failed."
	msgBookingFailed = "Failed to create booking."
)

type BookingHandler struct {
	availability service.AvailabilityService
	bookings     service.BookingService
	loc          *time.Location
}

func NewBookingHandler(availability service.AvailabilityService, bookings service.BookingService, loc *time.Location) *BookingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingHandler{availability: availability, bookings: bookings, loc: loc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.Search)
	g.POST("/book", h.Book)
	g.GET("/bookings/:id", h.GetBooking)
}

func (h *BookingHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rows, err := h.availability.Search(c.Request().Context(), req.Date, req.Time, req.PartySize)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSlot) {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD and time HH:MM")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, msgSearchFailed).SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.ToAvailableRestaurantResponses(rows))
}

func (h *BookingHandler) Book(c echo.Context) error {
	var req dto.BookRequest
	if err := c.Bind(&req); err != nil {
		// A restaurant id that is not an integer is treated like any other
		// id the store cannot resolve.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "restaurantId" {
			return echo.NewHTTPError(http.StatusInternalServerError, msgBookingFailed).SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	at, err := service.ParseBookingTime(req.BookingTime, h.loc)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingTime must be an ISO-8601 timestamp")
	}

	// No restaurant row has id 0, so non-positive ids fail the foreign key.
	var restaurantID uint
	if req.RestaurantID > 0 {
		restaurantID = uint(req.RestaurantID)
	}

	booking, err := h.bookings.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		RestaurantID: restaurantID,
		CustomerName: req.CustomerName,
		PartySize:    req.PartySize,
		BookingTime:  at,
		Deposit:      req.Deposit,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, msgBookingFailed).SetInternal(err)
	}

	return c.JSON(http.StatusCreated, dto.BookResponse{
		Message: dto.BookingSuccessMessage,
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.bookings.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, msgSearchFailed).SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
