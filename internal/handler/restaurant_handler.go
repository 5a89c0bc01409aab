package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/restaurant-booking/internal/dto"
	"github.com/Eursukkul/restaurant-booking/internal/models"
	"github.com/Eursukkul/restaurant-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type RestaurantHandler struct {
	restaurants service.RestaurantService
	bookings    service.BookingService
}

func NewRestaurantHandler(restaurants service.RestaurantService, bookings service.BookingService) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, bookings: bookings}
}

func (h *RestaurantHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListRestaurants)
	g.POST("", h.CreateRestaurant)
	g.GET("/:id", h.GetRestaurant)
	g.GET("/:id/bookings", h.ListBookings)
}

func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req dto.CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurant := &models.Restaurant{
		Name:                req.Name,
		Capacity:            req.Capacity,
		Cuisine:             req.Cuisine,
		City:                req.City,
		SubscriptionActive:  true,
		DailyCommissionRate: models.DefaultCommissionRate,
	}
	if req.SubscriptionActive != nil {
		restaurant.SubscriptionActive = *req.SubscriptionActive
	}
	if req.DailyCommissionRate != nil {
		restaurant.DailyCommissionRate = *req.DailyCommissionRate
	}

	if err := h.restaurants.CreateRestaurant(c.Request().Context(), restaurant); err != nil {
		if errors.Is(err, service.ErrInvalidRestaurant) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create restaurant.").SetInternal(err)
	}

	return c.JSON(http.StatusCreated, dto.ToRestaurantResponse(restaurant))
}

func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}

	restaurant, err := h.restaurants.GetRestaurant(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "restaurant not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, msgSearchFailed).SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.ToRestaurantResponse(restaurant))
}

func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.restaurants.ListRestaurants(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, msgSearchFailed).SetInternal(err)
	}

	resp := make([]dto.RestaurantResponse, len(restaurants))
	for i := range restaurants {
		resp[i] = dto.ToRestaurantResponse(&restaurants[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RestaurantHandler) ListBookings(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}

	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		if !bs.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "status must be Confirmed, Completed or Cancelled")
		}
		status = &bs
	}

	bookings, err := h.bookings.ListBookings(c.Request().Context(), uint(id), status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, msgSearchFailed).SetInternal(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}
