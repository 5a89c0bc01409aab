// Package clientview holds the state behind the reservation client: the
// current screen, the last search and its results, and the user's bookings.
package clientview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Eursukkul/restaurant-booking/internal/dto"
	"github.com/Eursukkul/restaurant-booking/internal/models"
)

type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenDashboard Screen = "dashboard"
)

const (
	DemoCustomerName = "Demo User"
	DemoDeposit      = 100.00
)

var (
	ErrServiceUnavailable = errors.New("service connection failed, please try again later")
	ErrBookingFailed      = errors.New("failed to complete booking, the slot might have just been taken")
	ErrNoSearch           = errors.New("search before booking")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotCancellable     = errors.New("only confirmed bookings can be cancelled")
	ErrUnknownScreen      = errors.New("unknown screen")
)

// API is the subset of the reservation API the client uses.
type API interface {
	Search(ctx context.Context, req dto.SearchRequest) ([]dto.AvailableRestaurantResponse, error)
	Book(ctx context.Context, req dto.BookRequest) (*dto.BookResponse, error)
}

type LocalBooking struct {
	ID         int
	Restaurant string
	Date       string
	Time       string
	Party      int
	Status     models.BookingStatus
}

// Session bookings live only on the client; cancelling never reaches the server.
type Session struct {
	api API

	mu       sync.Mutex
	customer string
	deposit  float64
	screen   Screen
	last     *dto.SearchRequest
	results  []dto.AvailableRestaurantResponse
	bookings []LocalBooking
	nextID   int
}

func NewSession(api API, seed []LocalBooking) *Session {
	s := &Session{
		api:      api,
		customer: DemoCustomerName,
		deposit:  DemoDeposit,
		screen:   ScreenHome,
		results:  []dto.AvailableRestaurantResponse{},
		bookings: append([]LocalBooking(nil), seed...),
		nextID:   1,
	}
	for _, b := range seed {
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	return s
}

func DemoBookings() []LocalBooking {
	return []LocalBooking{
		{ID: 101, Restaurant: "The Local Bistro", Date: "2025-11-20", Time: "19:00", Party: 2, Status: models.StatusConfirmed},
		{ID: 102, Restaurant: "Café Solace", Date: "2025-11-15", Time: "13:30", Party: 4, Status: models.StatusCompleted},
		{ID: 103, Restaurant: "Grill Master PH", Date: "2025-12-05", Time: "18:30", Party: 6, Status: models.StatusConfirmed},
	}
}

// SetCustomer changes who later bookings are made for and the deposit paid.
func (s *Session) SetCustomer(name string, deposit float64) {
	s.mu.Lock()
	s.customer = name
	s.deposit = deposit
	s.mu.Unlock()
}

// Search replaces the results with the API's answer. On failure the results
// stay empty.
func (s *Session) Search(ctx context.Context, date, clock string, partySize int) error {
	req := dto.SearchRequest{Date: date, Time: clock, PartySize: partySize}

	s.mu.Lock()
	s.last = &req
	s.results = []dto.AvailableRestaurantResponse{}
	s.mu.Unlock()

	results, err := s.api.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	if results == nil {
		results = []dto.AvailableRestaurantResponse{}
	}

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()
	return nil
}

// Book reserves the last searched slot at restaurantID for the session's
// customer (the demo user unless SetCustomer was called).
// On success the booking is added to the front of the dashboard list and the
// search is repeated.
func (s *Session) Book(ctx context.Context, restaurantID uint, restaurantName string) (*LocalBooking, error) {
	s.mu.Lock()
	if s.last == nil {
		s.mu.Unlock()
		return nil, ErrNoSearch
	}
	params := *s.last
	customer, deposit := s.customer, s.deposit
	s.mu.Unlock()

	_, err := s.api.Book(ctx, dto.BookRequest{
		RestaurantID: int64(restaurantID),
		CustomerName: customer,
		PartySize:    params.PartySize,
		BookingTime:  params.Date + "T" + params.Time + ":00",
		Deposit:      deposit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	s.mu.Lock()
	booking := LocalBooking{
		ID:         s.nextID,
		Restaurant: restaurantName,
		Date:       params.Date,
		Time:       params.Time,
		Party:      params.PartySize,
		Status:     models.StatusConfirmed,
	}
	s.nextID++
	s.bookings = append([]LocalBooking{booking}, s.bookings...)
	s.mu.Unlock()

	// The booking stands even if the refresh fails.
	_ = s.Search(ctx, params.Date, params.Time, params.PartySize)
	return &booking, nil
}

func (s *Session) Cancel(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if s.bookings[i].Status != models.StatusConfirmed {
			return fmt.Errorf("booking #%d is %s: %w", id, s.bookings[i].Status, ErrNotCancellable)
		}
		s.bookings[i].Status = models.StatusCancelled
		return nil
	}
	return fmt.Errorf("booking #%d: %w", id, ErrBookingNotFound)
}

func (s *Session) Show(screen Screen) error {
	switch screen {
	case ScreenHome, ScreenDashboard:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}
	s.mu.Lock()
	s.screen = screen
	s.mu.Unlock()
	return nil
}

func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

func (s *Session) Results() []dto.AvailableRestaurantResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dto.AvailableRestaurantResponse{}, s.results...)
}

func (s *Session) Bookings() []LocalBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LocalBooking{}, s.bookings...)
}
