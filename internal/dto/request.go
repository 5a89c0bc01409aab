package dto

type SearchRequest struct {
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	PartySize int    `json:"partySize" validate:"required,gt=0"`
}

type BookRequest struct {
	// RestaurantID is not validated here: unknown, zero and negative ids are
	// left for the store's foreign key to reject.
	RestaurantID int64   `json:"restaurantId"`
	CustomerName string  `json:"customerName" validate:"max=100"`
	PartySize    int     `json:"partySize" validate:"required,gt=0"`
	BookingTime  string  `json:"bookingTime" validate:"required"`
	Deposit      float64 `json:"deposit" validate:"gte=0"`
}

type CreateRestaurantRequest struct {
	Name                string   `json:"name" validate:"required,max=255"`
	Capacity            int      `json:"capacity" validate:"required,gt=0"`
	Cuisine             string   `json:"cuisine" validate:"max=100"`
	City                string   `json:"city" validate:"max=100"`
	SubscriptionActive  *bool    `json:"subscription_active"`
	DailyCommissionRate *float64 `json:"daily_commission_rate" validate:"omitempty,gte=0,lt=10"`
}
