package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	RestaurantID  uint          `gorm:"not null;index" json:"restaurant_id"`
	CustomerName  string        `gorm:"type:varchar(100)" json:"customer_name"`
	PartySize     int           `gorm:"not null" json:"party_size"`
	BookingTime   time.Time     `gorm:"not null;index" json:"booking_time"`
	Status        BookingStatus `gorm:"type:varchar(50);not null;default:'Confirmed'" json:"status"`
	DepositAmount float64       `gorm:"type:numeric(10,2);not null;default:0" json:"deposit_amount"`
	CreatedAt     time.Time     `json:"created_at"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}
