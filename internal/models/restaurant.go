package models

type Restaurant struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	Name                string  `gorm:"type:varchar(255);not null" json:"name"`
	Capacity            int     `gorm:"not null" json:"capacity"`
	SubscriptionActive  bool    `gorm:"not null" json:"subscription_active"`
	DailyCommissionRate float64 `gorm:"type:numeric(3,2)" json:"daily_commission_rate"`
	City                string  `gorm:"type:varchar(100)" json:"city"`
	Cuisine             string  `gorm:"type:varchar(100)" json:"cuisine"`
}

const DefaultCommissionRate = 0.10

// Availability is one row of the availability query: a restaurant and the
// party sizes already booked inside the search window.
type Availability struct {
	ID          uint
	Name        string
	Capacity    int
	Cuisine     string
	BookedCount int64
}

func (a Availability) AvailableSlots() int {
	return a.Capacity - int(a.BookedCount)
}
