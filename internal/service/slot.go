package service

import (
	"fmt"
	"strings"
	"time"
)

// TurnoverWindow is how far back from the requested time existing bookings
// still occupy seats.
const TurnoverWindow = time.Hour

var bookingTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseSlot combines a YYYY-MM-DD date and an HH:MM time of day in loc.
func ParseSlot(date, clock string, loc *time.Location) (time.Time, error) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, date+" "+clock, loc); err == nil {
			return normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidSlot, date, clock)
}

// ParseBookingTime accepts RFC 3339 or a zone-less local timestamp in loc.
func ParseBookingTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return normalize(t), nil
	}
	for _, layout := range bookingTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidBookingTime, raw)
}

// Window returns the inclusive lookback window ending at target.
func Window(target time.Time) (from, to time.Time) {
	return target.Add(-TurnoverWindow), target
}

// Stored timestamps are UTC with whole seconds so range comparisons behave
// the same on every driver.
func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
