package db

import "time"

// Schedule is the owner-managed document describing recurring availability.
// The owner panel replaces it wholesale, never field by field.
type Schedule struct {
	MaxAdvanceBookingDays int                 `json:"maxAdvanceBookingDays"`
	WeeklySchedule        map[string][]string `json:"weeklySchedule"`
	ClosedDaysOfWeek      []string            `json:"closedDaysOfWeek"`
	AnnualClosedDates     []string            `json:"annualClosedDates"` // MM-DD, repeats every year
	ClosedDates           []string            `json:"closedDates"`       // YYYY-MM-DD, one-off closures
}

// Booking occupies one (date, time) slot while active. A cancelled booking
// keeps the same shape and id so it can be restored exactly as it was.
type Booking struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Service     string    `json:"service"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	BookingDate time.Time `json:"bookingDate"`
}

type Review struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
