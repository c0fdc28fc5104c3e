package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Weekday names as the schedule document keys them, es-ES, Sunday first.
var weekdayNames = [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// WeekdayName returns the schedule key for the weekday of t.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

// MonthDay returns the MM-DD form used by annual closed dates.
func MonthDay(t time.Time) string {
	return t.Format("01-02")
}

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
