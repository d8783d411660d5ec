package helpers

import (
	"time"

	"reservation-service/internal/pkg/errors"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.InvalidInput("invalid date " + s + ", expected YYYY-MM-DD")
	}
	return t, nil
}

// NormalizeDate maps t's calendar date to UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween counts whole nights in [checkIn, checkOut).
func NightsBetween(checkIn, checkOut time.Time) int {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

// EachNight lists every calendar date in [checkIn, checkOut).
func EachNight(checkIn, checkOut time.Time) []time.Time {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)

	var nights []time.Time
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

// ValidateStay rejects zero-night and reversed ranges.
func ValidateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return errors.InvalidInput("check_in and check_out are required")
	}
	if NightsBetween(checkIn, checkOut) <= 0 {
		return errors.InvalidInput("check_out must be after check_in")
	}
	return nil
}
