package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire and ledger format for calendar dates. Check-in and
// check-out are wall-clock local dates, never instants; no timezone
// conversion happens anywhere.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a calendar day value.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// FormatDate renders a day value back to YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// ParseDateRange parses and validates a check-in/check-out pair. The range is
// half-open [checkIn, checkOut) and must cover at least one night.
func ParseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	co, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !ci.Before(co) {
		return time.Time{}, time.Time{}, fmt.Errorf("check-in must be before check-out")
	}
	return ci, co, nil
}

// DatesInRange enumerates every calendar day in [checkIn, checkOut),
// inclusive of check-in and exclusive of check-out.
func DatesInRange(checkIn, checkOut time.Time) []time.Time {
	var days []time.Time
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// NightsBetween counts the nights in [checkIn, checkOut).
func NightsBetween(checkIn, checkOut time.Time) int {
	return len(DatesInRange(checkIn, checkOut))
}
