package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	ci, co, err := ParseDateRange("2024-08-10", "2024-08-12")
	require.NoError(t, err)
	assert.Equal(t, "2024-08-10", FormatDate(ci))
	assert.Equal(t, "2024-08-12", FormatDate(co))
}

func TestParseDateRangeRejectsMalformedDates(t *testing.T) {
	_, _, err := ParseDateRange("10/08/2024", "2024-08-12")
	assert.Error(t, err)

	_, _, err = ParseDateRange("2024-08-10", "not-a-date")
	assert.Error(t, err)
}

func TestParseDateRangeRejectsEmptyRange(t *testing.T) {
	_, _, err := ParseDateRange("2024-08-10", "2024-08-10")
	assert.Error(t, err)

	_, _, err = ParseDateRange("2024-08-12", "2024-08-10")
	assert.Error(t, err)
}

func TestDatesInRangeIsHalfOpen(t *testing.T) {
	ci, _ := ParseDate("2024-08-10")
	co, _ := ParseDate("2024-08-13")

	days := DatesInRange(ci, co)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-08-10", FormatDate(days[0]))
	assert.Equal(t, "2024-08-12", FormatDate(days[2]))
}

func TestDatesInRangeCrossesMonthBoundary(t *testing.T) {
	ci, _ := ParseDate("2024-08-30")
	co, _ := ParseDate("2024-09-02")

	days := DatesInRange(ci, co)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-08-31", FormatDate(days[1]))
	assert.Equal(t, "2024-09-01", FormatDate(days[2]))
}

func TestNightsBetween(t *testing.T) {
	ci, _ := ParseDate("2024-08-10")
	co, _ := ParseDate("2024-08-11")
	assert.Equal(t, 1, NightsBetween(ci, co))

	co = ci.AddDate(0, 0, 7)
	assert.Equal(t, 7, NightsBetween(ci, co))
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, "2025-02-28", FormatDate(d))
}
