package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("10/06/2025")
	assert.Error(t, err)
}

func TestTripDays(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 1, TripDays(day("2025-06-10"), day("2025-06-10")))
	assert.Equal(t, 4, TripDays(day("2025-06-10"), day("2025-06-13")))
	assert.Equal(t, 7, TripDays(day("2025-12-29"), day("2026-01-04")))
}

func TestFormatDateRange(t *testing.T) {
	sameYear := FormatDateRange(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, "June 1 - June 5, 2025", sameYear)

	crossYear := FormatDateRange(
		time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, "Dec 30, 2025 - Jan 2, 2026", crossYear)
}
