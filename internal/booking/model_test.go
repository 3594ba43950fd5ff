package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTripDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2026-03-10", "2026-03-10", 1},
		{"eight day itinerary", "2026-03-10", "2026-03-17", 8},
		{"weekend", "2026-05-01", "2026-05-03", 3},
		{"end before start", "2026-03-17", "2026-03-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TripDays(date(tt.start), date(tt.end)))
		})
	}

	t.Run("zero dates", func(t *testing.T) {
		assert.Equal(t, 0, TripDays(time.Time{}, date("2026-03-10")))
		assert.Equal(t, 0, TripDays(date("2026-03-10"), time.Time{}))
	})
}

func TestTotalGuests(t *testing.T) {
	assert.Equal(t, 3, TotalGuests(2, 1, 0))
	assert.Equal(t, 0, TotalGuests(0, 0, 0))
	assert.Equal(t, 7, TotalGuests(2, 2, 3))
}

func TestAdjustCount(t *testing.T) {
	assert.Equal(t, 3, AdjustCount(2, 1))
	assert.Equal(t, 1, AdjustCount(2, -1))
	// Decrement never drops the count below zero.
	assert.Equal(t, 0, AdjustCount(0, -1))
	assert.Equal(t, 0, AdjustCount(1, -5))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.False(t, ValidStatus(Status("pending")))
	assert.False(t, ValidStatus(Status("Cancelled")))
	assert.False(t, ValidStatus(Status("")))
}
