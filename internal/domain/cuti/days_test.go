package cuti

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClampedDays(t *testing.T) {
	marchStart, marchEnd := day(2024, 3, 1), day(2024, 3, 31)

	tests := []struct {
		name       string
		leaveStart time.Time
		leaveEnd   time.Time
		want       int
	}{
		{"fully inside", day(2024, 3, 10), day(2024, 3, 12), 3},
		{"single day", day(2024, 3, 15), day(2024, 3, 15), 1},
		{"starts before period", day(2024, 2, 26), day(2024, 3, 3), 3},
		{"ends after period", day(2024, 3, 29), day(2024, 4, 5), 3},
		{"covers whole period", day(2024, 2, 1), day(2024, 4, 30), 31},
		{"first day only", day(2024, 2, 28), day(2024, 3, 1), 1},
		{"disjoint", day(2024, 4, 2), day(2024, 4, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampedDays(tt.leaveStart, tt.leaveEnd, marchStart, marchEnd))
		})
	}
}

func TestClampedDays_IgnoresTimeOfDay(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	start := time.Date(2024, 3, 10, 23, 30, 0, 0, wib)
	end := time.Date(2024, 3, 12, 0, 15, 0, 0, wib)

	assert.Equal(t, 3, ClampedDays(start, end, day(2024, 3, 1), day(2024, 3, 31)))
}

func TestClampedDays_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	start := time.Date(2024, 3, 9, 0, 0, 0, 0, ny)
	end := time.Date(2024, 3, 11, 0, 0, 0, 0, ny)
	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, ny)
	periodEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, ny)

	assert.Equal(t, 3, ClampedDays(start, end, periodStart, periodEnd))
}

func TestOverlaps(t *testing.T) {
	ps, pe := day(2024, 3, 1), day(2024, 3, 31)

	assert.True(t, Overlaps(day(2024, 3, 10), day(2024, 3, 12), ps, pe))
	assert.True(t, Overlaps(day(2024, 2, 20), day(2024, 3, 1), ps, pe))
	assert.True(t, Overlaps(day(2024, 3, 31), day(2024, 4, 2), ps, pe))
	assert.False(t, Overlaps(day(2024, 2, 20), day(2024, 2, 29), ps, pe))
	assert.False(t, Overlaps(day(2024, 4, 1), day(2024, 4, 2), ps, pe))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 28, DaysBetween(day(2023, 2, 1), day(2023, 3, 1)))
	assert.Equal(t, 0, DaysBetween(day(2024, 3, 1), day(2024, 3, 1)))
}
