package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"monday", date(2026, time.August, 31), 0},
		{"tuesday", date(2026, time.September, 1), 1},
		{"saturday", date(2026, time.September, 5), 5},
		{"sunday", date(2026, time.September, 6), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekdayIndex(tt.t))
		})
	}
}

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		// 2026-06-01 is a Monday, so weeks align with calendar rows exactly
		{"first day monday month", date(2026, time.June, 1), 1},
		{"day 7 of monday month", date(2026, time.June, 7), 1},
		{"day 8 of monday month", date(2026, time.June, 8), 2},
		{"last day of monday month", date(2026, time.June, 30), 5},
		// 2026-10-01 is a Thursday (offset 3)
		{"first day thursday month", date(2026, time.October, 1), 1},
		{"first sunday", date(2026, time.October, 4), 1},
		{"first monday is week 2", date(2026, time.October, 5), 2},
		{"end of month", date(2026, time.October, 31), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekOfMonth(tt.t))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2026, time.March, 10), date(2026, time.March, 10)))
	assert.Equal(t, 1, DaysBetween(date(2026, time.March, 10), date(2026, time.March, 11)))
	assert.Equal(t, -3, DaysBetween(date(2026, time.March, 10), date(2026, time.March, 7)))
	assert.Equal(t, 14, DaysBetween(date(2026, time.February, 23), date(2026, time.March, 9)))

	// time-of-day components are ignored
	late := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, time.March, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(late, early))
}
