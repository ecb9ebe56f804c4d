package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextWeekStart(t *testing.T) {
	monday := day(2026, 2, 9)
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday is identity", monday, monday},
		{"tuesday rounds forward", day(2026, 2, 10), day(2026, 2, 16)},
		{"friday rounds forward", day(2026, 2, 13), day(2026, 2, 16)},
		{"saturday rounds forward", day(2026, 2, 14), day(2026, 2, 16)},
		{"sunday rounds forward", day(2026, 2, 15), day(2026, 2, 16)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextWeekStart(tc.in), tc.name)
	}
}

func TestNextWeekStart_DropsTimeOfDay(t *testing.T) {
	monday := day(2026, 2, 9)

	// A Monday afternoon must resolve to that same Monday's date, not
	// stay ahead of the midnight-anchored offerings of its own week.
	afternoon := time.Date(2026, 2, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, monday, NextWeekStart(afternoon))

	// Non-UTC inputs keep their calendar date.
	berlin := time.FixedZone("CET", 3600)
	assert.Equal(t, monday, NextWeekStart(time.Date(2026, 2, 9, 8, 30, 0, 0, berlin)))
}

func TestNextWeekStart_Idempotent(t *testing.T) {
	for offset := 0; offset < 14; offset++ {
		d := day(2026, 2, 9).AddDate(0, 0, offset)
		once := NextWeekStart(d)
		assert.Equal(t, once, NextWeekStart(once), "input %s", d.Format("2006-01-02"))
	}
}

func TestWeekEnd_AlwaysFriday(t *testing.T) {
	monday := day(2026, 2, 9)
	for n := 1; n <= 8; n++ {
		end := WeekEnd(monday, n)
		assert.Equal(t, time.Friday, end.Weekday(), "n=%d", n)
		// The Friday of week n is 4 days after the Monday of week n.
		assert.Equal(t, monday.AddDate(0, 0, (n-1)*7+4), end, "n=%d", n)
	}
}

func TestFollowingWeekStart(t *testing.T) {
	// Friday block end -> next Monday.
	assert.Equal(t, day(2026, 2, 16), FollowingWeekStart(day(2026, 2, 13)))
	// Sunday block end -> next Monday as well.
	assert.Equal(t, day(2026, 2, 16), FollowingWeekStart(day(2026, 2, 15)))
}

func TestWeeksBetween(t *testing.T) {
	monday := day(2026, 2, 9)
	assert.Equal(t, 0, WeeksBetween(monday, monday))
	assert.Equal(t, 1, WeeksBetween(monday, monday.AddDate(0, 0, 7)))
	assert.Equal(t, 3, WeeksBetween(monday, monday.AddDate(0, 0, 21)))
	// Partial weeks floor.
	assert.Equal(t, 0, WeeksBetween(monday, monday.AddDate(0, 0, 6)))
	// Reversed arguments clamp to zero.
	assert.Equal(t, 0, WeeksBetween(monday.AddDate(0, 0, 7), monday))
}
