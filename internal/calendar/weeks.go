// Package calendar holds the date arithmetic used for block placement.
// All scheduling math works in whole weeks anchored to a Monday..Friday
// working week; once catalog offerings are week-aligned no day-level
// arithmetic is needed.
package calendar

import "time"

// NextWeekStart rounds d forward to the next Monday. Any time-of-day is
// dropped first: offerings are midnight-anchored UTC dates, and a cursor
// carrying a clock would sort after every offering of its own week. A
// Monday is returned unchanged, so the function is idempotent.
func NextWeekStart(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// WeekEnd returns the Friday concluding a block of the given number of
// weeks that begins at weekStart.
func WeekEnd(weekStart time.Time, weeks int) time.Time {
	return weekStart.AddDate(0, 0, weeks*7-3)
}

// FollowingWeekStart returns the Monday of the week after the given
// block end date.
func FollowingWeekStart(blockEnd time.Time) time.Time {
	return NextWeekStart(blockEnd.AddDate(0, 0, 1))
}

// WeeksBetween returns the number of whole weeks from a to b, floored,
// never negative.
func WeeksBetween(a, b time.Time) int {
	days := DaysBetween(a, b)
	if days <= 0 {
		return 0
	}
	return days / 7
}

// DaysBetween returns the number of days from a to b, never negative.
func DaysBetween(a, b time.Time) int {
	days := int(b.Sub(a).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
