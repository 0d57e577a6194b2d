// Package daterange holds the day-granularity date helpers shared by the
// booking and availability domains. Booking conflicts use the half-open
// [start, end) convention; ledger materialization enumerates days
// inclusively. Keeping both in one place stops the two conventions from
// drifting apart.
package daterange

import (
	"time"

	"adspot/shared/constant"
	"adspot/shared/timezone"
)

// ParseDay parses a YYYY-MM-DD value in the application timezone.
func ParseDay(value string) (time.Time, error) {
	day, err := timezone.Parse(constant.DayDateFormat, value)
	if err != nil {
		return time.Time{}, err
	}

	return Truncate(day), nil
}

// Truncate drops the time-of-day component, keeping the location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Format renders a day as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(constant.DayDateFormat)
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap: a booking
// ending on a day and another starting that same day can coexist.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Nights counts the nights between two days, the billable unit for a
// booking. A same-day range counts zero nights.
func Nights(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)).Hours() / 24)
}

// DaysInclusive enumerates every day from start through end, both included.
// An inverted range yields nil.
func DaysInclusive(start, end time.Time) []time.Time {
	start = Truncate(start)
	end = Truncate(end)

	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, Nights(start, end)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}

// BeforeToday reports whether the day lies strictly before today in the
// application timezone, compared at day granularity.
func BeforeToday(t time.Time) bool {
	return Truncate(t).Before(timezone.Today())
}
