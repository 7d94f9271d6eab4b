package interval

import "time"

const hoursPerDay = 24

// DateOf truncates a timestamp to its calendar day. All overlap checks in the
// engine compare dates, not clock times, so a unit vacated in the morning can
// be handed over the same day regardless of hour.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two half-open intervals [startA, endA) and
// [startB, endB) share at least one day. An interval ending the day the other
// starts does not overlap, which makes same-day turnover legal.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return DateOf(startA).Before(DateOf(endB)) && DateOf(startB).Before(DateOf(endA))
}

// OverlapsInclusive reports whether two closed intervals [fromA, toA] and
// [fromB, toB] share at least one day. Administrative blocks are calendar-day
// holds with inclusive bounds, so a block ending the day a booking starts
// still conflicts. This deliberately differs from the half-open booking
// convention.
func OverlapsInclusive(fromA, toA, fromB, toB time.Time) bool {
	return !DateOf(fromA).After(DateOf(toB)) && !DateOf(fromB).After(DateOf(toA))
}

// IsValid reports whether checkin falls on a calendar day strictly before
// checkout.
func IsValid(checkin, checkout time.Time) bool {
	return DateOf(checkin).Before(DateOf(checkout))
}

// Nights returns the calendar-day difference between checkout and checkin,
// with a minimum of one night.
func Nights(checkin, checkout time.Time) int {
	nights := int(DateOf(checkout).Sub(DateOf(checkin)).Hours() / hoursPerDay)
	if nights < 1 {
		return 1
	}

	return nights
}
