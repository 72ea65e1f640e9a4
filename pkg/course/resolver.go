package course

import "time"

const hoursPerDay = 24

// ResolveIndex returns the number of whole calendar days from start to now.
//
// Both instants are reduced to their calendar date in their own location, so
// time of day never matters: the same date yields 0, the next date 1 and any
// date before start a negative value. Range checks belong to Select.
func ResolveIndex(now, start time.Time) int {
	return int(calendarDate(now).Sub(calendarDate(start)).Hours() / hoursPerDay)
}

// calendarDate maps t to midnight UTC of its local calendar date.
// UTC has no DST transitions, so differences are exact multiples of 24h.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
