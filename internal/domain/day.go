package domain

import (
	"fmt"
	"time"
)

// DayKey identifies a calendar day in some time zone. Keys compare with ==.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders the key as YYYY-MM-DD.
func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// Start returns midnight of the day in loc.
func (k DayKey) Start(loc *time.Location) time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

// DayBucket converts t into loc and strips the time of day.
func DayBucket(t time.Time, loc *time.Location) DayKey {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return DayKey{Year: y, Month: m, Day: d}
}

// IsToday reports whether t falls on the same calendar day as now, using
// now's location for both instants.
func IsToday(t, now time.Time) bool {
	loc := now.Location()
	return DayBucket(t, loc) == DayBucket(now, loc)
}
