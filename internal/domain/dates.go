package domain

import "time"

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly strips the time of day, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateInPast reports whether date falls on a calendar day before now's.
func DateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
