package domain

import "github.com/Pawel-Truszkowski/SalonManager/pkg/types"

// Interval is a half-open [Start, End) time range on a single day. Occupied
// intervals feeding the availability engine and conflict checks are built
// from reservation requests and their reservations.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether the two intervals share any time. The comparison
// is strict on both ends, so intervals that merely touch (one ends exactly
// where the other starts) do not overlap and back-to-back appointments are
// allowed.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}

// HasConflict reports whether candidate overlaps any of the occupied
// intervals.
func HasConflict(candidate Interval, occupied []Interval) bool {
	for _, o := range occupied {
		if candidate.Overlaps(o) {
			return true
		}
	}
	return false
}
