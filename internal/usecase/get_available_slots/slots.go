package get_available_slots

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// generateAvailableSlots scans candidate start times from windowStart while
// the full service still fits before windowEnd, stepping by the fixed slot
// granularity, and keeps every candidate that does not overlap an occupied
// interval. The scan order guarantees ascending output; inputs with a
// duration longer than the window produce an empty slice. Pure — no clock
// reads.
func generateAvailableSlots(
	windowStart, windowEnd types.TimeString,
	serviceDurationMinutes int,
	occupied []domain.Interval,
) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	candidate := windowStart
	for {
		candidateEnd, err := candidate.AddMinutes(serviceDurationMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes wraps at midnight; a wrapped end means the service
		// no longer fits in the day, let alone the window.
		if candidateEnd.IsBefore(candidate) {
			break
		}
		if candidateEnd.IsAfter(windowEnd) {
			break
		}

		if !domain.HasConflict(domain.Interval{Start: candidate, End: candidateEnd}, occupied) {
			slots = append(slots, candidate)
		}

		next, err := candidate.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
		if !next.IsAfter(candidate) {
			break
		}
		candidate = next
	}

	return slots, nil
}

// filterPastSlots drops slots whose start time is not strictly after the
// current wall clock when the selected date is today. Future dates pass
// through untouched; past dates yield nothing.
func filterPastSlots(slots []types.TimeString, selectedDate, now time.Time) []types.TimeString {
	if domain.DateInPast(selectedDate, now) {
		return []types.TimeString{}
	}
	if !domain.SameDay(selectedDate, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(currentTime) {
			upcoming = append(upcoming, slot)
		}
	}
	return upcoming
}
