package domain

// Booking defaults
const (
	// SlotStepMinutes is the fixed granularity bookable start times are
	// published at.
	SlotStepMinutes = 15

	// RequestTTLMinutes is how long a reservation request holds its slot
	// before it expires unclaimed.
	RequestTTLMinutes = 15

	// NonWorkingHorizonDays bounds the calendar horizon for the
	// non-working-days lookup.
	NonWorkingHorizonDays = 60
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	MaxNotesLength            = 500
	MaxNameLength             = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DateLabelFormat is the human-readable date returned alongside slots.
	DateLabelFormat = "Mon, January 02, 2006"
)

// OccupyingStatuses are the reservation statuses that block a time slot.
// Cancelled and past reservations free their interval.
var OccupyingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
