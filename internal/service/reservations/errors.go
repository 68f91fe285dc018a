package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation matches.
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrAlreadyConfirmed is returned when confirming a reservation that
	// is not PENDING. The stored status is left untouched.
	ErrAlreadyConfirmed = errors.New("reservations: reservation already confirmed")

	// ErrAlreadyCancelled is returned when cancelling a reservation that
	// is already CANCELLED. The end state is the same either way; the
	// distinct outcome tells callers their cancel was a no-op.
	ErrAlreadyCancelled = errors.New("reservations: reservation already cancelled")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("reservations: internal error")
)
