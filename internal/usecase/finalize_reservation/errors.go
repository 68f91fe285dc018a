package finalize_reservation

import "errors"

var (
	// ErrRequestNotFound is returned when no hold matches the given id.
	ErrRequestNotFound = errors.New("finalize_reservation: reservation request not found")

	// ErrTokenMismatch is returned when the supplied token does not match
	// the one issued with the hold.
	ErrTokenMismatch = errors.New("finalize_reservation: request token mismatch")

	// ErrRequestExpired is returned when the hold lapsed before the
	// customer submitted contact details and no reservation claimed it.
	ErrRequestExpired = errors.New("finalize_reservation: reservation request expired")

	// ErrConflictingReservation is returned when the held range overlaps
	// an occupied interval at commit time.
	ErrConflictingReservation = errors.New("finalize_reservation: slot conflicts with an existing reservation")

	// ErrInvalidRequest is returned when contact details fail validation.
	ErrInvalidRequest = errors.New("finalize_reservation: invalid finalize request")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("finalize_reservation: internal error")
)
