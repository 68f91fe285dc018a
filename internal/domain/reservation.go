package domain

import (
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusPast      ReservationStatus = "PAST"
)

// ParseReservationStatus validates a raw status string.
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusPast:
		return ReservationStatus(s), true
	}
	return "", false
}

// Reservation is a finalized booking. It exclusively owns the 1:1 link to
// the ReservationRequest that holds the slot; a reservation cannot exist
// without its request.
type Reservation struct {
	ID        int64
	RequestID int64

	// CustomerID is nil for anonymous bookings.
	CustomerID *int64

	// RequestToken is the opaque correlation token shared with the
	// originating request, used in customer-facing URLs.
	RequestToken string

	CustomerName  string
	Email         string
	Phone         string
	Notes         *string
	Status        ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time

	// Request is the owning hold, populated on reads that join it.
	Request *ReservationRequest
}

// IsCancelled reports whether the reservation has been cancelled.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeConfirmed reports whether a staff confirmation applies.
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}
