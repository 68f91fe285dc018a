package finalize_reservation

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// Request finalizes a hold into a reservation. RequestToken must match the
// token issued with the hold; CustomerID is nil for anonymous bookings.
type Request struct {
	RequestID    int64
	RequestToken string

	CustomerID   *int64
	CustomerName string
	Email        string
	Phone        string
	Notes        *string
}

// Response carries the finalized reservation.
type Response struct {
	ID           int64
	RequestID    int64
	RequestToken string
	CustomerName string
	Status       domain.ReservationStatus
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	ServiceID    int64
	EmployeeID   *int64
	CreatedAt    time.Time
}
