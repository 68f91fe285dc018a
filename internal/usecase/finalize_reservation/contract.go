package finalize_reservation

import (
	"context"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
)

// RequestRepository loads holds and the intervals occupying an employee's
// day.
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error)
	ListOccupiedIntervals(ctx context.Context, employeeID int64, date time.Time, now time.Time, excludeRequestID int64) ([]domain.Interval, error)
}

// ReservationRepository persists the finalized booking.
type ReservationRepository interface {
	GetByRequestID(ctx context.Context, requestID int64) (*domain.Reservation, error)
	Upsert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// TransactionManager runs the conflict re-check and write atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier enqueues outbound notifications. Delivery is asynchronous and
// best-effort; implementations never block the caller.
type Notifier interface {
	NewReservation(res *domain.Reservation)
}

// TimeProvider supplies the current time so tests can fix "now".
type TimeProvider interface {
	Now() time.Time
}

// Logger is the printf-style logger consumed by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider reads the wall clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
