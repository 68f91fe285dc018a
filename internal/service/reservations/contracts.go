package reservations

import (
	"context"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
)

// ReservationRepository loads reservations and moves their status.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// Notifier enqueues outbound notifications. Delivery is asynchronous and
// best-effort; implementations never block the caller.
type Notifier interface {
	ReservationConfirmed(res *domain.Reservation)
}

// Logger is the printf-style logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
