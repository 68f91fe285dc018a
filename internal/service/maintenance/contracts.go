package maintenance

import (
	"context"
	"time"
)

// RequestRepository deletes lapsed, unclaimed holds.
type RequestRepository interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ReservationRepository transitions elapsed CONFIRMED reservations to PAST.
type ReservationRepository interface {
	MarkPastElapsed(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider supplies the current time so tests can fix "now".
type TimeProvider interface {
	Now() time.Time
}

// Logger is the printf-style logger consumed by the service.
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
