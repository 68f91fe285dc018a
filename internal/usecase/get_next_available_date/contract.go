package get_next_available_date

import (
	"context"
	"time"

	getAvailableSlots "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_available_slots"
)

// WorkDayRepository lists the employee's future working dates.
type WorkDayRepository interface {
	ListDatesAfter(ctx context.Context, employeeID int64, after time.Time) ([]time.Time, error)
}

// SlotsUseCase computes availability for a single date.
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
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
