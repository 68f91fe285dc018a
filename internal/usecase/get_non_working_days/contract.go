package get_non_working_days

import (
	"context"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
)

// WorkDayRepository lists the dates an employee works.
type WorkDayRepository interface {
	ListDatesInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error)
}

// CatalogRepository loads employees.
type CatalogRepository interface {
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
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
