package get_available_slots

import (
	"context"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
)

// WorkDayRepository loads working-hours windows.
type WorkDayRepository interface {
	ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.WorkDay, error)
}

// CatalogRepository loads services and employees.
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	EmployeeProvidesService(ctx context.Context, employeeID, serviceID int64) (bool, error)
}

// RequestRepository loads the occupied intervals blocking an employee's day.
type RequestRepository interface {
	ListOccupiedIntervals(ctx context.Context, employeeID int64, date time.Time, now time.Time, excludeRequestID int64) ([]domain.Interval, error)
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
