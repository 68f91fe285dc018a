package create_reservation_request

import (
	"context"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
)

// CatalogRepository loads services and employees.
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
}

// RequestRepository persists reservation requests.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ReservationRequest) (*domain.ReservationRequest, error)
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
