package create_reservation_request

import (
	"fmt"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidRequest)
	}
	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidRequest)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidRequest, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidRequest, err)
	}
	return nil
}

// validateInvariants enforces the hold invariants: start strictly before
// end, the held range no longer than the service duration, and a date not
// in the past.
func validateInvariants(req *Request, service *domain.Service, now time.Time) error {
	if req.StartTime == req.EndTime {
		return fmt.Errorf("%w: start time and end time cannot be the same", ErrInvalidRequest)
	}
	if req.EndTime.IsBefore(req.StartTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidRequest)
	}

	length, err := req.EndTime.Sub(req.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if length > service.DurationMinutes {
		return fmt.Errorf("%w: duration cannot exceed the service duration", ErrInvalidRequest)
	}

	if domain.DateInPast(req.Date, now) {
		return fmt.Errorf("%w: date cannot be in the past", ErrInvalidRequest)
	}

	return nil
}
