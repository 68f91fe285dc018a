package create_reservation_request

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// Request creates a time-boxed hold on a slot. EmployeeID is nil for "any
// employee" requests.
type Request struct {
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	ServiceID  int64
	EmployeeID *int64
}

// Response carries the persisted hold. RequestToken is the correlation
// token the customer-facing flow uses in URLs; ExpiresAt is when the hold
// lapses unless finalized.
type Response struct {
	ID           int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	ServiceID    int64
	EmployeeID   *int64
	RequestToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}
