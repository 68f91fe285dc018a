package get_available_slots

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// Request asks for the bookable start times of one employee, service and date.
type Request struct {
	EmployeeID int64
	ServiceID  int64
	Date       time.Time
}

// Response carries the ordered bookable start times plus the display fields
// the booking page renders next to them.
type Response struct {
	Date         time.Time
	DateLabel    string
	EmployeeName string
	ServiceID    int64
	Slots        []types.TimeString
}
