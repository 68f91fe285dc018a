package get_next_available_date

import "time"

// Request asks for the earliest future date with any availability. FromDate
// defaults to today when zero.
type Request struct {
	EmployeeID int64
	ServiceID  int64
	FromDate   time.Time
}

// Response carries the first date with at least one bookable slot.
type Response struct {
	NextAvailableDate time.Time
}
