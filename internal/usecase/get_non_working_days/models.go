package get_non_working_days

import "time"

// Request asks for the dates an employee is off within the booking horizon.
type Request struct {
	EmployeeID int64
}

// Response lists the non-working dates in ascending order, from today up
// to the end of the horizon.
type Response struct {
	EmployeeID     int64
	NonWorkingDays []time.Time
}
