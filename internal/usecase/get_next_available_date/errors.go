package get_next_available_date

import "errors"

var (
	// ErrEmployeeNotFound is returned when the staff member does not exist.
	ErrEmployeeNotFound = errors.New("get_next_available_date: employee not found")

	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("get_next_available_date: service not found")

	// ErrServiceNotProvided is returned when the staff member does not
	// provide the requested service.
	ErrServiceNotProvided = errors.New("get_next_available_date: employee does not provide this service")

	// ErrNoAvailableDates is returned when every future working day is
	// fully booked or none exist.
	ErrNoAvailableDates = errors.New("get_next_available_date: no available dates for this employee and service")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_next_available_date: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("get_next_available_date: internal error")
)
