package get_available_slots

import "errors"

var (
	// ErrEmployeeNotFound is returned when the staff member does not exist.
	ErrEmployeeNotFound = errors.New("get_available_slots: employee not found")

	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceNotProvided is returned when the staff member does not
	// provide the requested service.
	ErrServiceNotProvided = errors.New("get_available_slots: employee does not provide this service")

	// ErrNoWorkingDay is returned when the employee has no working hours
	// on the selected date.
	ErrNoWorkingDay = errors.New("get_available_slots: employee does not work on this date")

	// ErrNoAvailability is returned when the working day exists but every
	// slot is taken or already in the past.
	ErrNoAvailability = errors.New("get_available_slots: no availability on this date")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
