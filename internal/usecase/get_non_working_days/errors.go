package get_non_working_days

import "errors"

var (
	// ErrEmployeeNotFound is returned when the employee does not exist.
	ErrEmployeeNotFound = errors.New("get_non_working_days: employee not found")

	// ErrInvalidInput is returned on malformed parameters.
	ErrInvalidInput = errors.New("get_non_working_days: invalid input")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("get_non_working_days: internal error")
)
