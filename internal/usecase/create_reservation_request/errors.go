package create_reservation_request

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("create_reservation_request: service not found")

	// ErrEmployeeNotFound is returned when the requested employee does
	// not exist.
	ErrEmployeeNotFound = errors.New("create_reservation_request: employee not found")

	// ErrInvalidRequest is returned when a hold invariant is violated:
	// bad time ordering, past date, or duration exceeding the service's.
	ErrInvalidRequest = errors.New("create_reservation_request: invalid reservation request")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_reservation_request: internal error")
)
