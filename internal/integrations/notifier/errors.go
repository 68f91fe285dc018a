package notifier

import "errors"

var (
	// ErrInvalidResponse is returned when the notification service
	// answers with an unexpected status or payload.
	ErrInvalidResponse = errors.New("notifier: invalid response")

	// ErrInternal is returned when the request cannot be built or sent.
	ErrInternal = errors.New("notifier: internal error")
)
