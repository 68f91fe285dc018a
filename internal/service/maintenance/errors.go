package maintenance

import "errors"

var (
	// ErrInternal is returned when a sweep statement fails.
	ErrInternal = errors.New("maintenance: internal error")
)
