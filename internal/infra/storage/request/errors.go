package request

import "errors"

var (
	// ErrRequestNotFound is returned when no reservation request matches.
	ErrRequestNotFound = errors.New("request.repository: reservation request not found")

	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("request.repository: failed to build query")

	// ErrExecQuery is returned when a statement fails to execute.
	ErrExecQuery = errors.New("request.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("request.repository: failed to scan row")
)
