package workday

import "errors"

var (
	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("workday.repository: failed to build query")

	// ErrExecQuery is returned when a statement fails to execute.
	ErrExecQuery = errors.New("workday.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("workday.repository: failed to scan row")
)
