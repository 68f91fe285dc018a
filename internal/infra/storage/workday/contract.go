package workday

import "github.com/Pawel-Truszkowski/SalonManager/pkg/dbmetrics"

// Reuse the dbmetrics query surface so the repository works on the plain
// pool, the instrumented wrapper and open transactions alike.
type DBExecutor = dbmetrics.DBExecutor
