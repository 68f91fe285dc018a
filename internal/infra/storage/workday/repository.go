package workday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/dbmetrics"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/psqlbuilder"
)

// Repository reads employee working-hours windows.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a work-day repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByEmployeeAndDate returns the employee's working-hours windows on a
// date, ordered by start time. Normally one row; several disjoint windows
// per day are supported.
func (r *Repository) ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.WorkDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"employee_id",
		"date",
		"start_time",
		"end_time",
	).
		From("work_days").
		Where(squirrel.Eq{"employee_id": employeeID, "date": domain.DateOnly(date)}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWorkDays(rows)
}

// ListDatesAfter returns the distinct dates strictly after the given date on
// which the employee works, ascending. The horizon is small (tens of rows),
// so the next-available-date scan reads them all.
func (r *Repository) ListDatesAfter(ctx context.Context, employeeID int64, after time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT date").
		From("work_days").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Gt{"date": domain.DateOnly(after)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDatesAfter - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDates(ctx, executor, query, args, "ListDatesAfter")
}

// ListDatesInRange returns the distinct dates in [from, to] on which the
// employee works, ascending.
func (r *Repository) ListDatesInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT date").
		From("work_days").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"date": domain.DateOnly(to)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDatesInRange - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDates(ctx, executor, query, args, "ListDatesInRange")
}

func (r *Repository) queryDates(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]time.Time, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: %s - scan date: %v", ErrScanRow, op, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return dates, nil
}

func scanWorkDays(rows *sql.Rows) ([]*domain.WorkDay, error) {
	workDays := make([]*domain.WorkDay, 0)

	for rows.Next() {
		var wd domain.WorkDay
		if err := rows.Scan(
			&wd.ID,
			&wd.EmployeeID,
			&wd.Date,
			&wd.StartTime,
			&wd.EndTime,
		); err != nil {
			return nil, fmt.Errorf("%w: scanWorkDays - scan row: %v", ErrScanRow, err)
		}
		if err := wd.Validate(); err != nil {
			return nil, fmt.Errorf("%w: scanWorkDays - work day id=%d: %v", ErrScanRow, wd.ID, err)
		}
		workDays = append(workDays, &wd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWorkDays - rows error: %v", ErrScanRow, err)
	}

	return workDays, nil
}
