// Package request persists reservation requests, the time-boxed holds that
// occupy a slot until finalized or expired.
package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/dbmetrics"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/psqlbuilder"
)

// Repository persists reservation requests.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation-request repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new request and fills in the generated id and timestamps.
func (r *Repository) Create(ctx context.Context, req *domain.ReservationRequest) (*domain.ReservationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_requests").
		Columns(
			"date",
			"start_time",
			"end_time",
			"service_id",
			"employee_id",
			"request_token",
			"expires_at",
		).
		Values(
			domain.DateOnly(req.Date),
			req.StartTime,
			req.EndTime,
			req.ServiceID,
			req.EmployeeID,
			req.RequestToken,
			req.ExpiresAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID returns the request with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// ListOccupiedIntervals returns the time ranges blocking the employee on a
// date, ordered by start time: live (unexpired) holds that no reservation
// claimed yet, plus holds claimed by a reservation in an occupying status.
// Once a hold is claimed its reservation's status alone decides, so a
// cancelled reservation frees the slot immediately instead of blocking
// until the hold's expires_at. excludeRequestID (0 for none) drops the
// caller's own hold so it does not conflict with itself. Inside a
// transaction the rows are locked FOR UPDATE so the conflict re-check at
// finalize is race-free.
func (r *Repository) ListOccupiedIntervals(ctx context.Context, employeeID int64, date time.Time, now time.Time, excludeRequestID int64) ([]domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	occupying := make([]string, len(domain.OccupyingStatuses))
	for i, status := range domain.OccupyingStatuses {
		occupying[i] = string(status)
	}

	selectBuilder := psqlbuilder.Select("rr.start_time", "rr.end_time").
		From("reservation_requests rr").
		Where(squirrel.Eq{"rr.employee_id": employeeID, "rr.date": domain.DateOnly(date)}).
		Where(squirrel.Or{
			squirrel.Expr(`EXISTS (
				SELECT 1 FROM reservations res
				WHERE res.request_id = rr.id AND res.status = ANY(?)
			)`, pq.Array(occupying)),
			squirrel.And{
				squirrel.Gt{"rr.expires_at": now},
				squirrel.Expr(`NOT EXISTS (
					SELECT 1 FROM reservations res WHERE res.request_id = rr.id
				)`),
			},
		}).
		OrderBy("rr.start_time ASC")

	if excludeRequestID > 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"rr.id": excludeRequestID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF rr")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupiedIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupiedIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.Interval, 0)
	for rows.Next() {
		var iv domain.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("%w: ListOccupiedIntervals - scan interval: %v", ErrScanRow, err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOccupiedIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// DeleteExpired removes requests whose hold lapsed before now and that no
// reservation ever claimed. Returns the number of rows removed. The
// predicate is evaluated at execution time, so the sweep is safe to run
// concurrently with booking traffic.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservation_requests").
		Where(squirrel.Lt{"expires_at": now}).
		Where(squirrel.Expr(`NOT EXISTS (
			SELECT 1 FROM reservations res WHERE res.request_id = reservation_requests.id
		)`)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"service_id",
		"employee_id",
		"request_token",
		"created_at",
		"updated_at",
		"expires_at",
	).From("reservation_requests")
}

func (r *Repository) scanOne(row *sql.Row, op string) (*domain.ReservationRequest, error) {
	var req domain.ReservationRequest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.Date,
		&req.StartTime,
		&req.EndTime,
		&req.ServiceID,
		&req.EmployeeID,
		&req.RequestToken,
		&createdAt,
		&updatedAt,
		&req.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan request: %v", ErrScanRow, op, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
