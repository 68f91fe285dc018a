// Package reservation persists finalized bookings and their status
// transitions.
package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/dbmetrics"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/psqlbuilder"
)

// Repository persists reservations.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the reservation or, when its request already has one,
// updates the contact fields of the existing row. The unique request link
// makes this the atomic check-and-write guarding reservation creation:
// resubmitting the same hold can never produce a second reservation.
func (r *Repository) Upsert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"request_id",
			"customer_id",
			"request_token",
			"customer_name",
			"email",
			"phone",
			"notes",
			"status",
		).
		Values(
			res.RequestID,
			res.CustomerID,
			res.RequestToken,
			res.CustomerName,
			res.Email,
			res.Phone,
			res.Notes,
			res.Status,
		).
		Suffix(`ON CONFLICT (request_id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			customer_name = EXCLUDED.customer_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID returns the reservation with its owning request joined in.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectJoined().
		Where(squirrel.Eq{"res.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByToken returns the reservation carrying the given correlation token,
// with its owning request joined in. Customer-facing cancel links resolve
// through this.
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectJoined().
		Where(squirrel.Eq{"res.request_token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByToken")
}

// GetByRequestID returns the reservation claiming the given request, if
// any. The finalize flow uses it to tell an expired unclaimed hold apart
// from a resubmission of an already-finalized one.
func (r *Repository) GetByRequestID(ctx context.Context, requestID int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectJoined().
		Where(squirrel.Eq{"res.request_id": requestID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequestID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByRequestID")
}

// UpdateStatus moves the reservation to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// MarkPastElapsed moves every CONFIRMED reservation whose appointment ended
// strictly before now to PAST and returns the number of rows transitioned.
// Single-statement predicate, safe alongside booking traffic.
func (r *Repository) MarkPastElapsed(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusPast).
		Set("updated_at", squirrel.Expr("NOW()")).
		From("reservation_requests rr").
		Where(squirrel.Expr("reservations.request_id = rr.id")).
		Where(squirrel.Eq{"reservations.status": domain.StatusConfirmed}).
		Where(squirrel.Expr("(rr.date + rr.end_time) < ?", now)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkPastElapsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkPastElapsed - execute update: %v", ErrExecQuery, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkPastElapsed - get rows affected: %v", ErrExecQuery, err)
	}

	return updated, nil
}

func selectJoined() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"res.id",
		"res.request_id",
		"res.customer_id",
		"res.request_token",
		"res.customer_name",
		"res.email",
		"res.phone",
		"res.notes",
		"res.status",
		"res.created_at",
		"res.updated_at",
		"rr.date",
		"rr.start_time",
		"rr.end_time",
		"rr.service_id",
		"rr.employee_id",
		"rr.expires_at",
	).
		From("reservations res").
		Join("reservation_requests rr ON rr.id = res.request_id")
}

func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Reservation, error) {
	var res domain.Reservation
	var req domain.ReservationRequest
	var rawStatus string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RequestID,
		&res.CustomerID,
		&res.RequestToken,
		&res.CustomerName,
		&res.Email,
		&res.Phone,
		&res.Notes,
		&rawStatus,
		&createdAt,
		&updatedAt,
		&req.Date,
		&req.StartTime,
		&req.EndTime,
		&req.ServiceID,
		&req.EmployeeID,
		&req.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	status, ok := domain.ParseReservationStatus(rawStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %s - unknown reservation status %q", ErrScanRow, op, rawStatus)
	}
	res.Status = status

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	req.ID = res.RequestID
	req.RequestToken = res.RequestToken
	res.Request = &req

	return &res, nil
}
