// Package catalog reads the booking catalog: salon services and the staff
// members who provide them.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/dbmetrics"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/psqlbuilder"
)

// Repository reads services and employees.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService returns the service with the given id.
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"duration_minutes",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.DurationMinutes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetEmployee returns the employee with the given id.
func (r *Repository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"active",
	).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployee - build select query: %v", ErrBuildQuery, err)
	}

	var emp domain.Employee
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployee - scan employee: %v", ErrScanRow, err)
	}

	return &emp, nil
}

// EmployeeProvidesService reports whether the employee is assigned to the
// service in the employee_services join table.
func (r *Repository) EmployeeProvidesService(ctx context.Context, employeeID, serviceID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(1)").
		From("employee_services").
		Where(squirrel.Eq{"employee_id": employeeID, "service_id": serviceID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: EmployeeProvidesService - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: EmployeeProvidesService - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}
