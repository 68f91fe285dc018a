package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	catalogRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/catalog"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeWorkDayRepo struct {
	workDays []*domain.WorkDay
	err      error
}

func (f *fakeWorkDayRepo) ListByEmployeeAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.WorkDay, error) {
	return f.workDays, f.err
}

type fakeCatalogRepo struct {
	employee    *domain.Employee
	employeeErr error
	service     *domain.Service
	serviceErr  error
	provides    bool
}

func (f *fakeCatalogRepo) GetEmployee(_ context.Context, _ int64) (*domain.Employee, error) {
	return f.employee, f.employeeErr
}

func (f *fakeCatalogRepo) GetService(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.serviceErr
}

func (f *fakeCatalogRepo) EmployeeProvidesService(_ context.Context, _, _ int64) (bool, error) {
	return f.provides, nil
}

type fakeRequestRepo struct {
	occupied []domain.Interval
	err      error
}

func (f *fakeRequestRepo) ListOccupiedIntervals(_ context.Context, _ int64, _, _ time.Time, _ int64) ([]domain.Interval, error) {
	return f.occupied, f.err
}

func newTestUseCase(workDays *fakeWorkDayRepo, catalog *fakeCatalogRepo, requests *fakeRequestRepo, now time.Time) *UseCase {
	uc := NewUseCase(workDays, catalog, requests, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func defaultCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		employee: &domain.Employee{ID: 1, Name: "Anna", Active: true},
		service:  &domain.Service{ID: 2, Name: "Haircut", DurationMinutes: 60},
		provides: true,
	}
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	workDays := &fakeWorkDayRepo{workDays: []*domain.WorkDay{
		{EmployeeID: 1, Date: date, StartTime: "09:00", EndTime: "17:00"},
	}}
	requests := &fakeRequestRepo{occupied: []domain.Interval{{Start: "10:00", End: "11:00"}}}

	uc := newTestUseCase(workDays, defaultCatalog(), requests, now)

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, Date: date})
	require.NoError(t, err)

	assert.Equal(t, "Anna", resp.EmployeeName)
	assert.Equal(t, "Wed, June 10, 2026", resp.DateLabel)
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
}

func TestUseCase_Execute_MultipleWindows(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	workDays := &fakeWorkDayRepo{workDays: []*domain.WorkDay{
		{EmployeeID: 1, Date: date, StartTime: "09:00", EndTime: "11:00"},
		{EmployeeID: 1, Date: date, StartTime: "14:00", EndTime: "16:00"},
	}}

	uc := newTestUseCase(workDays, defaultCatalog(), &fakeRequestRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, Date: date})
	require.NoError(t, err)

	// No candidate may bridge the 11:00-14:00 gap between windows.
	assert.Equal(t, []types.TimeString{"09:00", "09:15", "09:30", "09:45", "10:00",
		"14:00", "14:15", "14:30", "14:45", "15:00"}, resp.Slots)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	req := &Request{EmployeeID: 1, ServiceID: 2, Date: date}

	t.Run("employee not found", func(t *testing.T) {
		catalog := defaultCatalog()
		catalog.employee = nil
		catalog.employeeErr = catalogRepo.ErrEmployeeNotFound

		uc := newTestUseCase(&fakeWorkDayRepo{}, catalog, &fakeRequestRepo{}, now)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		catalog := defaultCatalog()
		catalog.service = nil
		catalog.serviceErr = catalogRepo.ErrServiceNotFound

		uc := newTestUseCase(&fakeWorkDayRepo{}, catalog, &fakeRequestRepo{}, now)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("service not provided", func(t *testing.T) {
		catalog := defaultCatalog()
		catalog.provides = false

		uc := newTestUseCase(&fakeWorkDayRepo{}, catalog, &fakeRequestRepo{}, now)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotProvided)
	})

	t.Run("no working day", func(t *testing.T) {
		uc := newTestUseCase(&fakeWorkDayRepo{}, defaultCatalog(), &fakeRequestRepo{}, now)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrNoWorkingDay)
	})

	t.Run("fully booked day", func(t *testing.T) {
		workDays := &fakeWorkDayRepo{workDays: []*domain.WorkDay{
			{EmployeeID: 1, Date: date, StartTime: "09:00", EndTime: "17:00"},
		}}
		requests := &fakeRequestRepo{occupied: []domain.Interval{{Start: "09:00", End: "17:00"}}}

		uc := newTestUseCase(workDays, defaultCatalog(), requests, now)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrNoAvailability)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(&fakeWorkDayRepo{}, defaultCatalog(), &fakeRequestRepo{}, now)
		_, err := uc.Execute(context.Background(), &Request{EmployeeID: 0, ServiceID: 2, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUseCase_Execute_TodayDropsElapsedSlots(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC)

	workDays := &fakeWorkDayRepo{workDays: []*domain.WorkDay{
		{EmployeeID: 1, Date: date, StartTime: "09:00", EndTime: "17:00"},
	}}

	uc := newTestUseCase(workDays, defaultCatalog(), &fakeRequestRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, Date: date})
	require.NoError(t, err)

	// 15:00 itself is not strictly in the future.
	assert.Equal(t, []types.TimeString{"15:15", "15:30", "15:45", "16:00"}, resp.Slots)
}
