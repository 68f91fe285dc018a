package create_reservation_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	catalogRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/catalog"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeCatalogRepo struct {
	service     *domain.Service
	serviceErr  error
	employee    *domain.Employee
	employeeErr error
}

func (f *fakeCatalogRepo) GetService(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.serviceErr
}

func (f *fakeCatalogRepo) GetEmployee(_ context.Context, _ int64) (*domain.Employee, error) {
	return f.employee, f.employeeErr
}

type fakeRequestRepo struct {
	created *domain.ReservationRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, req *domain.ReservationRequest) (*domain.ReservationRequest, error) {
	req.ID = 77
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.created = req
	return req, nil
}

func newTestUseCase(catalog *fakeCatalogRepo, requests *fakeRequestRepo, now time.Time) *UseCase {
	uc := NewUseCase(catalog, requests, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func defaultCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		service:  &domain.Service{ID: 2, Name: "Haircut", DurationMinutes: 60},
		employee: &domain.Employee{ID: 1, Name: "Anna", Active: true},
	}
}

func TestUseCase_Execute_CreatesHold(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	requests := &fakeRequestRepo{}

	uc := newTestUseCase(defaultCatalog(), requests, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "11:00",
		ServiceID:  2,
		EmployeeID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, now.Add(domain.RequestTTLMinutes*time.Minute), resp.ExpiresAt)
	assert.NotEmpty(t, resp.RequestToken)
	assert.Equal(t, resp.RequestToken, requests.created.RequestToken)
}

func TestUseCase_Execute_ValidationFailures(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	valid := func() *Request {
		return &Request{
			Date:      time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			EndTime:   "11:00",
			ServiceID: 2,
		}
	}

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "start equals end", mutate: func(r *Request) { r.EndTime = "10:00" }},
		{name: "start after end", mutate: func(r *Request) { r.StartTime = "11:30" }},
		{name: "longer than service duration", mutate: func(r *Request) { r.EndTime = "11:15" }},
		{name: "date in the past", mutate: func(r *Request) {
			r.Date = time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		}},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "ten" }},
		{name: "missing service", mutate: func(r *Request) { r.ServiceID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := &fakeRequestRepo{}
			uc := newTestUseCase(defaultCatalog(), requests, now)

			req := valid()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			// Nothing persisted on a rejected request.
			assert.Nil(t, requests.created)
		})
	}
}

func TestUseCase_Execute_UnknownServiceAndEmployee(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	req := &Request{
		Date:       time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "11:00",
		ServiceID:  2,
		EmployeeID: ptr.Ptr(int64(1)),
	}

	t.Run("service not found", func(t *testing.T) {
		catalog := defaultCatalog()
		catalog.service = nil
		catalog.serviceErr = catalogRepo.ErrServiceNotFound

		uc := newTestUseCase(catalog, &fakeRequestRepo{}, now)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("employee not found", func(t *testing.T) {
		catalog := defaultCatalog()
		catalog.employee = nil
		catalog.employeeErr = catalogRepo.ErrEmployeeNotFound

		uc := newTestUseCase(catalog, &fakeRequestRepo{}, now)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestUseCase_Execute_SameDayHoldAllowed(t *testing.T) {
	// A hold for later today is valid even though the date is "today".
	now := time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)
	requests := &fakeRequestRepo{}
	uc := newTestUseCase(defaultCatalog(), requests, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		ServiceID: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, requests.created)
}
