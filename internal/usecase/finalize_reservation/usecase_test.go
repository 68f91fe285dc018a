package finalize_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	requestRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/request"
	reservationRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/reservation"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRequestRepo struct {
	hold     *domain.ReservationRequest
	occupied []domain.Interval
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.ReservationRequest, error) {
	if f.hold == nil || f.hold.ID != id {
		return nil, requestRepo.ErrRequestNotFound
	}
	return f.hold, nil
}

func (f *fakeRequestRepo) ListOccupiedIntervals(_ context.Context, _ int64, _, _ time.Time, _ int64) ([]domain.Interval, error) {
	return f.occupied, nil
}

type fakeReservationRepo struct {
	existing *domain.Reservation
	upserted *domain.Reservation
}

func (f *fakeReservationRepo) GetByRequestID(_ context.Context, requestID int64) (*domain.Reservation, error) {
	if f.existing == nil || f.existing.RequestID != requestID {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.existing, nil
}

func (f *fakeReservationRepo) Upsert(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.existing != nil && f.existing.RequestID == res.RequestID {
		res.ID = f.existing.ID
		res.Status = f.existing.Status
	} else {
		res.ID = 500
	}
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.upserted = res
	return res, nil
}

type recordingNotifier struct {
	newReservations []*domain.Reservation
}

func (n *recordingNotifier) NewReservation(res *domain.Reservation) {
	n.newReservations = append(n.newReservations, res)
}

func testHold(now time.Time) *domain.ReservationRequest {
	return &domain.ReservationRequest{
		ID:           10,
		Date:         time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "11:00",
		ServiceID:    2,
		EmployeeID:   ptr.Ptr(int64(1)),
		RequestToken: "token-10",
		ExpiresAt:    now.Add(10 * time.Minute),
	}
}

func validRequest() *Request {
	return &Request{
		RequestID:    10,
		RequestToken: "token-10",
		CustomerName: "Maria Nowak",
		Email:        "maria@example.com",
	}
}

func newTestUseCase(requests *fakeRequestRepo, reservations *fakeReservationRepo, notifier *recordingNotifier, now time.Time) *UseCase {
	uc := NewUseCase(requests, reservations, passthroughTx{}, notifier, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func TestUseCase_Execute_CreatesPendingReservation(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	requests := &fakeRequestRepo{hold: testHold(now)}
	reservations := &fakeReservationRepo{}
	notifier := &recordingNotifier{}

	uc := newTestUseCase(requests, reservations, notifier, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, int64(10), resp.RequestID)
	assert.Equal(t, "token-10", resp.RequestToken)
	require.Len(t, notifier.newReservations, 1)
	assert.Equal(t, resp.ID, notifier.newReservations[0].ID)
}

func TestUseCase_Execute_TokenMismatch(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	requests := &fakeRequestRepo{hold: testHold(now)}
	notifier := &recordingNotifier{}

	uc := newTestUseCase(requests, &fakeReservationRepo{}, notifier, now)

	req := validRequest()
	req.RequestToken = "someone-elses-token"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTokenMismatch)
	assert.Empty(t, notifier.newReservations)
}

func TestUseCase_Execute_RequestNotFound(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRequestRepo{}, &fakeReservationRepo{}, &recordingNotifier{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestUseCase_Execute_ExpiredUnclaimedHold(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	hold := testHold(now)
	hold.ExpiresAt = now.Add(-time.Minute)
	requests := &fakeRequestRepo{hold: hold}

	uc := newTestUseCase(requests, &fakeReservationRepo{}, &recordingNotifier{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRequestExpired)
}

func TestUseCase_Execute_ConflictingReservation(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	requests := &fakeRequestRepo{
		hold:     testHold(now),
		occupied: []domain.Interval{{Start: "10:30", End: "11:30"}},
	}
	reservations := &fakeReservationRepo{}

	uc := newTestUseCase(requests, reservations, &recordingNotifier{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrConflictingReservation)
	assert.Nil(t, reservations.upserted)
}

func TestUseCase_Execute_BackToBackIsNotAConflict(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	requests := &fakeRequestRepo{
		hold: testHold(now),
		occupied: []domain.Interval{
			{Start: "09:00", End: "10:00"},
			{Start: "11:00", End: "12:00"},
		},
	}

	uc := newTestUseCase(requests, &fakeReservationRepo{}, &recordingNotifier{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_ResubmissionUpdatesContactDetails(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	hold := testHold(now)
	// The hold has lapsed, but a reservation already claimed it.
	hold.ExpiresAt = now.Add(-time.Hour)

	requests := &fakeRequestRepo{hold: hold}
	reservations := &fakeReservationRepo{
		existing: &domain.Reservation{
			ID:           500,
			RequestID:    10,
			RequestToken: "token-10",
			CustomerName: "Maria Nowak",
			Status:       domain.StatusConfirmed,
		},
	}

	uc := newTestUseCase(requests, reservations, &recordingNotifier{}, now)

	req := validRequest()
	req.Phone = "+48123456789"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// The existing reservation is updated in place, status untouched.
	assert.Equal(t, int64(500), resp.ID)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, "+48123456789", reservations.upserted.Phone)
}

func TestUseCase_Execute_InvalidContactDetails(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRequestRepo{hold: testHold(now)}, &fakeReservationRepo{}, &recordingNotifier{}, now)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.CustomerName = "  " }},
		{name: "no contact channel", mutate: func(r *Request) { r.Email = "" }},
		{name: "missing token", mutate: func(r *Request) { r.RequestToken = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}
