package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	reservationRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	byID    map[int64]*domain.Reservation
	byToken map[string]*domain.Reservation
	updates []domain.ReservationStatus
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeRepo) GetByToken(_ context.Context, token string) (*domain.Reservation, error) {
	res, ok := f.byToken[token]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	res, ok := f.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = status
	f.updates = append(f.updates, status)
	return nil
}

type recordingNotifier struct {
	confirmed []*domain.Reservation
}

func (n *recordingNotifier) ReservationConfirmed(res *domain.Reservation) {
	n.confirmed = append(n.confirmed, res)
}

func newReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		RequestID:    id,
		RequestToken: "tok",
		CustomerName: "Maria",
		Status:       status,
		Request: &domain.ReservationRequest{
			ID:        id,
			Date:      time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			EndTime:   "11:00",
			ServiceID: 2,
		},
	}
}

func newTestService(repo *fakeRepo, notifier *recordingNotifier) *Service {
	return NewService(repo, notifier, nopLogger{})
}

func TestService_Confirm(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{
		1: newReservation(1, domain.StatusPending),
	}}
	notifier := &recordingNotifier{}
	svc := newTestService(repo, notifier)

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	require.Len(t, notifier.confirmed, 1)

	// A second confirm is rejected and writes nothing.
	_, err = svc.Confirm(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Len(t, repo.updates, 1)
	assert.Len(t, notifier.confirmed, 1)
}

func TestService_Confirm_NonPendingStates(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusCancelled, domain.StatusPast,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeRepo{byID: map[int64]*domain.Reservation{
				1: newReservation(1, status),
			}}
			svc := newTestService(repo, &recordingNotifier{})

			_, err := svc.Confirm(context.Background(), 1)
			assert.ErrorIs(t, err, ErrAlreadyConfirmed)
			// The stored status stays whatever it was.
			assert.Equal(t, status, repo.byID[1].Status)
		})
	}
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{
		1: newReservation(1, domain.StatusConfirmed),
	}}
	svc := newTestService(repo, &recordingNotifier{})

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Status)

	// Cancelling again reports the no-op distinctly; the end state is the
	// same either way.
	_, err = svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, domain.StatusCancelled, repo.byID[1].Status)
	assert.Len(t, repo.updates, 1)
}

func TestService_CancelByToken(t *testing.T) {
	res := newReservation(1, domain.StatusPending)
	repo := &fakeRepo{
		byID:    map[int64]*domain.Reservation{1: res},
		byToken: map[string]*domain.Reservation{"tok": res},
	}
	svc := newTestService(repo, &recordingNotifier{})

	resp, err := svc.CancelByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Status)

	_, err = svc.CancelByToken(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{
		1: newReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &recordingNotifier{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Wed, June 10, 2026", resp.DateLabel)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
