package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/internal/integrations/notifier"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingSender struct {
	mu    sync.Mutex
	sent  []*notifier.Message
	block chan struct{}
}

func (s *recordingSender) Send(_ context.Context, msg *notifier.Message) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []*notifier.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*notifier.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

func testReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		RequestID:    id,
		CustomerName: "Maria",
		Email:        "maria@example.com",
		Status:       domain.StatusPending,
		Request: &domain.ReservationRequest{
			ID:        id,
			Date:      time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			EndTime:   "11:00",
			ServiceID: 2,
		},
	}
}

func TestDispatcher_DeliversEnqueuedMessages(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 8, nopLogger{})

	d.NewReservation(testReservation(1))
	d.ReservationConfirmed(testReservation(2))
	d.Close()

	sent := sender.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, notifier.EventNewReservation, sent[0].Event)
	assert.Equal(t, int64(1), sent[0].ReservationID)
	assert.Equal(t, notifier.EventReservationConfirmed, sent[1].Event)
	assert.Equal(t, int64(2), sent[1].ReservationID)
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	block := make(chan struct{})
	sender := &recordingSender{block: block}
	d := NewDispatcher(sender, 1, nopLogger{})

	// With the worker blocked, one message sits in flight, one fills the
	// queue, and everything beyond that is dropped instead of blocking the
	// caller.
	for i := int64(1); i <= 5; i++ {
		d.NewReservation(testReservation(i))
	}

	close(block)
	d.Close()

	assert.LessOrEqual(t, len(sender.messages()), 2)
	assert.NotEmpty(t, sender.messages())
}

func TestDispatcher_EnqueueAfterCloseIsANoOp(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 8, nopLogger{})
	d.Close()

	// Must not panic or deliver.
	d.NewReservation(testReservation(1))
	d.Close()

	assert.Empty(t, sender.messages())
}
