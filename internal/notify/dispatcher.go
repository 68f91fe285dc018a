// Package notify decouples the booking flow from notification delivery: a
// buffered queue and a single worker drain messages to the notification
// client. Enqueueing never blocks; when the queue is full or delivery
// fails the message is dropped and logged. A notification is a courtesy,
// a reservation is not.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/internal/integrations/notifier"
)

const (
	defaultQueueSize = 64
	sendTimeout      = 10 * time.Second
)

// Sender delivers one message. *notifier.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, msg *notifier.Message) error
}

// Logger is the printf-style logger consumed by the dispatcher.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dispatcher queues notification messages for asynchronous delivery.
type Dispatcher struct {
	sender Sender
	log    Logger

	queue chan *notifier.Message
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher and starts its delivery worker.
// queueSize falls back to a small default when non-positive.
func NewDispatcher(sender Sender, queueSize int, log Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	d := &Dispatcher{
		sender: sender,
		log:    log,
		queue:  make(chan *notifier.Message, queueSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// NewReservation enqueues a "reservation created" notification.
func (d *Dispatcher) NewReservation(res *domain.Reservation) {
	d.enqueue(notifier.MessageFromReservation(notifier.EventNewReservation, res))
}

// ReservationConfirmed enqueues a "reservation confirmed" notification.
func (d *Dispatcher) ReservationConfirmed(res *domain.Reservation) {
	d.enqueue(notifier.MessageFromReservation(notifier.EventReservationConfirmed, res))
}

// Close stops accepting messages, lets the worker drain the queue and
// waits for it to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	alreadyClosed := d.closed
	d.closed = true
	d.mu.Unlock()

	if !alreadyClosed {
		close(d.queue)
	}
	d.wg.Wait()
}

func (d *Dispatcher) enqueue(msg *notifier.Message) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("notify: dispatcher closed, dropping %s for reservation id=%d", msg.Event, msg.ReservationID)
		return
	}

	select {
	case d.queue <- msg:
	default:
		d.log.Warn("notify: queue full, dropping %s for reservation id=%d", msg.Event, msg.ReservationID)
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.sender.Send(ctx, msg)
		cancel()

		if err != nil {
			d.log.Error("notify: failed to deliver %s for reservation id=%d: %v", msg.Event, msg.ReservationID, err)
			continue
		}
		d.log.Info("notify: delivered %s for reservation id=%d", msg.Event, msg.ReservationID)
	}
}
