// Package maintenance runs the periodic cleanup jobs: sweeping expired
// unclaimed holds and moving elapsed CONFIRMED reservations to PAST. Each
// job is a single bounded statement whose predicate is evaluated at
// execution time, so both are safe to run alongside booking traffic.
package maintenance

import (
	"context"
	"fmt"
)

// Service executes the cleanup jobs.
type Service struct {
	requestRepo     RequestRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates a maintenance service.
func NewService(
	requestRepo RequestRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:     requestRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// SweepExpiredRequests deletes holds that lapsed and were never claimed by
// a reservation. Returns the number of rows removed.
func (s *Service) SweepExpiredRequests(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	deleted, err := s.requestRepo.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("SweepExpiredRequests: sweep failed: %v", err)
		return 0, fmt.Errorf("%w: SweepExpiredRequests - sweep failed: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("SweepExpiredRequests: removed %d expired requests", deleted)
	}
	return deleted, nil
}

// MarkPastReservations moves every CONFIRMED reservation whose appointment
// has fully elapsed to PAST. Returns the number of rows transitioned.
func (s *Service) MarkPastReservations(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	updated, err := s.reservationRepo.MarkPastElapsed(ctx, now)
	if err != nil {
		s.logger.Error("MarkPastReservations: update failed: %v", err)
		return 0, fmt.Errorf("%w: MarkPastReservations - update failed: %v", ErrInternal, err)
	}

	if updated > 0 {
		s.logger.Info("MarkPastReservations: marked %d reservations as past", updated)
	}
	return updated, nil
}
