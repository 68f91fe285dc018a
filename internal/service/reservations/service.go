// Package reservations manages finalized bookings after creation: staff
// lookups, confirmation and cancellation, including customer self-cancel
// by token.
package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	reservationRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/reservation"
	"github.com/Pawel-Truszkowski/SalonManager/internal/service/reservations/models"
)

// Service manages reservation status transitions.
type Service struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	logger          Logger
}

// NewService creates a reservations service.
func NewService(
	reservationRepo ReservationRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID fetches a reservation for staff views.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.getByID(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(res), nil
}

// Confirm moves a PENDING reservation to CONFIRMED and enqueues the
// confirmation notification. Confirming anything else leaves the stored
// status untouched and reports ErrAlreadyConfirmed.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: confirming reservation id=%d", id)

	res, err := s.getByID(ctx, id, "Confirm")
	if err != nil {
		return nil, err
	}

	if !res.CanBeConfirmed() {
		s.logger.Warn("Confirm: reservation id=%d is %s, not PENDING", id, res.Status)
		return nil, ErrAlreadyConfirmed
	}

	if err := s.updateStatus(ctx, id, domain.StatusConfirmed, "Confirm"); err != nil {
		return nil, err
	}
	res.Status = domain.StatusConfirmed

	s.logger.Info("Confirm: reservation id=%d confirmed", id)

	// Best effort; failures are logged by the notifier, the confirmation
	// stands regardless.
	s.notifier.ReservationConfirmed(res)

	return models.FromDomainReservation(res), nil
}

// Cancel moves a reservation to CANCELLED regardless of its current
// status. Cancelling an already-cancelled reservation is reported as
// ErrAlreadyCancelled without another write.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	res, err := s.getByID(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	return s.cancel(ctx, res)
}

// CancelByToken cancels the reservation carrying the given correlation
// token. This is the customer self-cancel path; the token stands in for
// authentication.
func (s *Service) CancelByToken(ctx context.Context, token string) (*models.ReservationResponse, error) {
	s.logger.Info("CancelByToken: cancelling reservation by token")

	res, err := s.reservationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("CancelByToken: no reservation for token")
			return nil, ErrReservationNotFound
		}
		s.logger.Error("CancelByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: CancelByToken - repository error: %v", ErrInternal, err)
	}

	return s.cancel(ctx, res)
}

func (s *Service) cancel(ctx context.Context, res *domain.Reservation) (*models.ReservationResponse, error) {
	if res.IsCancelled() {
		s.logger.Warn("cancel: reservation id=%d already cancelled", res.ID)
		return nil, ErrAlreadyCancelled
	}

	if err := s.updateStatus(ctx, res.ID, domain.StatusCancelled, "cancel"); err != nil {
		return nil, err
	}
	res.Status = domain.StatusCancelled

	s.logger.Info("cancel: reservation id=%d cancelled", res.ID)
	return models.FromDomainReservation(res), nil
}

func (s *Service) getByID(ctx context.Context, id int64, op string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}

func (s *Service) updateStatus(ctx context.Context, id int64, status domain.ReservationStatus, op string) error {
	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d disappeared before update", op, id)
			return ErrReservationNotFound
		}
		s.logger.Error("%s: failed to update reservation id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - failed to update status: %v", ErrInternal, op, err)
	}
	return nil
}
