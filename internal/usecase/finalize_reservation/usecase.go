package finalize_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	requestRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/request"
	reservationRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/reservation"
)

// UseCase turns a live hold into a PENDING reservation. The conflict
// re-check and the reservation write run inside one SERIALIZABLE
// transaction, with the occupied rows locked, so two customers finalizing
// overlapping holds cannot both succeed.
type UseCase struct {
	requestRepo     RequestRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	requestRepo RequestRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:     requestRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute validates the finalize request and commits the reservation.
// Resubmitting an already-finalized hold updates the contact details and
// returns the existing reservation; it never creates a second one.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinalizeReservation: request id=%d", req.RequestID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FinalizeReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var saved *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		hold, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		if hold.RequestToken != req.RequestToken {
			return ErrTokenMismatch
		}

		existing, err := uc.reservationRepo.GetByRequestID(txCtx, hold.ID)
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return fmt.Errorf("%w: failed to check existing reservation: %v", ErrInternal, err)
		}

		// An expired hold is gone only while unclaimed; once a reservation
		// claimed it the customer is merely updating contact details.
		if existing == nil {
			if hold.IsExpired(now) {
				return ErrRequestExpired
			}

			if err := uc.checkConflicts(txCtx, hold, now); err != nil {
				return err
			}
		}

		saved, err = uc.reservationRepo.Upsert(txCtx, &domain.Reservation{
			RequestID:    hold.ID,
			CustomerID:   req.CustomerID,
			RequestToken: hold.RequestToken,
			CustomerName: req.CustomerName,
			Email:        req.Email,
			Phone:        req.Phone,
			Notes:        req.Notes,
			Status:       domain.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to upsert reservation: %v", ErrInternal, err)
		}
		saved.Request = hold

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound),
			errors.Is(err, ErrTokenMismatch),
			errors.Is(err, ErrRequestExpired),
			errors.Is(err, ErrConflictingReservation):
			uc.logger.Warn("FinalizeReservation: rejected request id=%d: %v", req.RequestID, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("FinalizeReservation: failed for request id=%d: %v", req.RequestID, err)
			return nil, err
		default:
			uc.logger.Error("FinalizeReservation: transaction failed for request id=%d: %v", req.RequestID, err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("FinalizeReservation: reservation id=%d (%s) for request id=%d",
		saved.ID, saved.Status, req.RequestID)

	// Best effort only; dispatch problems are logged by the notifier and
	// never unwind a committed reservation.
	uc.notifier.NewReservation(saved)

	return &Response{
		ID:           saved.ID,
		RequestID:    saved.RequestID,
		RequestToken: saved.RequestToken,
		CustomerName: saved.CustomerName,
		Status:       saved.Status,
		Date:         saved.Request.Date,
		StartTime:    saved.Request.StartTime,
		EndTime:      saved.Request.EndTime,
		ServiceID:    saved.Request.ServiceID,
		EmployeeID:   saved.Request.EmployeeID,
		CreatedAt:    saved.CreatedAt,
	}, nil
}

// checkConflicts re-reads the occupied intervals for the hold's employee
// and day, locking them, and rejects any strict overlap with the held
// range. Holds without an assigned employee have nothing to conflict with.
func (uc *UseCase) checkConflicts(ctx context.Context, hold *domain.ReservationRequest, now time.Time) error {
	if hold.EmployeeID == nil {
		return nil
	}

	occupied, err := uc.requestRepo.ListOccupiedIntervals(ctx, *hold.EmployeeID, hold.Date, now, hold.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to get occupied intervals: %v", ErrInternal, err)
	}

	if domain.HasConflict(hold.Interval(), occupied) {
		return ErrConflictingReservation
	}

	return nil
}
