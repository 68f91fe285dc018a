package create_reservation_request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	catalogRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/catalog"
)

// UseCase creates reservation requests: the time-boxed holds a customer
// places on a slot before submitting contact details.
type UseCase struct {
	catalogRepo  CatalogRepository
	requestRepo  RequestRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	catalogRepo CatalogRepository,
	requestRepo RequestRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		requestRepo:  requestRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the hold invariants, generates the correlation token
// and expiry, and persists the request. Nothing is persisted on validation
// failure.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservationRequest: service=%d, date=%s, time=%s-%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservationRequest: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservationRequest: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservationRequest: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if req.EmployeeID != nil {
		if _, err := uc.catalogRepo.GetEmployee(ctx, *req.EmployeeID); err != nil {
			if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
				uc.logger.Warn("CreateReservationRequest: employee id=%d not found", *req.EmployeeID)
				return nil, ErrEmployeeNotFound
			}
			uc.logger.Error("CreateReservationRequest: failed to get employee id=%d: %v", *req.EmployeeID, err)
			return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}
	}

	if err := validateInvariants(req, service, now); err != nil {
		uc.logger.Warn("CreateReservationRequest: invariant violated: %v", err)
		return nil, err
	}

	hold := &domain.ReservationRequest{
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ServiceID:    req.ServiceID,
		EmployeeID:   req.EmployeeID,
		RequestToken: domain.NewRequestToken(now, req.ServiceID),
		ExpiresAt:    now.Add(domain.RequestTTLMinutes * time.Minute),
	}

	created, err := uc.requestRepo.Create(ctx, hold)
	if err != nil {
		uc.logger.Error("CreateReservationRequest: failed to persist request: %v", err)
		return nil, fmt.Errorf("%w: failed to persist request: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservationRequest: created request id=%d, token=%s, expires=%s",
		created.ID, created.RequestToken, created.ExpiresAt.Format(time.RFC3339))

	return &Response{
		ID:           created.ID,
		Date:         created.Date,
		StartTime:    created.StartTime,
		EndTime:      created.EndTime,
		ServiceID:    created.ServiceID,
		EmployeeID:   created.EmployeeID,
		RequestToken: created.RequestToken,
		ExpiresAt:    created.ExpiresAt,
		CreatedAt:    created.CreatedAt,
	}, nil
}
