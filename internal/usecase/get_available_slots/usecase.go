package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	catalogRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/catalog"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// UseCase computes the bookable start times for one employee, service and
// date. The availability read is an advisory snapshot: it takes no locks,
// and the finalize path re-validates against current occupied intervals
// before committing.
type UseCase struct {
	workDayRepo  WorkDayRepository
	catalogRepo  CatalogRepository
	requestRepo  RequestRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	workDayRepo WorkDayRepository,
	catalogRepo CatalogRepository,
	requestRepo RequestRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		workDayRepo:  workDayRepo,
		catalogRepo:  catalogRepo,
		requestRepo:  requestRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the slot computation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: employee=%d, service=%d, date=%s",
		req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	employee, err := uc.catalogRepo.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetAvailableSlots: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	provides, err := uc.catalogRepo.EmployeeProvidesService(ctx, req.EmployeeID, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check employee services: %v", err)
		return nil, fmt.Errorf("%w: failed to check employee services: %v", ErrInternal, err)
	}
	if !provides {
		uc.logger.Warn("GetAvailableSlots: employee id=%d does not provide service id=%d",
			req.EmployeeID, req.ServiceID)
		return nil, ErrServiceNotProvided
	}

	workDays, err := uc.workDayRepo.ListByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get work days: %v", err)
		return nil, fmt.Errorf("%w: failed to get work days: %v", ErrInternal, err)
	}
	if len(workDays) == 0 {
		uc.logger.Info("GetAvailableSlots: employee id=%d has no working hours on %s",
			req.EmployeeID, req.Date.Format(domain.DateFormat))
		return nil, ErrNoWorkingDay
	}

	occupied, err := uc.requestRepo.ListOccupiedIntervals(ctx, req.EmployeeID, req.Date, now, 0)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied intervals: %v", ErrInternal, err)
	}

	// One scan per working-hours window; windows are disjoint and ordered
	// by start time, so concatenation keeps the ascending slot order.
	slots := make([]types.TimeString, 0)
	for _, workDay := range workDays {
		window := workDay.Window()
		windowSlots, err := generateAvailableSlots(
			window.Start,
			window.End,
			service.DurationMinutes,
			occupied,
		)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		slots = append(slots, windowSlots...)
	}

	slots = filterPastSlots(slots, req.Date, now)

	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no availability for employee=%d, service=%d, date=%s",
			req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat))
		return nil, ErrNoAvailability
	}

	uc.logger.Info("GetAvailableSlots: %d slots for employee=%d, service=%d, date=%s",
		len(slots), req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		DateLabel:    req.Date.Format(domain.DateLabelFormat),
		EmployeeName: employee.Name,
		ServiceID:    req.ServiceID,
		Slots:        slots,
	}, nil
}
