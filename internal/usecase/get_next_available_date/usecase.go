package get_next_available_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	getAvailableSlots "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_available_slots"
)

// UseCase finds the earliest future working day with at least one bookable
// slot. A bounded linear scan: the working-days horizon is tens of rows, so
// no pre-indexing is needed.
type UseCase struct {
	workDayRepo  WorkDayRepository
	slotsUseCase SlotsUseCase
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	workDayRepo WorkDayRepository,
	slotsUseCase SlotsUseCase,
	logger Logger,
) *UseCase {
	return &UseCase{
		workDayRepo:  workDayRepo,
		slotsUseCase: slotsUseCase,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute scans the employee's working dates strictly after FromDate in
// ascending order and returns the first date whose slot computation yields
// anything.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.EmployeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	fromDate := req.FromDate
	if fromDate.IsZero() {
		fromDate = uc.timeProvider.Now()
	}

	uc.logger.Info("GetNextAvailableDate: employee=%d, service=%d, from=%s",
		req.EmployeeID, req.ServiceID, fromDate.Format(domain.DateFormat))

	dates, err := uc.workDayRepo.ListDatesAfter(ctx, req.EmployeeID, fromDate)
	if err != nil {
		uc.logger.Error("GetNextAvailableDate: failed to list working dates: %v", err)
		return nil, fmt.Errorf("%w: failed to list working dates: %v", ErrInternal, err)
	}

	for _, date := range dates {
		result, err := uc.slotsUseCase.Execute(ctx, &getAvailableSlots.Request{
			EmployeeID: req.EmployeeID,
			ServiceID:  req.ServiceID,
			Date:       date,
		})
		if err != nil {
			switch {
			case errors.Is(err, getAvailableSlots.ErrNoAvailability),
				errors.Is(err, getAvailableSlots.ErrNoWorkingDay):
				// Fully booked or window removed mid-scan; try the next date.
				continue
			case errors.Is(err, getAvailableSlots.ErrEmployeeNotFound):
				return nil, ErrEmployeeNotFound
			case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
				return nil, ErrServiceNotFound
			case errors.Is(err, getAvailableSlots.ErrServiceNotProvided):
				return nil, ErrServiceNotProvided
			default:
				uc.logger.Error("GetNextAvailableDate: slot computation failed for %s: %v",
					date.Format(domain.DateFormat), err)
				return nil, fmt.Errorf("%w: slot computation failed: %v", ErrInternal, err)
			}
		}

		if len(result.Slots) > 0 {
			uc.logger.Info("GetNextAvailableDate: employee=%d, service=%d -> %s",
				req.EmployeeID, req.ServiceID, date.Format(domain.DateFormat))
			return &Response{NextAvailableDate: date}, nil
		}
	}

	uc.logger.Info("GetNextAvailableDate: no available dates for employee=%d, service=%d",
		req.EmployeeID, req.ServiceID)
	return nil, ErrNoAvailableDates
}
