package get_non_working_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	catalogRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/catalog"
)

// UseCase computes the dates an employee is off within the booking
// horizon: the complement of their working dates over the next
// NonWorkingHorizonDays days. Date pickers grey these days out.
type UseCase struct {
	workDayRepo  WorkDayRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	workDayRepo WorkDayRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		workDayRepo:  workDayRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the set difference over the horizon.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetNonWorkingDays: employee=%d", req.EmployeeID)

	if req.EmployeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if _, err := uc.catalogRepo.GetEmployee(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetNonWorkingDays: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetNonWorkingDays: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	today := domain.DateOnly(uc.timeProvider.Now())
	horizonEnd := today.AddDate(0, 0, domain.NonWorkingHorizonDays)

	workingDates, err := uc.workDayRepo.ListDatesInRange(ctx, req.EmployeeID, today, horizonEnd)
	if err != nil {
		uc.logger.Error("GetNonWorkingDays: failed to list working dates: %v", err)
		return nil, fmt.Errorf("%w: failed to list working dates: %v", ErrInternal, err)
	}

	working := make(map[string]struct{}, len(workingDates))
	for _, d := range workingDates {
		working[domain.DateOnly(d).Format(domain.DateFormat)] = struct{}{}
	}

	nonWorking := make([]time.Time, 0)
	for d := today; !d.After(horizonEnd); d = d.AddDate(0, 0, 1) {
		if _, ok := working[d.Format(domain.DateFormat)]; !ok {
			nonWorking = append(nonWorking, d)
		}
	}

	uc.logger.Info("GetNonWorkingDays: %d of %d days off for employee=%d",
		len(nonWorking), domain.NonWorkingHorizonDays+1, req.EmployeeID)

	return &Response{
		EmployeeID:     req.EmployeeID,
		NonWorkingDays: nonWorking,
	}, nil
}
