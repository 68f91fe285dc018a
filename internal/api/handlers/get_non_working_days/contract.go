package get_non_working_days

import (
	"context"

	getNonWorkingDays "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_non_working_days"
)

type GetNonWorkingDaysUseCase interface {
	Execute(ctx context.Context, req *getNonWorkingDays.Request) (*getNonWorkingDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
