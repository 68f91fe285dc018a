package get_next_available_date

import (
	"context"

	getNextAvailableDate "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_next_available_date"
)

type GetNextAvailableDateUseCase interface {
	Execute(ctx context.Context, req *getNextAvailableDate.Request) (*getNextAvailableDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
