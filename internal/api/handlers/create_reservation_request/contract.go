package create_reservation_request

import (
	"context"

	createReservationRequest "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/create_reservation_request"
)

type CreateReservationRequestUseCase interface {
	Execute(ctx context.Context, req *createReservationRequest.Request) (*createReservationRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
