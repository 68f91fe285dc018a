package cancel_reservation

import (
	"context"

	"github.com/Pawel-Truszkowski/SalonManager/internal/service/reservations/models"
)

type ReservationsService interface {
	Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error)
	CancelByToken(ctx context.Context, token string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
