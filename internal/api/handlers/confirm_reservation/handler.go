package confirm_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers"
	"github.com/Pawel-Truszkowski/SalonManager/internal/api/middleware"
	"github.com/Pawel-Truszkowski/SalonManager/internal/service/reservations"
)

const (
	msgInvalidReservationID = "invalid reservation ID"
	msgReservationNotFound  = "reservation not found"
	msgAlreadyConfirmed     = "reservation is not pending"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/confirm - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.Confirm(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/confirm - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAlreadyConfirmed):
			h.logger.Warn("PATCH /reservations/{id}/confirm - Not pending: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		default:
			h.logger.Error("PATCH /reservations/{id}/confirm - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	staffID, _ := middleware.StaffIDFromContext(r.Context())
	h.logger.Info("PATCH /reservations/{id}/confirm - Confirmed: reservation_id=%d, staff_id=%d",
		reservationID, staffID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
