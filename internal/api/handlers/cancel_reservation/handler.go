package cancel_reservation

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
	msgMissingToken         = "cancellation token is required"
	msgReservationNotFound  = "reservation not found"
	msgAlreadyCancelled     = "reservation is already cancelled"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
// Staff cancellation by numeric id.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.Cancel(r.Context(), reservationID)
	if err != nil {
		h.respondCancelError(w, "PATCH /reservations/{id}/cancel", err)
		return
	}

	staffID, _ := middleware.StaffIDFromContext(r.Context())
	h.logger.Info("PATCH /reservations/{id}/cancel - Cancelled: reservation_id=%d, staff_id=%d",
		reservationID, staffID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleByToken POST /api/v1/reservations/cancel/{token}
// Customer self-cancellation; the correlation token stands in for
// authentication.
func (h *Handler) HandleByToken(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	token := vars["token"]
	if token == "" {
		h.logger.Warn("POST /reservations/cancel/{token} - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.service.CancelByToken(r.Context(), token)
	if err != nil {
		h.respondCancelError(w, "POST /reservations/cancel/{token}", err)
		return
	}

	h.logger.Info("POST /reservations/cancel/{token} - Cancelled: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

func (h *Handler) respondCancelError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, reservations.ErrReservationNotFound):
		h.logger.Warn("%s - Not found: %v", route, err)
		handlers.RespondNotFound(w, msgReservationNotFound)

	case errors.Is(err, reservations.ErrAlreadyCancelled):
		h.logger.Warn("%s - Already cancelled: %v", route, err)
		handlers.RespondConflict(w, msgAlreadyCancelled)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
