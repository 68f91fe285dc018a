package finalize_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers"
	finalizeReservation "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/finalize_reservation"
)

const (
	msgInvalidRequestID = "invalid request ID"
	msgInvalidBody      = "invalid request body"
	msgRequestNotFound  = "reservation request not found"
	msgTokenMismatch    = "request token does not match"
	msgRequestExpired   = "reservation request has expired"
	msgSlotConflict     = "slot is no longer available"
)

type Handler struct {
	useCase FinalizeReservationUseCase
	logger  Logger
}

func NewHandler(useCase FinalizeReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation-requests/{requestId}/finalize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservation-requests/{id}/finalize - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var body FinalizeBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /reservation-requests/{id}/finalize - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), body.ToUseCaseRequest(requestID))
	if err != nil {
		switch {
		case errors.Is(err, finalizeReservation.ErrRequestNotFound):
			h.logger.Warn("POST /reservation-requests/{id}/finalize - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, finalizeReservation.ErrTokenMismatch):
			h.logger.Warn("POST /reservation-requests/{id}/finalize - Token mismatch: request_id=%d", requestID)
			handlers.RespondForbidden(w, msgTokenMismatch)

		case errors.Is(err, finalizeReservation.ErrRequestExpired):
			h.logger.Info("POST /reservation-requests/{id}/finalize - Request expired: request_id=%d", requestID)
			handlers.RespondGone(w, msgRequestExpired)

		case errors.Is(err, finalizeReservation.ErrConflictingReservation):
			h.logger.Info("POST /reservation-requests/{id}/finalize - Slot conflict: request_id=%d", requestID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, finalizeReservation.ErrInvalidRequest):
			h.logger.Warn("POST /reservation-requests/{id}/finalize - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservation-requests/{id}/finalize - Failed: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservation-requests/{id}/finalize - Reservation id=%d (%s): request_id=%d",
		result.ID, result.Status, requestID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
