package create_reservation_request

import (
	"errors"
	"net/http"

	"github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers"
	createReservationRequest "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/create_reservation_request"
)

const (
	msgInvalidBody      = "invalid request body"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgServiceNotFound  = "service not found"
	msgEmployeeNotFound = "employee not found"
)

type Handler struct {
	useCase CreateReservationRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body CreateRequestBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /reservation-requests - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := body.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservation-requests - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservationRequest.ErrServiceNotFound):
			h.logger.Warn("POST /reservation-requests - Service not found: service_id=%d", body.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservationRequest.ErrEmployeeNotFound):
			h.logger.Warn("POST /reservation-requests - Employee not found")
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createReservationRequest.ErrInvalidRequest):
			h.logger.Warn("POST /reservation-requests - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservation-requests - Failed: service_id=%d, error=%v", body.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservation-requests - Created: id=%d, service_id=%d", result.ID, result.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
