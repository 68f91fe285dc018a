package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers"
	getAvailableSlots "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_available_slots"
)

const (
	msgInvalidEmployeeID  = "invalid employee ID"
	msgMissingEmployeeID  = "employee ID is required"
	msgInvalidServiceID   = "invalid service ID"
	msgMissingServiceID   = "service ID is required"
	msgMissingDate        = "date is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgEmployeeNotFound   = "employee not found"
	msgServiceNotFound    = "service not found"
	msgServiceNotProvided = "employee does not provide this service"
	msgNoWorkingDay       = "employee does not work on this date"
	msgNoAvailability     = "no available slots on this date"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: employeeId (required), serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeIDStr := r.URL.Query().Get("employeeId")
	if employeeIDStr == "" {
		h.logger.Warn("GET /available-slots - Missing employee ID")
		handlers.RespondBadRequest(w, msgMissingEmployeeID)
		return
	}
	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(employeeID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrEmployeeNotFound):
			h.logger.Warn("GET /available-slots - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotProvided):
			h.logger.Warn("GET /available-slots - Service not provided: employee_id=%d, service_id=%d",
				employeeID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotProvided)

		case errors.Is(err, getAvailableSlots.ErrNoWorkingDay):
			h.logger.Info("GET /available-slots - No working day: employee_id=%d, date=%s", employeeID, dateStr)
			handlers.RespondNotFound(w, msgNoWorkingDay)

		case errors.Is(err, getAvailableSlots.ErrNoAvailability):
			h.logger.Info("GET /available-slots - No availability: employee_id=%d, service_id=%d, date=%s",
				employeeID, serviceID, dateStr)
			handlers.RespondNotFound(w, msgNoAvailability)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed: employee_id=%d, service_id=%d, date=%s, error=%v",
				employeeID, serviceID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots: employee_id=%d, service_id=%d, date=%s",
		len(result.Slots), employeeID, serviceID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
