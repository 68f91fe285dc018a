package get_next_available_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers"
	getNextAvailableDate "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_next_available_date"
)

const (
	msgInvalidEmployeeID  = "invalid employee ID"
	msgMissingEmployeeID  = "employee ID is required"
	msgInvalidServiceID   = "invalid service ID"
	msgMissingServiceID   = "service ID is required"
	msgInvalidFromDate    = "invalid fromDate format, expected YYYY-MM-DD"
	msgEmployeeNotFound   = "employee not found"
	msgServiceNotFound    = "service not found"
	msgServiceNotProvided = "employee does not provide this service"
	msgNoAvailableDates   = "no available dates for this employee and service"
)

type Handler struct {
	useCase GetNextAvailableDateUseCase
	logger  Logger
}

func NewHandler(useCase GetNextAvailableDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/next-available-date
// Query params: employeeId (required), serviceId (required), fromDate (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeIDStr := r.URL.Query().Get("employeeId")
	if employeeIDStr == "" {
		h.logger.Warn("GET /next-available-date - Missing employee ID")
		handlers.RespondBadRequest(w, msgMissingEmployeeID)
		return
	}
	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /next-available-date - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /next-available-date - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /next-available-date - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(employeeID, serviceID, r.URL.Query().Get("fromDate"))
	if err != nil {
		h.logger.Warn("GET /next-available-date - Invalid fromDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFromDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getNextAvailableDate.ErrEmployeeNotFound):
			h.logger.Warn("GET /next-available-date - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getNextAvailableDate.ErrServiceNotFound):
			h.logger.Warn("GET /next-available-date - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getNextAvailableDate.ErrServiceNotProvided):
			h.logger.Warn("GET /next-available-date - Service not provided: employee_id=%d, service_id=%d",
				employeeID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotProvided)

		case errors.Is(err, getNextAvailableDate.ErrNoAvailableDates):
			h.logger.Info("GET /next-available-date - No dates: employee_id=%d, service_id=%d",
				employeeID, serviceID)
			handlers.RespondNotFound(w, msgNoAvailableDates)

		case errors.Is(err, getNextAvailableDate.ErrInvalidInput):
			h.logger.Warn("GET /next-available-date - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /next-available-date - Failed: employee_id=%d, service_id=%d, error=%v",
				employeeID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /next-available-date - Found: employee_id=%d, service_id=%d, date=%s",
		employeeID, serviceID, result.NextAvailableDate.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
