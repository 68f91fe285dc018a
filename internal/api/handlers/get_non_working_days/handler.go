package get_non_working_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers"
	getNonWorkingDays "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_non_working_days"
)

const (
	msgInvalidEmployeeID = "invalid employee ID"
	msgEmployeeNotFound  = "employee not found"
)

type Handler struct {
	useCase GetNonWorkingDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetNonWorkingDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/non-working-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /employees/{id}/non-working-days - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getNonWorkingDays.Request{EmployeeID: employeeID})
	if err != nil {
		switch {
		case errors.Is(err, getNonWorkingDays.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id}/non-working-days - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getNonWorkingDays.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/non-working-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /employees/{id}/non-working-days - Failed: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/non-working-days - %d days off: employee_id=%d",
		len(result.NonWorkingDays), employeeID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
