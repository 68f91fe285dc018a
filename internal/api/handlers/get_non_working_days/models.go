package get_non_working_days

import (
	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	getNonWorkingDays "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_non_working_days"
)

// NonWorkingDaysResponse is the HTTP response model.
type NonWorkingDaysResponse struct {
	EmployeeID     int64    `json:"employeeId"`
	NonWorkingDays []string `json:"nonWorkingDays"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getNonWorkingDays.Response) *NonWorkingDaysResponse {
	days := make([]string, len(resp.NonWorkingDays))
	for i, d := range resp.NonWorkingDays {
		days[i] = d.Format(domain.DateFormat)
	}

	return &NonWorkingDaysResponse{
		EmployeeID:     resp.EmployeeID,
		NonWorkingDays: days,
	}
}
