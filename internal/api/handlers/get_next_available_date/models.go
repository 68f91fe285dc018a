package get_next_available_date

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	getNextAvailableDate "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_next_available_date"
)

// NextAvailableDateResponse is the HTTP response model.
type NextAvailableDateResponse struct {
	NextAvailableDate string `json:"nextAvailableDate"`
	DateLabel         string `json:"dateLabel"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getNextAvailableDate.Response) *NextAvailableDateResponse {
	return &NextAvailableDateResponse{
		NextAvailableDate: resp.NextAvailableDate.Format(domain.DateFormat),
		DateLabel:         resp.NextAvailableDate.Format(domain.DateLabelFormat),
	}
}

// ToUseCaseRequest builds the use case request. fromDateStr may be empty,
// in which case the scan starts from today.
func ToUseCaseRequest(employeeID, serviceID int64, fromDateStr string) (*getNextAvailableDate.Request, error) {
	var fromDate time.Time
	if fromDateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, fromDateStr)
		if err != nil {
			return nil, err
		}
		fromDate = parsed
	}

	return &getNextAvailableDate.Request{
		EmployeeID: employeeID,
		ServiceID:  serviceID,
		FromDate:   fromDate,
	}, nil
}
