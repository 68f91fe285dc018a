package get_available_slots

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	getAvailableSlots "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	Date         string   `json:"date"`
	DateLabel    string   `json:"dateLabel"`
	EmployeeName string   `json:"employeeName"`
	ServiceID    int64    `json:"serviceId"`
	Slots        []string `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		DateLabel:    resp.DateLabel,
		EmployeeName: resp.EmployeeName,
		ServiceID:    resp.ServiceID,
		Slots:        slots,
	}
}

// ToUseCaseRequest builds the use case request from query parameters.
func ToUseCaseRequest(employeeID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		EmployeeID: employeeID,
		ServiceID:  serviceID,
		Date:       date,
	}, nil
}
