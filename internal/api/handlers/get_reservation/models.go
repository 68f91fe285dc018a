package get_reservation

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/internal/service/reservations/models"
)

// ReservationResponse is the HTTP response model for staff views.
type ReservationResponse struct {
	ID           int64   `json:"id"`
	RequestID    int64   `json:"requestId"`
	CustomerID   *int64  `json:"customerId,omitempty"`
	CustomerName string  `json:"customerName"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
	DateLabel    string  `json:"dateLabel"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	ServiceID    int64   `json:"serviceId"`
	EmployeeID   *int64  `json:"employeeId,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// FromServiceResponse converts the service model into the HTTP model.
func FromServiceResponse(res *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:           res.ID,
		RequestID:    res.RequestID,
		CustomerID:   res.CustomerID,
		CustomerName: res.CustomerName,
		Email:        res.Email,
		Phone:        res.Phone,
		Notes:        res.Notes,
		Status:       string(res.Status),
		Date:         res.Date.Format(domain.DateFormat),
		DateLabel:    res.DateLabel,
		StartTime:    res.StartTime.String(),
		EndTime:      res.EndTime.String(),
		ServiceID:    res.ServiceID,
		EmployeeID:   res.EmployeeID,
		CreatedAt:    res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    res.UpdatedAt.Format(time.RFC3339),
	}
}
