package finalize_reservation

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	finalizeReservation "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/finalize_reservation"
)

// FinalizeBody is the HTTP request body. Either email or phone must be
// set; the use case enforces that.
type FinalizeBody struct {
	RequestToken string  `json:"requestToken" validate:"required"`
	CustomerID   *int64  `json:"customerId" validate:"omitempty,gt=0"`
	CustomerName string  `json:"customerName" validate:"required"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Phone        string  `json:"phone" validate:"omitempty"`
	Notes        *string `json:"notes"`
}

// ReservationResponse is the HTTP response model.
type ReservationResponse struct {
	ID           int64  `json:"id"`
	RequestID    int64  `json:"requestId"`
	RequestToken string `json:"requestToken"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	ServiceID    int64  `json:"serviceId"`
	EmployeeID   *int64 `json:"employeeId,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest builds the use case request.
func (b *FinalizeBody) ToUseCaseRequest(requestID int64) *finalizeReservation.Request {
	return &finalizeReservation.Request{
		RequestID:    requestID,
		RequestToken: b.RequestToken,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		Notes:        b.Notes,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *finalizeReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		RequestID:    resp.RequestID,
		RequestToken: resp.RequestToken,
		CustomerName: resp.CustomerName,
		Status:       string(resp.Status),
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		ServiceID:    resp.ServiceID,
		EmployeeID:   resp.EmployeeID,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
