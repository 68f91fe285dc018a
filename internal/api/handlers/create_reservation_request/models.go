package create_reservation_request

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	createReservationRequest "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/create_reservation_request"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// CreateRequestBody is the HTTP request body.
type CreateRequestBody struct {
	Date       string `json:"date" validate:"required"`
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
	ServiceID  int64  `json:"serviceId" validate:"required,gt=0"`
	EmployeeID *int64 `json:"employeeId" validate:"omitempty,gt=0"`
}

// CreateRequestResponse is the HTTP response model.
type CreateRequestResponse struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	ServiceID    int64  `json:"serviceId"`
	EmployeeID   *int64 `json:"employeeId,omitempty"`
	RequestToken string `json:"requestToken"`
	ExpiresAt    string `json:"expiresAt"`
}

// ToUseCaseRequest parses the body into the use case request.
func (b *CreateRequestBody) ToUseCaseRequest() (*createReservationRequest.Request, error) {
	date, err := time.Parse(domain.DateFormat, b.Date)
	if err != nil {
		return nil, err
	}

	return &createReservationRequest.Request{
		Date:       date,
		StartTime:  types.TimeString(b.StartTime),
		EndTime:    types.TimeString(b.EndTime),
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createReservationRequest.Response) *CreateRequestResponse {
	return &CreateRequestResponse{
		ID:           resp.ID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		ServiceID:    resp.ServiceID,
		EmployeeID:   resp.EmployeeID,
		RequestToken: resp.RequestToken,
		ExpiresAt:    resp.ExpiresAt.Format(time.RFC3339),
	}
}
