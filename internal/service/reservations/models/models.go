// Package models holds the reservation service's response models and
// their conversions from domain types.
package models

import (
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// ReservationResponse is the service-level view of a reservation,
// flattened together with its owning request's slot details.
type ReservationResponse struct {
	ID           int64
	RequestID    int64
	RequestToken string
	CustomerID   *int64
	CustomerName string
	Email        string
	Phone        string
	Notes        *string
	Status       domain.ReservationStatus

	Date       time.Time
	DateLabel  string
	StartTime  types.TimeString
	EndTime    types.TimeString
	ServiceID  int64
	EmployeeID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainReservation converts a domain reservation with its joined
// request into a response.
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	out := &ReservationResponse{
		ID:           res.ID,
		RequestID:    res.RequestID,
		RequestToken: res.RequestToken,
		CustomerID:   res.CustomerID,
		CustomerName: res.CustomerName,
		Email:        res.Email,
		Phone:        res.Phone,
		Notes:        res.Notes,
		Status:       res.Status,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}

	if res.Request != nil {
		out.Date = res.Request.Date
		out.DateLabel = res.Request.Date.Format(domain.DateLabelFormat)
		out.StartTime = res.Request.StartTime
		out.EndTime = res.Request.EndTime
		out.ServiceID = res.Request.ServiceID
		out.EmployeeID = res.Request.EmployeeID
	}

	return out
}
