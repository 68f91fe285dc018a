package cancel_reservation

import (
	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
	"github.com/Pawel-Truszkowski/SalonManager/internal/service/reservations/models"
)

// CancelResponse is the HTTP response model.
type CancelResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// FromServiceResponse converts the service model into the HTTP model.
func FromServiceResponse(res *models.ReservationResponse) *CancelResponse {
	return &CancelResponse{
		ID:           res.ID,
		Status:       string(res.Status),
		CustomerName: res.CustomerName,
		Date:         res.Date.Format(domain.DateFormat),
		StartTime:    res.StartTime.String(),
		EndTime:      res.EndTime.String(),
	}
}
