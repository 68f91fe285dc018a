package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// ReservationRequest is a provisional, time-boxed hold on a slot, created
// when a customer picks a time and finalized once they submit contact
// details. An unclaimed request stops occupying its slot after ExpiresAt.
type ReservationRequest struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	ServiceID int64

	// EmployeeID is nil for "any employee" requests.
	EmployeeID *int64

	// RequestToken is an opaque correlation token carried in customer
	// URLs instead of the numeric id.
	RequestToken string

	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// NewRequestToken builds the correlation token for a request: creation
// timestamp, service id and a random suffix.
func NewRequestToken(now time.Time, serviceID int64) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d%d%s", now.UnixMicro(), serviceID, suffix)
}

// IsExpired reports whether the hold has lapsed at now.
func (r *ReservationRequest) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// Interval returns the time range the request holds.
func (r *ReservationRequest) Interval() Interval {
	return Interval{Start: r.StartTime, End: r.EndTime}
}
