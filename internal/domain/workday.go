package domain

import (
	"errors"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

// ErrInvalidWorkDay is returned when a working-hours window is malformed.
var ErrInvalidWorkDay = errors.New("work day end time must be after start time")

// WorkDay is one employee's availability window on one calendar date. An
// employee may have several disjoint windows on the same date; the
// availability engine runs per window and concatenates.
type WorkDay struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// Validate enforces the end-after-start invariant.
func (w *WorkDay) Validate() error {
	if err := w.StartTime.Validate(); err != nil {
		return err
	}
	if err := w.EndTime.Validate(); err != nil {
		return err
	}
	if !w.EndTime.IsAfter(w.StartTime) {
		return ErrInvalidWorkDay
	}
	return nil
}

// Window returns the bookable interval of the work day.
func (w *WorkDay) Window() Interval {
	return Interval{Start: w.StartTime, End: w.EndTime}
}
