package get_next_available_date

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_available_slots"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeWorkDayRepo struct {
	dates []time.Time
	err   error
}

func (f *fakeWorkDayRepo) ListDatesAfter(_ context.Context, _ int64, _ time.Time) ([]time.Time, error) {
	return f.dates, f.err
}

// fakeSlotsUseCase answers per date keyed by YYYY-MM-DD.
type fakeSlotsUseCase struct {
	byDate map[string]*getAvailableSlots.Response
	errs   map[string]error
}

func (f *fakeSlotsUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	key := req.Date.Format("2006-01-02")
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return f.byDate[key], nil
}

func date(day int) time.Time {
	return time.Date(2026, 7, day, 0, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute_SkipsFullyBookedDays(t *testing.T) {
	workDays := &fakeWorkDayRepo{dates: []time.Time{date(10), date(11), date(12)}}
	slots := &fakeSlotsUseCase{
		byDate: map[string]*getAvailableSlots.Response{
			"2026-07-12": {Slots: []types.TimeString{"09:00"}},
		},
		errs: map[string]error{
			"2026-07-10": getAvailableSlots.ErrNoAvailability,
			"2026-07-11": getAvailableSlots.ErrNoAvailability,
		},
	}

	uc := NewUseCase(workDays, slots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, FromDate: date(9)})
	require.NoError(t, err)
	assert.Equal(t, date(12), resp.NextAvailableDate)
}

func TestUseCase_Execute_FirstDateWins(t *testing.T) {
	workDays := &fakeWorkDayRepo{dates: []time.Time{date(10), date(11)}}
	slots := &fakeSlotsUseCase{
		byDate: map[string]*getAvailableSlots.Response{
			"2026-07-10": {Slots: []types.TimeString{"14:00"}},
			"2026-07-11": {Slots: []types.TimeString{"09:00"}},
		},
	}

	uc := NewUseCase(workDays, slots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, FromDate: date(9)})
	require.NoError(t, err)
	assert.Equal(t, date(10), resp.NextAvailableDate)
}

func TestUseCase_Execute_Exhausted(t *testing.T) {
	workDays := &fakeWorkDayRepo{dates: []time.Time{date(10)}}
	slots := &fakeSlotsUseCase{
		errs: map[string]error{"2026-07-10": getAvailableSlots.ErrNoAvailability},
	}

	uc := NewUseCase(workDays, slots, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, FromDate: date(9)})
	assert.ErrorIs(t, err, ErrNoAvailableDates)
}

func TestUseCase_Execute_NoWorkingDates(t *testing.T) {
	uc := NewUseCase(&fakeWorkDayRepo{}, &fakeSlotsUseCase{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, FromDate: date(9)})
	assert.ErrorIs(t, err, ErrNoAvailableDates)
}

func TestUseCase_Execute_PropagatesNotFound(t *testing.T) {
	workDays := &fakeWorkDayRepo{dates: []time.Time{date(10)}}
	slots := &fakeSlotsUseCase{
		errs: map[string]error{"2026-07-10": getAvailableSlots.ErrServiceNotFound},
	}

	uc := NewUseCase(workDays, slots, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, FromDate: date(9)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_PropagatesServiceNotProvided(t *testing.T) {
	workDays := &fakeWorkDayRepo{dates: []time.Time{date(10)}}
	slots := &fakeSlotsUseCase{
		errs: map[string]error{"2026-07-10": getAvailableSlots.ErrServiceNotProvided},
	}

	uc := NewUseCase(workDays, slots, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, ServiceID: 2, FromDate: date(9)})
	assert.ErrorIs(t, err, ErrServiceNotProvided)
	assert.NotErrorIs(t, err, ErrInternal)
}
