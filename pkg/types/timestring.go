package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeLayout is the canonical wall-clock representation used across the API
// and the database (HH:MM, 24h).
const timeLayout = "15:04"

// TimeString is a wall-clock time of day without a date, stored as "HH:MM".
// It is the unit the availability engine works in: working-hours windows,
// slot start times and occupied intervals are all TimeString pairs.
type TimeString string

// NewTimeString truncates t to minute precision and returns it as a TimeString.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses s ("HH:MM" or "HH:MM:SS") into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	t, _ := ts.toTime()
	return NewTimeString(t), nil
}

// IsZero reports whether the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value parses as a time of day.
func (ts TimeString) Validate() error {
	if _, err := ts.toTime(); err != nil {
		return fmt.Errorf("invalid time %q: expected HH:MM", string(ts))
	}
	return nil
}

// String returns the canonical "HH:MM" form.
func (ts TimeString) String() string {
	return string(ts)
}

// IsBefore reports whether ts is strictly earlier in the day than other.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.toTime()
	b, errB := other.toTime()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.toTime()
	b, errB := other.toTime()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the time of day minutes later than ts.
// The result wraps at midnight like a clock face.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.toTime()
	if err != nil {
		return "", err
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}

// Sub returns the whole minutes from other to ts. Negative when ts is
// earlier than other.
func (ts TimeString) Sub(other TimeString) (int, error) {
	a, err := ts.toTime()
	if err != nil {
		return 0, err
	}
	b, err := other.toTime()
	if err != nil {
		return 0, err
	}
	return int(a.Sub(b) / time.Minute), nil
}

// Value implements driver.Valuer for TIME columns.
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as string,
// []byte or time.Time depending on the driver path.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (ts TimeString) toTime() (time.Time, error) {
	if t, err := time.Parse(timeLayout, string(ts)); err == nil {
		return t, nil
	}
	return time.Parse("15:04:05", string(ts))
}
