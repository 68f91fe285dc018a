package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pawel-Truszkowski/SalonManager/pkg/types"
)

func TestWorkDay_Validate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid window", start: "09:00", end: "17:00"},
		{name: "end equals start", start: "09:00", end: "09:00", wantErr: true},
		{name: "end before start", start: "17:00", end: "09:00", wantErr: true},
		{name: "malformed start", start: "25:00", end: "17:00", wantErr: true},
		{name: "malformed end", start: "09:00", end: "9am", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wd := &WorkDay{
				StartTime: types.TimeString(tt.start),
				EndTime:   types.TimeString(tt.end),
			}
			err := wd.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkDay_Window(t *testing.T) {
	wd := &WorkDay{StartTime: "09:00", EndTime: "17:00"}

	window := wd.Window()
	assert.Equal(t, Interval{Start: "09:00", End: "17:00"}, window)
}
