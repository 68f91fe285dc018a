package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    Interval{Start: "10:00", End: "11:00"},
			b:    Interval{Start: "10:00", End: "11:00"},
			want: true,
		},
		{
			name: "partial overlap at tail",
			a:    Interval{Start: "10:00", End: "11:00"},
			b:    Interval{Start: "10:30", End: "11:30"},
			want: true,
		},
		{
			name: "contained interval",
			a:    Interval{Start: "09:00", End: "12:00"},
			b:    Interval{Start: "10:00", End: "10:30"},
			want: true,
		},
		{
			name: "back to back is not a conflict",
			a:    Interval{Start: "09:00", End: "10:00"},
			b:    Interval{Start: "10:00", End: "11:00"},
			want: false,
		},
		{
			name: "back to back reversed",
			a:    Interval{Start: "10:00", End: "11:00"},
			b:    Interval{Start: "09:00", End: "10:00"},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{Start: "09:00", End: "09:30"},
			b:    Interval{Start: "14:00", End: "15:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestHasConflict(t *testing.T) {
	occupied := []Interval{
		{Start: "10:00", End: "11:00"},
		{Start: "13:00", End: "13:30"},
	}

	assert.True(t, HasConflict(Interval{Start: "10:30", End: "11:30"}, occupied))
	assert.True(t, HasConflict(Interval{Start: "12:45", End: "13:15"}, occupied))

	assert.False(t, HasConflict(Interval{Start: "09:00", End: "10:00"}, occupied))
	assert.False(t, HasConflict(Interval{Start: "11:00", End: "12:00"}, occupied))
	assert.False(t, HasConflict(Interval{Start: "09:00", End: "09:30"}, nil))
}
