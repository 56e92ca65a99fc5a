package timesheet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWorkedDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		lunchOut string
		lunchIn  string
		end      string
		want     string
	}{
		{"standard day", "07:00:00", "12:00:00", "13:00:00", "17:00:00", "09:00"},
		{"half hour", "08:00:00", "12:00:00", "13:00:00", "17:30:00", "08:30"},
		{"no lunch gap", "07:00:00", "12:00:00", "12:00:00", "16:00:00", "09:00"},
		{"short shift", "09:15:00", "11:45:00", "12:30:00", "13:00:00", "03:00"},
		{"minute precision", "07:10:00", "11:55:00", "12:40:00", "17:05:00", "09:10"},
		{"zero length", "07:00:00", "07:00:00", "07:00:00", "07:00:00", "00:00"},
		{"empty start", "", "12:00:00", "13:00:00", "17:00:00", "00:00"},
		{"garbage input", "abc", "def", "ghi", "jkl", "00:00"},
		{"missing seconds", "07:00", "12:00", "13:00", "17:00", "00:00"},
		{"end before lunch in", "07:00:00", "12:00:00", "17:00:00", "13:00:00", "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWorkedDuration(tt.start, tt.lunchOut, tt.lunchIn, tt.end)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A long span of overtime must keep accumulating hours past 23 since the
// result is a duration, not a wall-clock time.
func TestComputeWorkedDurationIsNotClockBound(t *testing.T) {
	got := ComputeWorkedDuration("00:00:00", "12:00:00", "12:00:00", "23:59:00")
	assert.Equal(t, "23:59", got)
}

func TestToDecimalHours(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"08:30", 8.5},
		{"08:00", 8.0},
		{"00:00", 0.0},
		{"10:45", 10.75},
		{"26:15", 26.25},
		{"", 0.0},
		{"nonsense", 0.0},
		{"08", 0.0},
		{"08:xx", 0.0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.InDelta(t, tt.want, ToDecimalHours(tt.in), 1e-9)
		})
	}
}

// Round-trip property over well-ordered punch tuples: the formatted
// duration converts back to the expected decimal value.
func TestDurationRoundTrip(t *testing.T) {
	tuples := []struct {
		start, lunchOut, lunchIn, end string
		wantHours                     float64
	}{
		{"07:00:00", "12:00:00", "13:00:00", "17:00:00", 9.0},
		{"06:30:00", "11:00:00", "12:00:00", "18:15:00", 10.75},
		{"08:00:00", "12:30:00", "13:30:00", "16:00:00", 7.0},
	}

	for _, tu := range tuples {
		formatted := ComputeWorkedDuration(tu.start, tu.lunchOut, tu.lunchIn, tu.end)
		assert.InDelta(t, tu.wantHours, ToDecimalHours(formatted), 1e-9)
	}
}
