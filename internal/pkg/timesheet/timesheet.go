// Package timesheet holds the clock-punch arithmetic shared by the time
// entry service and the productivity aggregates.
package timesheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const punchLayout = "15:04:05"

// zeroDuration is the sentinel returned whenever a punch cannot be parsed.
// Attendance approximations favor availability over strict correctness, so
// malformed input degrades to zero instead of surfacing an error.
const zeroDuration = "00:00"

// ComputeWorkedDuration turns the four daily clock punches into a worked
// duration formatted "HH:MM". Punches are time-of-day values in "HH:MM:SS"
// form; the result is (lunchOut-start)+(end-lunchIn). HH may exceed 23
// since the result is a duration, not a wall-clock time.
func ComputeWorkedDuration(start, lunchOut, lunchIn, end string) string {
	t1, err1 := time.Parse(punchLayout, start)
	t2, err2 := time.Parse(punchLayout, lunchOut)
	t3, err3 := time.Parse(punchLayout, lunchIn)
	t4, err4 := time.Parse(punchLayout, end)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return zeroDuration
	}

	total := t2.Sub(t1) + t4.Sub(t3)
	if total < 0 {
		return zeroDuration
	}

	totalMinutes := int(total.Minutes())
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// ToDecimalHours parses a "HH:MM" duration into H + M/60. Any parse
// failure yields 0.0.
func ToDecimalHours(s string) float64 {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return float64(h) + float64(m)/60.0
}
