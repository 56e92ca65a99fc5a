package timeentry

import "time"

// TimeEntry is one worked day for one employee. Name and function are
// denormalized on purpose: the entry records what was true at submission
// time, even if the employee record changes later.
type TimeEntry struct {
	ID            int64
	Matricula     string
	EmployeeName  string
	JobFunction   string
	EquipmentTag  string
	Activity      string
	ClockStart    string
	LunchOut      string
	LunchIn       string
	ClockEnd      string
	TotalDuration string
	EntryDate     time.Time
	CreatedAt     time.Time
}
