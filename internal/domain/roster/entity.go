package roster

import "time"

// StatusPresent is the status code meaning the employee was on site. Any
// other code denotes a specific non-present situation described by the
// snapshot's situation label.
const StatusPresent = 1

// Snapshot is one (date, employee) row of a daily attendance roster. The
// rows for a date always reflect the most recently uploaded batch for
// that date.
type Snapshot struct {
	Date           time.Time
	Matricula      string
	EmployeeName   string
	JobFunction    string
	StatusCode     int
	SituationLabel string
}
