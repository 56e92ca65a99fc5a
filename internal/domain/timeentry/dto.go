package timeentry

import (
	"github.com/grupo-santin/obras-backend-go/internal/pkg/validator"
)

// CreateTimeEntryRequest represents a daily time entry submission. Name
// and function are resolved from the employee record, not taken from the
// caller.
type CreateTimeEntryRequest struct {
	Matricula    string `json:"matricula"`
	EquipmentTag string `json:"equipment_tag"`
	Activity     string `json:"activity"`
	ClockStart   string `json:"clock_start"`
	LunchOut     string `json:"lunch_out"`
	LunchIn      string `json:"lunch_in"`
	ClockEnd     string `json:"clock_end"`
	EntryDate    string `json:"entry_date"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricula) {
		errs = append(errs, validator.ValidationError{
			Field:   "matricula",
			Message: "matricula is required",
		})
	}

	if validator.IsEmpty(r.EquipmentTag) {
		errs = append(errs, validator.ValidationError{
			Field:   "equipment_tag",
			Message: "equipment_tag is required",
		})
	}

	if validator.IsEmpty(r.Activity) {
		errs = append(errs, validator.ValidationError{
			Field:   "activity",
			Message: "activity is required",
		})
	}

	if _, ok := validator.IsValidDate(r.EntryDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_date",
			Message: "entry_date must be in YYYY-MM-DD format",
		})
	}

	// Punches are not validated here: duration derivation degrades
	// malformed punches to a zero duration instead of rejecting them.

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TimeEntryResponse represents one entry in the history listing.
type TimeEntryResponse struct {
	ID            int64  `json:"id,omitempty"`
	Matricula     string `json:"matricula"`
	EmployeeName  string `json:"employee_name"`
	JobFunction   string `json:"job_function"`
	EquipmentTag  string `json:"equipment_tag"`
	Activity      string `json:"activity"`
	ClockStart    string `json:"clock_start"`
	LunchOut      string `json:"lunch_out"`
	LunchIn       string `json:"lunch_in"`
	ClockEnd      string `json:"clock_end"`
	TotalDuration string `json:"total_duration"`
	EntryDate     string `json:"entry_date"`
}
