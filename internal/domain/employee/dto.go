package employee

import (
	"github.com/grupo-santin/obras-backend-go/internal/pkg/validator"
)

// EmployeeResponse represents the response structure for an employee.
type EmployeeResponse struct {
	Matricula     string `json:"matricula"`
	FullName      string `json:"full_name"`
	JobFunction   string `json:"job_function"`
	Abbreviation  string `json:"abbreviation"`
	AdmissionDate string `json:"admission_date,omitempty"`
	LaborClass    string `json:"labor_class"`
	Status        string `json:"status"`
}

// CreateEmployeeRequest represents the request structure for registering
// an employee.
type CreateEmployeeRequest struct {
	Matricula     string `json:"matricula"`
	FullName      string `json:"full_name"`
	JobFunction   string `json:"job_function"`
	Abbreviation  string `json:"abbreviation"`
	AdmissionDate string `json:"admission_date"`
	LaborClass    string `json:"labor_class"`
	Status        string `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricula) {
		errs = append(errs, validator.ValidationError{
			Field:   "matricula",
			Message: "matricula is required",
		})
	} else if !validator.IsNumeric(r.Matricula) {
		errs = append(errs, validator.ValidationError{
			Field:   "matricula",
			Message: "matricula must be numeric",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.JobFunction) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_function",
			Message: "job_function is required",
		})
	}

	if r.AdmissionDate != "" {
		if _, ok := validator.IsValidDate(r.AdmissionDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "admission_date",
				Message: "admission_date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsInSlice(r.LaborClass, []string{string(LaborClassDirect), string(LaborClassIndirect)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "labor_class",
			Message: "labor_class must be MOD or MOI",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Ativo or Inativo",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest represents a full-record update. The matricula
// identifies the record and is never changed.
type UpdateEmployeeRequest struct {
	Matricula     string `json:"-"`
	FullName      string `json:"full_name"`
	JobFunction   string `json:"job_function"`
	Abbreviation  string `json:"abbreviation"`
	AdmissionDate string `json:"admission_date"`
	LaborClass    string `json:"labor_class"`
	Status        string `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricula) {
		errs = append(errs, validator.ValidationError{
			Field:   "matricula",
			Message: "matricula is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.AdmissionDate != "" {
		if _, ok := validator.IsValidDate(r.AdmissionDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "admission_date",
				Message: "admission_date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsInSlice(r.LaborClass, []string{string(LaborClassDirect), string(LaborClassIndirect)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "labor_class",
			Message: "labor_class must be MOD or MOI",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Ativo or Inativo",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HeadcountSummaryResponse feeds the headcount dashboard cards and the
// per-abbreviation bar chart.
type HeadcountSummaryResponse struct {
	Total    int              `json:"total"`
	Active   int              `json:"active"`
	Inactive int              `json:"inactive"`
	ByGroup  []GroupHeadcount `json:"by_group"`
}

type GroupHeadcount struct {
	GroupingKey string `json:"grouping_key"`
	Count       int    `json:"count"`
}
