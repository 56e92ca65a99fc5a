package response

import (
	"errors"
	"net/http"

	"github.com/grupo-santin/obras-backend-go/internal/domain/auth"
	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
	"github.com/grupo-santin/obras-backend-go/internal/domain/master/equipment"
	"github.com/grupo-santin/obras-backend-go/internal/domain/master/jobfunction"
	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/grupo-santin/obras-backend-go/internal/domain/timeentry"
	"github.com/grupo-santin/obras-backend-go/internal/domain/user"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerPrivilegeRequired):
		Forbidden(w, "Manager privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMatriculaExists):
		Conflict(w, "Matricula already registered")

	// Reference list errors
	case errors.Is(err, jobfunction.ErrFunctionExists):
		Conflict(w, "Job function already registered")
	case errors.Is(err, jobfunction.ErrEmptyName):
		BadRequest(w, "Job function name is required", nil)
	case errors.Is(err, equipment.ErrEquipmentExists):
		Conflict(w, "Equipment tag already registered")
	case errors.Is(err, equipment.ErrEmptyTag):
		BadRequest(w, "Equipment tag is required", nil)

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")

	// Roster domain errors
	case errors.Is(err, roster.ErrSheetNotFound):
		BadRequest(w, "Workbook does not contain the expected sheet", nil)
	case errors.Is(err, roster.ErrEmptyBatch):
		BadRequest(w, "Upload contains no data rows", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
