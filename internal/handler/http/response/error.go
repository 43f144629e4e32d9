package response

import (
	"errors"
	"net/http"

	"github.com/staffsight/hr-analytics-go/internal/domain/attendance"
	"github.com/staffsight/hr-analytics-go/internal/domain/employee"
	"github.com/staffsight/hr-analytics-go/internal/domain/reconciliation"
	"github.com/staffsight/hr-analytics-go/internal/pkg/validator"
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
	// Reconciliation domain errors
	case errors.Is(err, reconciliation.ErrMissingDates):
		BadRequest(w, "start_date and end_date are required", nil)
	case errors.Is(err, reconciliation.ErrInvalidDateRange):
		BadRequest(w, "end_date must be on or after start_date", nil)
	case errors.Is(err, reconciliation.ErrRangeTooLarge):
		BadRequest(w, "Requested date range exceeds the configured maximum", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employee status", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrObservationNotFound):
		NotFound(w, "Attendance observation not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid attendance date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
