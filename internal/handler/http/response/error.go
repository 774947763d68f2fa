package response

import (
	"errors"
	"net/http"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/activity"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/shift"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/validator"
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
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNoDayRule):
		BadRequest(w, "No day rule configured for this shift and weekday", nil)

	// Request workflow errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, request.ErrDuplicateRequest):
		Conflict(w, "A request of this kind already exists for this date")
	case errors.Is(err, request.ErrInvalidReviewAction):
		BadRequest(w, "Review action must be APPROVE or REJECT", nil)

	// Activity view errors
	case errors.Is(err, activity.ErrNoShiftAssigned):
		BadRequest(w, "Employee is not assigned to a shift", nil)
	case errors.Is(err, activity.ErrInvalidRange):
		BadRequest(w, "start_date must not be after end_date", nil)

	// Settings errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		InternalServerError(w, "Global settings are not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
