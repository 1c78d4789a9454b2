package response

import (
	"errors"
	"net/http"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/domain/employee"
	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/leave"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
	"github.com/attendly/workforce-backend-go/internal/pkg/validator"
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

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidEventKind):
		BadRequest(w, "Invalid punch event kind", nil)
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "Leave end date is before start date", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrPoolAlreadyAssigned):
		Conflict(w, "Pool holiday already assigned for this date")

	// Shift domain errors
	case errors.Is(err, shift.ErrRulesNotFound):
		NotFound(w, "Shift rules not found")
	case errors.Is(err, shift.ErrInvalidCategory):
		BadRequest(w, "Invalid staff category", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
