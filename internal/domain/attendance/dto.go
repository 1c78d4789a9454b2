package attendance

import (
	"time"

	"github.com/attendly/workforce-backend-go/internal/pkg/validator"
)

type RecordEventRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  string  `json:"timestamp"` // RFC3339; defaults to now when empty
	Kind       string  `json:"kind"`
	Source     *string `json:"source,omitempty"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !EventKind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of check_in, check_out, break_in, break_out",
		})
	}

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC3339",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEventsFilter struct {
	EmployeeID string
	StartDate  string // YYYY-MM-DD inclusive
	EndDate    string // YYYY-MM-DD inclusive
}

func (f *ListEventsFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(f.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	if _, ok := validator.IsValidDate(f.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Timestamp  string  `json:"timestamp"`
	Kind       string  `json:"kind"`
	Source     *string `json:"source,omitempty"`
}

func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Timestamp:  e.Timestamp.Format(time.RFC3339),
		Kind:       string(e.Kind),
		Source:     e.Source,
	}
}
