package leave

import (
	"time"

	"github.com/attendly/workforce-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	LeaveType  string  `json:"leave_type"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListApprovedFilter struct {
	EmployeeID string
	Month      int
	Year       int
}

func (f *ListApprovedFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if f.Year < 2020 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be 2020 or later",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	LeaveType  string  `json:"leave_type"`
	Kind       string  `json:"kind"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
}

func NewLeaveResponse(r Record) LeaveResponse {
	return LeaveResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		LeaveType:  r.LeaveType,
		Kind:       string(NormalizeKind(r.LeaveType)),
		Status:     string(r.Status),
		Reason:     r.Reason,
	}
}

// MonthRange returns the inclusive date bounds of the filter's month.
func (f *ListApprovedFilter) MonthRange() (time.Time, time.Time) {
	start := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
