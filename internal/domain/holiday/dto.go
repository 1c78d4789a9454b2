package holiday

import (
	"github.com/attendly/workforce-backend-go/internal/pkg/validator"
)

type AssignPoolRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Name       string `json:"name"`
}

func (r *AssignPoolRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FixedHolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

type PoolHolidayResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Name       string `json:"name"`
}

type ConfiguredHolidayResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Name     string `json:"name"`
}

type RecurringRuleResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Weekday  string `json:"weekday"`
	Ordinal  int    `json:"ordinal"`
	Name     string `json:"name"`
}
