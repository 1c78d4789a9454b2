package shift

import (
	"github.com/attendly/workforce-backend-go/internal/pkg/validator"
)

type UpsertRulesRequest struct {
	Category      string  `json:"category"`
	FullDayHours  float64 `json:"full_day_hours"`
	HalfDayHours  float64 `json:"half_day_hours"`
	MaxDailyHours float64 `json:"max_daily_hours"`
}

func (r *UpsertRulesRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Category, []string{string(CategoryOffice), string(CategoryField), string(CategorySite)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of office, field, site",
		})
	}
	if r.FullDayHours <= 0 || r.FullDayHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_day_hours",
			Message: "full_day_hours must be between 0 and 24",
		})
	}
	if r.HalfDayHours <= 0 || r.HalfDayHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_hours",
			Message: "half_day_hours must be between 0 and 24",
		})
	}
	if r.MaxDailyHours <= 0 || r.MaxDailyHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_daily_hours",
			Message: "max_daily_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RulesResponse struct {
	Category      string  `json:"category"`
	FullDayHours  float64 `json:"full_day_hours"`
	HalfDayHours  float64 `json:"half_day_hours"`
	MaxDailyHours float64 `json:"max_daily_hours"`
}

func NewRulesResponse(r Rules) RulesResponse {
	return RulesResponse{
		Category:      string(r.Category),
		FullDayHours:  r.FullDayHours,
		HalfDayHours:  r.HalfDayHours,
		MaxDailyHours: r.MaxDailyHours,
	}
}
