package fixtures

import (
	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
)

// DefaultShiftRules returns the seeded thresholds for a staff category.
// These back-fill categories with no configured row.
func DefaultShiftRules(category shift.StaffCategory) shift.Rules {
	switch category {
	case shift.CategoryField:
		return shift.Rules{
			Category:      shift.CategoryField,
			FullDayHours:  8,
			HalfDayHours:  4,
			MaxDailyHours: 10,
		}
	case shift.CategorySite:
		return shift.Rules{
			Category:      shift.CategorySite,
			FullDayHours:  9,
			HalfDayHours:  4.5,
			MaxDailyHours: 12,
		}
	default:
		return shift.Rules{
			Category:      shift.CategoryOffice,
			FullDayHours:  8,
			HalfDayHours:  4,
			MaxDailyHours: 9,
		}
	}
}

// DefaultFixedHolidays returns the year-agnostic holidays seeded for a new
// deployment. Dates are month-day patterns.
func DefaultFixedHolidays() []holiday.FixedHoliday {
	return []holiday.FixedHoliday{
		{Date: "01-01", Name: "New Year's Day"},
		{Date: "01-26", Name: "Republic Day"},
		{Date: "05-01", Name: "Labour Day"},
		{Date: "08-15", Name: "Independence Day"},
		{Date: "10-02", Name: "Gandhi Jayanti"},
		{Date: "12-25", Name: "Christmas Day"},
	}
}
