package holiday

import (
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/shift"
)

// FixedHoliday applies to everyone, year after year. Date is stored as a
// month-day string ("01-26") but legacy rows carry full or partial dates;
// see Matches for how they are compared.
type FixedHoliday struct {
	ID   string
	Date string
	Name string
}

// PoolHoliday is an explicit employee-to-date assignment picked by the
// employee from an optional-holiday pool.
type PoolHoliday struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	Name       string
}

// ConfiguredHoliday is an admin-set holiday for one staff category on an
// explicit date.
type ConfiguredHoliday struct {
	ID       string
	Category shift.StaffCategory
	Date     string // YYYY-MM-DD
	Name     string
}

// RecurringRule grants a floating holiday on the Nth occurrence of a
// weekday in every month, per staff category. Ordinal is 1-based.
type RecurringRule struct {
	ID       string
	Category shift.StaffCategory
	Weekday  time.Weekday
	Ordinal  int
	Name     string
}

// MatchesDate reports whether date is the rule's Nth weekday of its month.
func (r RecurringRule) MatchesDate(date time.Time) bool {
	if date.Weekday() != r.Weekday {
		return false
	}
	return (date.Day()-1)/7+1 == r.Ordinal
}

// Calendar bundles the four holiday sources already scoped to one employee
// (pool rows filtered by employee, configured and recurring rows filtered
// by category). It is the classifier's read-only holiday view.
type Calendar struct {
	Fixed      []FixedHoliday
	Pool       []PoolHoliday
	Configured []ConfiguredHoliday
	Recurring  []RecurringRule
}

// StaticMatch reports whether any of the three static sources marks the day.
func (c Calendar) StaticMatch(date time.Time) bool {
	for _, h := range c.Fixed {
		if Matches(h.Date, date) {
			return true
		}
	}
	for _, h := range c.Pool {
		if Matches(h.Date, date) {
			return true
		}
	}
	for _, h := range c.Configured {
		if Matches(h.Date, date) {
			return true
		}
	}
	return false
}

// RecurringMatch reports whether a recurring rule marks the day.
func (c Calendar) RecurringMatch(date time.Time) bool {
	for _, r := range c.Recurring {
		if r.MatchesDate(date) {
			return true
		}
	}
	return false
}
