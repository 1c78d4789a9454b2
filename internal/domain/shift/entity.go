package shift

// StaffCategory groups employees by the kind of work site they report to.
// Shift rules and configured holidays are keyed by category.
type StaffCategory string

const (
	CategoryOffice StaffCategory = "office"
	CategoryField  StaffCategory = "field"
	CategorySite   StaffCategory = "site"
)

// Rules holds the per-category thresholds used by the day classifier.
// All values are decimal hours. halfDay <= fullDay <= maxDaily is expected
// but not enforced; the classifier stays total either way.
type Rules struct {
	Category      StaffCategory
	FullDayHours  float64
	HalfDayHours  float64
	MaxDailyHours float64
}

// Label identifies the shift band derived from check-in time of day.
type Label string

const (
	LabelShiftA  Label = "Shift A"
	LabelGeneral Label = "General Shift"
	LabelShiftB  Label = "Shift B"
	LabelShiftC  Label = "Shift C"
)

// CategoryForRole maps a role name to its staff category. Unknown roles
// fall back to office so a missing mapping degrades to the default rules.
func CategoryForRole(role string) StaffCategory {
	switch role {
	case "site_engineer", "site_supervisor", "site_worker":
		return CategorySite
	case "field_agent", "field_technician", "surveyor":
		return CategoryField
	default:
		return CategoryOffice
	}
}
