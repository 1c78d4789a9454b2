package report

import (
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/shift"
)

// DayStatus is the closed set of daily classifications. Exactly one status
// is assigned per day, so the per-status counters in MonthlySummary
// partition the month.
type DayStatus string

const (
	StatusPresent         DayStatus = "present"
	StatusHalfPresent     DayStatus = "half_present"
	StatusAbsent          DayStatus = "absent"
	StatusWeekOff         DayStatus = "week_off"
	StatusHoliday         DayStatus = "holiday"
	StatusHolidayPresent  DayStatus = "holiday_present"
	StatusFloatingHoliday DayStatus = "floating_holiday"
	StatusWeekendPresent  DayStatus = "weekend_present"
	StatusSickLeave       DayStatus = "sick_leave"
	StatusCompOffLeave    DayStatus = "comp_off_leave"
	StatusFloatingLeave   DayStatus = "floating_leave"
	StatusEarnedLeave     DayStatus = "earned_leave"
	StatusWorkFromHome    DayStatus = "work_from_home"
	StatusUnmarked        DayStatus = "unmarked"
)

// DayRecord is the classifier's output for one employee-day. Immutable once
// produced; the aggregator never mutates it.
type DayRecord struct {
	Date          time.Time
	Status        DayStatus
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	GrossHours    float64
	BreakHours    float64
	NetHours      float64
	OvertimeHours float64
	ShiftLabel    shift.Label // empty when the day had no activity

	// Future marks days strictly after the report's reference day.
	// Holiday statuses on such days are labels for rendering only and
	// are tallied as unmarked, not into the holiday counters.
	Future bool
}

// MonthlySummary is the aggregator's output: payroll-relevant totals plus
// the ordered day records for rendering.
type MonthlySummary struct {
	TotalGrossHours    float64
	TotalBreakHours    float64
	TotalNetHours      float64
	TotalOvertimeHours float64

	PresentDays         int
	HalfPresentDays     int
	AbsentDays          int
	WeekOffDays         int
	HolidayDays         int
	HolidayPresentDays  int
	FloatingHolidayDays int
	WeekendPresentDays  int
	SickLeaveDays       int
	CompOffLeaveDays    int
	FloatingLeaveDays   int
	EarnedLeaveDays     int
	WorkFromHomeDays    int
	UnmarkedDays        int

	ShiftCounts map[shift.Label]int

	AverageWorkingHours float64
	TotalPayableDays    float64

	Days []DayRecord
}
