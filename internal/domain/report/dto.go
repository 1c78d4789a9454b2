package report

import (
	"fmt"
	"time"

	"github.com/attendly/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE RECONCILIATION
// ========================================

type MonthlyReportRequest struct {
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees []EmployeeMonthlyReport `json:"employees"`
}

type EmployeeMonthlyReport struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Role         string `json:"role"`
	Category     string `json:"category"`

	Summary SummaryResponse     `json:"summary"`
	Days    []DayRecordResponse `json:"days"`
}

type SummaryResponse struct {
	TotalGrossHours    float64 `json:"total_gross_hours"`
	TotalBreakHours    float64 `json:"total_break_hours"`
	TotalNetHours      float64 `json:"total_net_hours"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`

	PresentDays         int `json:"present_days"`
	HalfPresentDays     int `json:"half_present_days"`
	AbsentDays          int `json:"absent_days"`
	WeekOffDays         int `json:"week_off_days"`
	HolidayDays         int `json:"holiday_days"`
	HolidayPresentDays  int `json:"holiday_present_days"`
	FloatingHolidayDays int `json:"floating_holiday_days"`
	WeekendPresentDays  int `json:"weekend_present_days"`
	SickLeaveDays       int `json:"sick_leave_days"`
	CompOffLeaveDays    int `json:"comp_off_leave_days"`
	FloatingLeaveDays   int `json:"floating_leave_days"`
	EarnedLeaveDays     int `json:"earned_leave_days"`
	WorkFromHomeDays    int `json:"work_from_home_days"`
	UnmarkedDays        int `json:"unmarked_days"`

	ShiftCounts map[string]int `json:"shift_counts"`

	AverageWorkingHours float64 `json:"average_working_hours"`
	TotalPayableDays    float64 `json:"total_payable_days"`
}

type DayRecordResponse struct {
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	GrossHours    float64 `json:"gross_hours"`
	BreakHours    float64 `json:"break_hours"`
	NetHours      float64 `json:"net_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	ShiftLabel    string  `json:"shift_label,omitempty"`
}

// NewSummaryResponse converts a MonthlySummary to its response shape.
func NewSummaryResponse(s MonthlySummary) SummaryResponse {
	shiftCounts := make(map[string]int, len(s.ShiftCounts))
	for label, n := range s.ShiftCounts {
		shiftCounts[string(label)] = n
	}

	return SummaryResponse{
		TotalGrossHours:     s.TotalGrossHours,
		TotalBreakHours:     s.TotalBreakHours,
		TotalNetHours:       s.TotalNetHours,
		TotalOvertimeHours:  s.TotalOvertimeHours,
		PresentDays:         s.PresentDays,
		HalfPresentDays:     s.HalfPresentDays,
		AbsentDays:          s.AbsentDays,
		WeekOffDays:         s.WeekOffDays,
		HolidayDays:         s.HolidayDays,
		HolidayPresentDays:  s.HolidayPresentDays,
		FloatingHolidayDays: s.FloatingHolidayDays,
		WeekendPresentDays:  s.WeekendPresentDays,
		SickLeaveDays:       s.SickLeaveDays,
		CompOffLeaveDays:    s.CompOffLeaveDays,
		FloatingLeaveDays:   s.FloatingLeaveDays,
		EarnedLeaveDays:     s.EarnedLeaveDays,
		WorkFromHomeDays:    s.WorkFromHomeDays,
		UnmarkedDays:        s.UnmarkedDays,
		ShiftCounts:         shiftCounts,
		AverageWorkingHours: s.AverageWorkingHours,
		TotalPayableDays:    s.TotalPayableDays,
	}
}

// NewDayRecordResponse converts a DayRecord to its response shape.
func NewDayRecordResponse(d DayRecord) DayRecordResponse {
	return DayRecordResponse{
		Date:          d.Date.Format("2006-01-02"),
		Status:        string(d.Status),
		CheckInTime:   timePtrToString(d.CheckInTime),
		CheckOutTime:  timePtrToString(d.CheckOutTime),
		GrossHours:    d.GrossHours,
		BreakHours:    d.BreakHours,
		NetHours:      d.NetHours,
		OvertimeHours: d.OvertimeHours,
		ShiftLabel:    string(d.ShiftLabel),
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04")
	return &formatted
}

// ========================================
// SINGLE-DAY STATUS
// ========================================

type DayStatusRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
}

func (r *DayStatusRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayStatusResponse struct {
	EmployeeID string            `json:"employee_id"`
	Day        DayRecordResponse `json:"day"`
}
