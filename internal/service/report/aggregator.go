package report

import (
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/leave"
	"github.com/attendly/workforce-backend-go/internal/domain/report"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
)

// Aggregate folds one employee's ordered day records into a monthly
// summary. It carries no state between calls: aggregating the same
// sequence twice yields identical summaries.
func Aggregate(days []report.DayRecord) report.MonthlySummary {
	s := report.MonthlySummary{
		ShiftCounts: make(map[shift.Label]int),
		Days:        days,
	}

	for _, d := range days {
		if d.CheckInTime != nil && d.CheckOutTime != nil {
			s.TotalGrossHours += d.GrossHours
			s.TotalBreakHours += d.BreakHours
			s.TotalNetHours += d.NetHours
			s.TotalOvertimeHours += d.OvertimeHours
		}

		if d.ShiftLabel != "" {
			s.ShiftCounts[d.ShiftLabel]++
		}

		// future holidays are labeled for rendering but tallied as
		// unmarked so they never inflate the payable totals
		if d.Future && (d.Status == report.StatusHoliday || d.Status == report.StatusFloatingHoliday) {
			s.UnmarkedDays++
			continue
		}

		switch d.Status {
		case report.StatusPresent:
			s.PresentDays++
		case report.StatusHalfPresent:
			s.HalfPresentDays++
		case report.StatusAbsent:
			s.AbsentDays++
		case report.StatusWeekOff:
			s.WeekOffDays++
		case report.StatusHoliday:
			s.HolidayDays++
		case report.StatusHolidayPresent:
			s.HolidayPresentDays++
		case report.StatusFloatingHoliday:
			s.FloatingHolidayDays++
		case report.StatusWeekendPresent:
			s.WeekendPresentDays++
		case report.StatusSickLeave:
			s.SickLeaveDays++
		case report.StatusCompOffLeave:
			s.CompOffLeaveDays++
		case report.StatusFloatingLeave:
			s.FloatingLeaveDays++
		case report.StatusEarnedLeave:
			s.EarnedLeaveDays++
		case report.StatusWorkFromHome:
			s.WorkFromHomeDays++
		default:
			s.UnmarkedDays++
		}
	}

	if s.PresentDays > 0 {
		s.AverageWorkingHours = s.TotalNetHours / float64(s.PresentDays)
	}

	s.TotalPayableDays = float64(s.PresentDays) +
		float64(s.WeekOffDays) +
		float64(s.HolidayDays+s.FloatingHolidayDays) +
		float64(s.WeekendPresentDays) +
		float64(s.HolidayPresentDays) +
		0.5*float64(s.HalfPresentDays) +
		float64(s.SickLeaveDays) +
		float64(s.EarnedLeaveDays) +
		float64(s.FloatingLeaveDays) +
		float64(s.CompOffLeaveDays) +
		float64(s.WorkFromHomeDays)

	return s
}

// MonthInput is the full month's raw material for one employee. Events and
// leaves span the month; the holiday calendar is already scoped to the
// employee and their category.
type MonthInput struct {
	Year     int
	Month    time.Month
	Events   []attendance.Event
	Leaves   []leave.Record
	Holidays holiday.Calendar
	Rules    shift.Rules
	Now      time.Time
	Location *time.Location
}

// ComputeMonth runs the classifier over every day of the month in order and
// aggregates the result. The fold is strictly sequential: the weekly
// presence counter resets each Monday and accumulates across the week, so
// day n depends on days before it.
func ComputeMonth(in MonthInput) report.MonthlySummary {
	loc := in.Location
	if loc == nil {
		loc = in.Now.Location()
	}

	monthStart := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, loc)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	eventsByDay := groupEventsByDay(in.Events, loc)

	days := make([]report.DayRecord, 0, daysInMonth)
	weekPresence := 0

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(in.Year, in.Month, d, 0, 0, 0, 0, loc)
		if date.Weekday() == time.Monday {
			weekPresence = 0
		}

		rec := ClassifyDay(DayInput{
			Date:              date,
			Events:            eventsByDay[d],
			Leave:             coveringLeave(in.Leaves, date),
			StaticHoliday:     in.Holidays.StaticMatch(date),
			RecurringHoliday:  in.Holidays.RecurringMatch(date),
			Rules:             in.Rules,
			WeekPresenceCount: weekPresence,
			Now:               in.Now,
		})
		days = append(days, rec)

		if rec.NetHours >= in.Rules.HalfDayHours && rec.CheckInTime != nil && rec.CheckOutTime != nil {
			weekPresence++
		}
	}

	return Aggregate(days)
}

func groupEventsByDay(events []attendance.Event, loc *time.Location) map[int][]attendance.Event {
	byDay := make(map[int][]attendance.Event)
	for _, e := range events {
		if e.Timestamp.IsZero() {
			continue
		}
		day := e.Timestamp.In(loc).Day()
		byDay[day] = append(byDay[day], e)
	}
	return byDay
}

// coveringLeave returns the first approved leave whose interval contains
// the date. Overlapping records resolve to the earliest-starting one so the
// result is stable under input reordering.
func coveringLeave(leaves []leave.Record, date time.Time) *leave.Record {
	var match *leave.Record
	for i := range leaves {
		r := leaves[i]
		if r.Status != leave.StatusApproved || !r.Covers(date) {
			continue
		}
		if match == nil || r.StartDate.Before(match.StartDate) {
			match = &leaves[i]
		}
	}
	return match
}
