package report

import (
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/domain/leave"
	"github.com/attendly/workforce-backend-go/internal/domain/report"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
)

// DayInput carries everything ClassifyDay needs for one employee-day.
// Events should be the punches of that calendar day; events falling on
// another day are ignored. Now is the reference instant that separates
// past days from the current/future ones; it is always passed in so the
// classifier stays deterministic.
type DayInput struct {
	Date              time.Time
	Events            []attendance.Event
	Leave             *leave.Record
	StaticHoliday     bool
	RecurringHoliday  bool
	Rules             shift.Rules
	WeekPresenceCount int
	Now               time.Time
}

// ClassifyDay produces the single DayRecord for one employee-day. It is
// total: malformed or missing punches degrade to "no activity" for that
// marker and every input combination maps to a defined record.
//
// Status precedence, first match wins:
//
//	static holiday > recurring holiday > approved leave > activity > absence
func ClassifyDay(in DayInput) report.DayRecord {
	day := truncateToDay(in.Date)
	today := truncateToDay(in.Now)
	future := day.After(today)

	rec := report.DayRecord{
		Date:   day,
		Future: future,
	}

	checkIn, checkOut, breakIn, breakOut := punchMarkers(day, in.Events)
	hasActivity := hasEventOn(day, in.Events)

	rec.CheckInTime = checkIn
	rec.CheckOutTime = checkOut

	if checkIn != nil && checkOut != nil {
		rec.GrossHours = clampHours(checkOut.Sub(*checkIn).Hours())
	}
	if breakIn != nil && breakOut != nil {
		rec.BreakHours = clampHours(breakOut.Sub(*breakIn).Hours())
	}
	rec.NetHours = clampHours(rec.GrossHours - rec.BreakHours)
	if checkIn != nil && checkOut != nil {
		rec.OvertimeHours = clampHours(rec.NetHours - in.Rules.MaxDailyHours)
	}
	if checkIn != nil {
		rec.ShiftLabel = shiftLabelFor(*checkIn)
	}

	rec.Status = classifyStatus(in, day, today, hasActivity, rec.NetHours)
	return rec
}

func classifyStatus(in DayInput, day, today time.Time, hasActivity bool, netHours float64) report.DayStatus {
	switch {
	case in.StaticHoliday:
		if hasActivity {
			return report.StatusHolidayPresent
		}
		return report.StatusHoliday

	case in.RecurringHoliday:
		if hasActivity {
			return report.StatusHolidayPresent
		}
		return report.StatusFloatingHoliday

	case in.Leave != nil && in.Leave.Status == leave.StatusApproved && in.Leave.Covers(day):
		switch leave.NormalizeKind(in.Leave.LeaveType) {
		case leave.KindSick:
			return report.StatusSickLeave
		case leave.KindCompOff:
			return report.StatusCompOffLeave
		case leave.KindFloating:
			return report.StatusFloatingLeave
		case leave.KindLossOfPay:
			// loss of pay is treated as absence and stays out of the
			// leave counters
			return report.StatusAbsent
		case leave.KindWorkFromHome:
			return report.StatusWorkFromHome
		default:
			return report.StatusEarnedLeave
		}

	case hasActivity:
		if day.Weekday() == time.Sunday {
			return report.StatusWeekendPresent
		}
		if netHours >= in.Rules.FullDayHours {
			return report.StatusPresent
		}
		if netHours >= in.Rules.HalfDayHours {
			return report.StatusHalfPresent
		}
		// low-hour presence still counts as full presence, not absence
		return report.StatusPresent

	case day.After(today):
		// days that have not happened yet are never absences or earned
		// week offs, whatever the weekday
		return report.StatusUnmarked

	case day.Weekday() == time.Sunday:
		if day.Day() <= 7 || in.WeekPresenceCount >= 4 {
			return report.StatusWeekOff
		}
		return report.StatusAbsent

	default:
		if day.Before(today) {
			return report.StatusAbsent
		}
		// today has not ended yet
		return report.StatusUnmarked
	}
}

// punchMarkers derives the representative punches for the day: first
// check-in, last check-out, first break-in, last break-out. Events on a
// different calendar day or with zero timestamps are skipped.
func punchMarkers(day time.Time, events []attendance.Event) (checkIn, checkOut, breakIn, breakOut *time.Time) {
	for i := range events {
		e := events[i]
		if e.Timestamp.IsZero() || !sameDay(day, e.Timestamp) {
			continue
		}
		ts := e.Timestamp
		switch e.Kind {
		case attendance.EventCheckIn:
			if checkIn == nil || ts.Before(*checkIn) {
				checkIn = &ts
			}
		case attendance.EventCheckOut:
			if checkOut == nil || ts.After(*checkOut) {
				checkOut = &ts
			}
		case attendance.EventBreakIn:
			if breakIn == nil || ts.Before(*breakIn) {
				breakIn = &ts
			}
		case attendance.EventBreakOut:
			if breakOut == nil || ts.After(*breakOut) {
				breakOut = &ts
			}
		}
	}
	return checkIn, checkOut, breakIn, breakOut
}

func hasEventOn(day time.Time, events []attendance.Event) bool {
	for _, e := range events {
		if !e.Timestamp.IsZero() && sameDay(day, e.Timestamp) {
			return true
		}
	}
	return false
}

// shiftLabelFor buckets a check-in into its shift band by local time of day.
func shiftLabelFor(checkIn time.Time) shift.Label {
	minutes := checkIn.Hour()*60 + checkIn.Minute()
	switch {
	case minutes >= 5*60 && minutes < 8*60+30:
		return shift.LabelShiftA
	case minutes >= 8*60+30 && minutes < 11*60+30:
		return shift.LabelGeneral
	case minutes >= 11*60+30 && minutes < 20*60:
		return shift.LabelShiftB
	default:
		return shift.LabelShiftC
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func clampHours(h float64) float64 {
	if h < 0 {
		return 0
	}
	return h
}
