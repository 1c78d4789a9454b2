package report

import (
	"testing"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/leave"
	"github.com/attendly/workforce-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// februaryWorkdays returns 09:00-18:00 punches for every Monday-Friday of
// February 2024 (a leap month; the 1st is a Thursday).
func februaryWorkdays() []attendance.Event {
	var events []attendance.Event
	for d := 1; d <= 29; d++ {
		day := time.Date(2024, time.February, d, 0, 0, 0, 0, time.UTC)
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		events = append(events, workday(day, 9, 0, 18, 0)...)
	}
	return events
}

func computeFebruary(events []attendance.Event, leaves []leave.Record, cal holiday.Calendar) report.MonthlySummary {
	return ComputeMonth(MonthInput{
		Year:     2024,
		Month:    time.February,
		Events:   events,
		Leaves:   leaves,
		Holidays: cal,
		Rules:    testRules,
		Now:      time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
		Location: time.UTC,
	})
}

func statusCounterSum(s report.MonthlySummary) int {
	return s.PresentDays + s.HalfPresentDays + s.AbsentDays + s.WeekOffDays +
		s.HolidayDays + s.HolidayPresentDays + s.FloatingHolidayDays +
		s.WeekendPresentDays + s.SickLeaveDays + s.CompOffLeaveDays +
		s.FloatingLeaveDays + s.EarnedLeaveDays + s.WorkFromHomeDays +
		s.UnmarkedDays
}

func TestComputeMonth_FullWorkingMonth(t *testing.T) {
	t.Parallel()

	s := computeFebruary(februaryWorkdays(), nil, holiday.Calendar{})

	// 21 weekdays, 4 Sundays earned as week offs, 4 idle Saturdays
	assert.Equal(t, 21, s.PresentDays)
	assert.Equal(t, 4, s.WeekOffDays)
	assert.Equal(t, 4, s.AbsentDays)
	assert.Equal(t, 0, s.UnmarkedDays)

	assert.Equal(t, 29, statusCounterSum(s))
	assert.Len(t, s.Days, 29)

	assert.InDelta(t, 189.0, s.TotalNetHours, 1e-9)
	assert.InDelta(t, 9.0, s.AverageWorkingHours, 1e-9)
	assert.Equal(t, 0.0, s.TotalOvertimeHours)
	assert.InDelta(t, 25.0, s.TotalPayableDays, 1e-9)

	assert.Equal(t, 21, s.ShiftCounts["General Shift"])
}

func TestComputeMonth_IsIdempotent(t *testing.T) {
	t.Parallel()

	events := februaryWorkdays()
	first := computeFebruary(events, nil, holiday.Calendar{})
	second := computeFebruary(events, nil, holiday.Calendar{})

	assert.Equal(t, first, second)
}

func TestComputeMonth_PartitionHoldsWithMixedInputs(t *testing.T) {
	t.Parallel()

	leaves := []leave.Record{
		{
			EmployeeID: "emp-1",
			StartDate:  time.Date(2024, time.February, 12, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, time.February, 13, 0, 0, 0, 0, time.UTC),
			LeaveType:  "Sick Leave",
			Status:     leave.StatusApproved,
		},
	}
	cal := holiday.Calendar{
		Fixed: []holiday.FixedHoliday{{Date: "02-14", Name: "Founders Day"}},
		Recurring: []holiday.RecurringRule{
			{Weekday: time.Saturday, Ordinal: 2, Name: "Second Saturday"},
		},
	}

	s := computeFebruary(februaryWorkdays(), leaves, cal)

	assert.Equal(t, 29, statusCounterSum(s))
	assert.Equal(t, 2, s.SickLeaveDays)
	// Feb 14 had punches, so working the holiday wins
	assert.Equal(t, 1, s.HolidayPresentDays)
	assert.Equal(t, 0, s.HolidayDays)
	// Feb 10 is the second Saturday and had no punches
	assert.Equal(t, 1, s.FloatingHolidayDays)
}

func TestComputeMonth_WeekPresenceGatesLaterSundays(t *testing.T) {
	t.Parallel()

	// only two full days in the week of Feb 5, so Sunday Feb 11 is not earned
	var events []attendance.Event
	for _, d := range []int{5, 6} {
		day := time.Date(2024, time.February, d, 0, 0, 0, 0, time.UTC)
		events = append(events, workday(day, 9, 0, 18, 0)...)
	}

	s := computeFebruary(events, nil, holiday.Calendar{})

	sunday := s.Days[10] // Feb 11
	require.Equal(t, time.Sunday, sunday.Date.Weekday())
	assert.Equal(t, report.StatusAbsent, sunday.Status)

	// the first Sunday is a week off regardless
	firstSunday := s.Days[3] // Feb 4
	require.Equal(t, time.Sunday, firstSunday.Date.Weekday())
	assert.Equal(t, report.StatusWeekOff, firstSunday.Status)
}

func TestComputeMonth_LowHourDaysDoNotEarnSunday(t *testing.T) {
	t.Parallel()

	// five short days in the week of Feb 5: each is classified Present but
	// none reaches the half-day bar that feeds the weekly counter
	var events []attendance.Event
	for d := 5; d <= 9; d++ {
		day := time.Date(2024, time.February, d, 0, 0, 0, 0, time.UTC)
		events = append(events, workday(day, 9, 0, 10, 0)...)
	}

	s := computeFebruary(events, nil, holiday.Calendar{})

	for d := 5; d <= 9; d++ {
		assert.Equal(t, report.StatusPresent, s.Days[d-1].Status)
	}
	sunday := s.Days[10] // Feb 11
	assert.Equal(t, report.StatusAbsent, sunday.Status)
}

func TestComputeMonth_FutureDaysStayUnmarked(t *testing.T) {
	t.Parallel()

	s := ComputeMonth(MonthInput{
		Year:  2024,
		Month: time.February,
		Holidays: holiday.Calendar{
			Fixed: []holiday.FixedHoliday{{Date: "02-26", Name: "Late Holiday"}},
		},
		Rules:    testRules,
		Now:      time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC),
		Location: time.UTC,
	})

	assert.Equal(t, 29, statusCounterSum(s))

	// the future holiday keeps its label on the day record but is tallied
	// as unmarked
	feb26 := s.Days[25]
	assert.Equal(t, report.StatusHoliday, feb26.Status)
	assert.True(t, feb26.Future)
	assert.Equal(t, 0, s.HolidayDays)
	assert.Equal(t, 0.0, s.TotalPayableDays-
		float64(s.PresentDays)-float64(s.WeekOffDays)-float64(s.WeekendPresentDays))
}

func TestComputeMonth_MostlyFutureMonthHasNoPayableDays(t *testing.T) {
	t.Parallel()

	// reference day Friday Feb 2: only Feb 1 has elapsed, so the month
	// must not accrue week offs, absences, or payable days for the rest
	s := ComputeMonth(MonthInput{
		Year:     2024,
		Month:    time.February,
		Rules:    testRules,
		Now:      time.Date(2024, time.February, 2, 12, 0, 0, 0, time.UTC),
		Location: time.UTC,
	})

	assert.Equal(t, 29, statusCounterSum(s))
	assert.Equal(t, 1, s.AbsentDays) // Feb 1
	assert.Equal(t, 0, s.WeekOffDays)
	assert.Equal(t, 28, s.UnmarkedDays) // today plus every future day
	assert.Equal(t, 0.0, s.TotalPayableDays)

	// the future Sundays carry no week-off label either
	for _, d := range []int{3, 10} { // Feb 4 and Feb 11, zero-based
		sunday := s.Days[d]
		require.Equal(t, time.Sunday, sunday.Date.Weekday())
		assert.Equal(t, report.StatusUnmarked, sunday.Status)
		assert.True(t, sunday.Future)
	}
}

func TestComputeMonth_OvertimeAccumulates(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC)
	events := workday(day, 8, 0, 19, 0) // net 11h against a 9h cap

	s := computeFebruary(events, nil, holiday.Calendar{})

	assert.InDelta(t, 2.0, s.TotalOvertimeHours, 1e-9)
}

func TestAggregate_EmptyMonthHasZeroAverage(t *testing.T) {
	t.Parallel()

	s := Aggregate([]report.DayRecord{
		{Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Status: report.StatusAbsent},
		{Date: time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC), Status: report.StatusAbsent},
	})

	assert.Equal(t, 0.0, s.AverageWorkingHours)
	assert.Equal(t, 0.0, s.TotalPayableDays)
	assert.Equal(t, 2, s.AbsentDays)
}

func TestAggregate_PayableDaysWeighting(t *testing.T) {
	t.Parallel()

	s := Aggregate([]report.DayRecord{
		{Status: report.StatusPresent},
		{Status: report.StatusHalfPresent},
		{Status: report.StatusWeekOff},
		{Status: report.StatusHoliday},
		{Status: report.StatusFloatingHoliday},
		{Status: report.StatusHolidayPresent},
		{Status: report.StatusWeekendPresent},
		{Status: report.StatusSickLeave},
		{Status: report.StatusEarnedLeave},
		{Status: report.StatusFloatingLeave},
		{Status: report.StatusCompOffLeave},
		{Status: report.StatusWorkFromHome},
		{Status: report.StatusAbsent},
		{Status: report.StatusUnmarked},
	})

	// every status except absent and unmarked pays, half days at half weight
	assert.InDelta(t, 11.5, s.TotalPayableDays, 1e-9)
}

func TestCoveringLeave_PrefersEarliestStart(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	early := leave.Record{
		ID:        "early",
		StartDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.February, 16, 0, 0, 0, 0, time.UTC),
		LeaveType: "Earned Leave",
		Status:    leave.StatusApproved,
	}
	late := leave.Record{
		ID:        "late",
		StartDate: time.Date(2024, time.February, 13, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
		LeaveType: "Sick Leave",
		Status:    leave.StatusApproved,
	}

	got := coveringLeave([]leave.Record{late, early}, date)
	require.NotNil(t, got)
	assert.Equal(t, "early", got.ID)

	// reordering the input does not change the winner
	got = coveringLeave([]leave.Record{early, late}, date)
	require.NotNil(t, got)
	assert.Equal(t, "early", got.ID)
}
