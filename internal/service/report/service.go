package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/domain/employee"
	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/leave"
	"github.com/attendly/workforce-backend-go/internal/domain/report"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
	"github.com/attendly/workforce-backend-go/internal/fixtures"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo employee.Repository
	eventRepo    attendance.EventRepository
	leaveRepo    leave.Repository
	holidayRepo  holiday.Repository
	shiftRepo    shift.RulesRepository
	workerLimit  int
}

func NewReportService(
	employeeRepo employee.Repository,
	eventRepo attendance.EventRepository,
	leaveRepo leave.Repository,
	holidayRepo holiday.Repository,
	shiftRepo shift.RulesRepository,
	workerLimit int,
) report.Service {
	if workerLimit < 1 {
		workerLimit = 1
	}
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		leaveRepo:    leaveRepo,
		holidayRepo:  holidayRepo,
		shiftRepo:    shiftRepo,
		workerLimit:  workerLimit,
	}
}

// MonthlyReport implements report.Service. Employees are reconciled
// concurrently under a bounded limit; each employee's month is computed
// sequentially because the weekly presence counter is order-dependent.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	now := time.Now()
	loc := now.Location()

	var employees []employee.Employee
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return report.MonthlyReport{}, err
		}
		employees = []employee.Employee{emp}
	} else {
		var err error
		employees, err = s.employeeRepo.ListActive(ctx)
		if err != nil {
			return report.MonthlyReport{}, fmt.Errorf("failed to list employees: %w", err)
		}
	}

	results := make([]report.EmployeeMonthlyReport, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerLimit)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			summary, err := s.computeEmployeeMonth(gctx, emp, req.Year, time.Month(req.Month), now, loc)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}

			days := make([]report.DayRecordResponse, 0, len(summary.Days))
			for _, d := range summary.Days {
				days = append(days, report.NewDayRecordResponse(d))
			}

			results[i] = report.EmployeeMonthlyReport{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				Role:         emp.Role,
				Category:     string(emp.Category()),
				Summary:      report.NewSummaryResponse(summary),
				Days:         days,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.MonthlyReport{}, err
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, loc)
	periodEnd := periodStart.AddDate(0, 1, -1)

	return report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		GeneratedAt: now.Format(time.RFC3339),
		Employees:   results,
	}, nil
}

// DayStatus implements report.Service. The weekly presence count feeding
// the Sunday rule is rebuilt from the punches since the week's Monday.
func (s *ReportServiceImpl) DayStatus(ctx context.Context, req report.DayStatusRequest) (report.DayStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DayStatusResponse{}, err
	}

	now := time.Now()
	loc := now.Location()

	date, _ := time.ParseInLocation("2006-01-02", req.Date, loc)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.DayStatusResponse{}, err
	}

	rules, err := s.shiftRules(ctx, emp.Category())
	if err != nil {
		return report.DayStatusResponse{}, err
	}

	calendar, err := s.holidayCalendar(ctx, emp)
	if err != nil {
		return report.DayStatusResponse{}, err
	}

	weekStart := mondayOf(date)
	dayEnd := date.AddDate(0, 0, 1)

	events, err := s.eventRepo.ListByEmployeeAndRange(ctx, emp.ID, weekStart, dayEnd)
	if err != nil {
		return report.DayStatusResponse{}, fmt.Errorf("failed to get events: %w", err)
	}

	leaves, err := s.leaveRepo.ListApproved(ctx, emp.ID, weekStart, date)
	if err != nil {
		return report.DayStatusResponse{}, fmt.Errorf("failed to get leaves: %w", err)
	}

	// rebuild the running weekly presence count from Monday up to the
	// day before the requested date
	weekPresence := 0
	for d := weekStart; d.Before(date); d = d.AddDate(0, 0, 1) {
		prior := ClassifyDay(DayInput{
			Date:             d,
			Events:           events,
			Leave:            coveringLeave(leaves, d),
			StaticHoliday:    calendar.StaticMatch(d),
			RecurringHoliday: calendar.RecurringMatch(d),
			Rules:            rules,
			Now:              now,
		})
		if prior.NetHours >= rules.HalfDayHours && prior.CheckInTime != nil && prior.CheckOutTime != nil {
			weekPresence++
		}
	}

	rec := ClassifyDay(DayInput{
		Date:              date,
		Events:            events,
		Leave:             coveringLeave(leaves, date),
		StaticHoliday:     calendar.StaticMatch(date),
		RecurringHoliday:  calendar.RecurringMatch(date),
		Rules:             rules,
		WeekPresenceCount: weekPresence,
		Now:               now,
	})

	return report.DayStatusResponse{
		EmployeeID: emp.ID,
		Day:        report.NewDayRecordResponse(rec),
	}, nil
}

// computeEmployeeMonth fetches one employee's raw month and runs the pure
// core over it.
func (s *ReportServiceImpl) computeEmployeeMonth(ctx context.Context, emp employee.Employee, year int, month time.Month, now time.Time, loc *time.Location) (report.MonthlySummary, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthEnd := nextMonth.AddDate(0, 0, -1)

	events, err := s.eventRepo.ListByEmployeeAndRange(ctx, emp.ID, monthStart, nextMonth)
	if err != nil {
		return report.MonthlySummary{}, fmt.Errorf("failed to get events: %w", err)
	}

	leaves, err := s.leaveRepo.ListApproved(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return report.MonthlySummary{}, fmt.Errorf("failed to get leaves: %w", err)
	}

	calendar, err := s.holidayCalendar(ctx, emp)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	rules, err := s.shiftRules(ctx, emp.Category())
	if err != nil {
		return report.MonthlySummary{}, err
	}

	return ComputeMonth(MonthInput{
		Year:     year,
		Month:    month,
		Events:   events,
		Leaves:   leaves,
		Holidays: calendar,
		Rules:    rules,
		Now:      now,
		Location: loc,
	}), nil
}

// holidayCalendar assembles the four holiday sources scoped to one employee.
func (s *ReportServiceImpl) holidayCalendar(ctx context.Context, emp employee.Employee) (holiday.Calendar, error) {
	fixed, err := s.holidayRepo.ListFixed(ctx)
	if err != nil {
		return holiday.Calendar{}, fmt.Errorf("failed to get fixed holidays: %w", err)
	}

	pool, err := s.holidayRepo.ListPoolByEmployee(ctx, emp.ID)
	if err != nil {
		return holiday.Calendar{}, fmt.Errorf("failed to get pool holidays: %w", err)
	}

	configured, err := s.holidayRepo.ListConfiguredByCategory(ctx, emp.Category())
	if err != nil {
		return holiday.Calendar{}, fmt.Errorf("failed to get configured holidays: %w", err)
	}

	recurring, err := s.holidayRepo.ListRecurringByCategory(ctx, emp.Category())
	if err != nil {
		return holiday.Calendar{}, fmt.Errorf("failed to get recurring holiday rules: %w", err)
	}

	return holiday.Calendar{
		Fixed:      fixed,
		Pool:       pool,
		Configured: configured,
		Recurring:  recurring,
	}, nil
}

// shiftRules loads the category's rules, falling back to the seeded
// defaults when none are configured so the classifier keeps working.
func (s *ReportServiceImpl) shiftRules(ctx context.Context, category shift.StaffCategory) (shift.Rules, error) {
	rules, err := s.shiftRepo.GetByCategory(ctx, category)
	if err != nil {
		if errors.Is(err, shift.ErrRulesNotFound) {
			return fixtures.DefaultShiftRules(category), nil
		}
		return shift.Rules{}, fmt.Errorf("failed to get shift rules: %w", err)
	}
	return rules, nil
}

func mondayOf(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}
