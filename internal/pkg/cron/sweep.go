package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/domain/report"
)

// SweepJobs flags punch anomalies. Punch events are append-only, so the
// sweep never rewrites data; a day with a check-in and no check-out simply
// accrues no hours when the month is reconciled.
type SweepJobs struct {
	eventRepo attendance.EventRepository
	reportSvc report.Service
	interval  time.Duration
}

// NewSweepJobs builds the sweep with its configured run interval.
func NewSweepJobs(eventRepo attendance.EventRepository, reportSvc report.Service, interval time.Duration) *SweepJobs {
	return &SweepJobs{
		eventRepo: eventRepo,
		reportSvc: reportSvc,
		interval:  interval,
	}
}

func (j *SweepJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("flag_open_sessions", j.interval, j.FlagOpenSessions)
}

// FlagOpenSessions reports employees who checked in yesterday but never
// checked out, along with how the day classified without the check-out.
func (j *SweepJobs) FlagOpenSessions(ctx context.Context) error {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	employeeIDs, err := j.eventRepo.ListOpenSessions(ctx, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("failed to list open sessions: %w", err)
	}

	if len(employeeIDs) == 0 {
		slog.Info("Sweep: no open sessions found")
		return nil
	}

	dateStr := dayStart.Format("2006-01-02")
	for _, employeeID := range employeeIDs {
		status := "unknown"
		day, err := j.reportSvc.DayStatus(ctx, report.DayStatusRequest{
			EmployeeID: employeeID,
			Date:       dateStr,
		})
		if err != nil {
			slog.Error("Sweep: failed to classify open session day",
				"employee_id", employeeID, "date", dateStr, "error", err)
		} else {
			status = day.Day.Status
		}

		slog.Warn("Sweep: check-in without check-out",
			"employee_id", employeeID,
			"date", dateStr,
			"status", status)
	}

	slog.Info("Sweep: finished", "count", len(employeeIDs))
	return nil
}
