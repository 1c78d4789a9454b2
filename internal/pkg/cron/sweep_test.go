package cron

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	openSessions []string
	gotStart     time.Time
	gotEnd       time.Time
}

func (r *fakeEventRepo) Create(_ context.Context, event attendance.Event) (attendance.Event, error) {
	return event, nil
}

func (r *fakeEventRepo) ListByEmployeeAndRange(_ context.Context, _ string, _, _ time.Time) ([]attendance.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) ListOpenSessions(_ context.Context, start, end time.Time) ([]string, error) {
	r.gotStart = start
	r.gotEnd = end
	return r.openSessions, nil
}

type fakeReportService struct {
	requests []report.DayStatusRequest
}

func (s *fakeReportService) MonthlyReport(_ context.Context, _ report.MonthlyReportRequest) (report.MonthlyReport, error) {
	return report.MonthlyReport{}, nil
}

func (s *fakeReportService) DayStatus(_ context.Context, req report.DayStatusRequest) (report.DayStatusResponse, error) {
	s.requests = append(s.requests, req)
	return report.DayStatusResponse{
		EmployeeID: req.EmployeeID,
		Day:        report.DayRecordResponse{Date: req.Date, Status: "present"},
	}, nil
}

func TestSweepJobs_FlagOpenSessions(t *testing.T) {
	t.Parallel()

	events := &fakeEventRepo{openSessions: []string{"emp-1", "emp-2"}}
	reports := &fakeReportService{}
	sweep := NewSweepJobs(events, reports, 24*time.Hour)

	require.NoError(t, sweep.FlagOpenSessions(context.Background()))

	// the sweep looks at yesterday's calendar day
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	assert.Equal(t, yesterday, events.gotStart.Format("2006-01-02"))
	assert.Equal(t, 24*time.Hour, events.gotEnd.Sub(events.gotStart))

	// every flagged employee gets classified for that day
	require.Len(t, reports.requests, 2)
	assert.Equal(t, "emp-1", reports.requests[0].EmployeeID)
	assert.Equal(t, yesterday, reports.requests[0].Date)
	assert.Equal(t, "emp-2", reports.requests[1].EmployeeID)
}

func TestSweepJobs_RegisterJobsUsesConfiguredInterval(t *testing.T) {
	t.Parallel()

	events := &fakeEventRepo{}
	sweep := NewSweepJobs(events, &fakeReportService{}, 6*time.Hour)

	scheduler := NewScheduler()
	sweep.RegisterJobs(scheduler)

	require.Len(t, scheduler.jobs, 1)
	assert.Equal(t, "flag_open_sessions", scheduler.jobs[0].Name)
	assert.Equal(t, 6*time.Hour, scheduler.jobs[0].Interval)
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()

	scheduler := NewScheduler()
	calls := 0
	scheduler.AddJob("count", time.Hour, func(_ context.Context) error {
		calls++
		return nil
	})

	scheduler.RunOnce(context.Background())
	scheduler.RunOnce(context.Background())

	assert.Equal(t, 2, calls)
}
