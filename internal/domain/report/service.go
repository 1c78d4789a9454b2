package report

import "context"

// Service defines the reporting operations exposed over HTTP.
type Service interface {
	// MonthlyReport reconciles one month of attendance for all active
	// employees, or a single employee when the request carries a filter.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// DayStatus classifies a single employee-day.
	DayStatus(ctx context.Context, req DayStatusRequest) (DayStatusResponse, error)
}
