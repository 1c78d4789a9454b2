package http

import (
	"net/http"
	"strconv"

	"github.com/attendly/workforce-backend-go/internal/domain/report"
	"github.com/attendly/workforce-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Monthly attendance reconciliation
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)

	// Single-day status
	GetDayStatus(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthlyReport handles GET /reports/attendance/monthly
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	req := report.MonthlyReportRequest{
		Month: month,
		Year:  year,
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}

	result, err := h.reportService.MonthlyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDayStatus handles GET /reports/attendance/day
func (h *reportHandlerImpl) GetDayStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.DayStatusRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}

	result, err := h.reportService.DayStatus(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
