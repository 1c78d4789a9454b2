package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attendly/workforce-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct {
	monthly report.MonthlyReport
	day     report.DayStatusResponse
	err     error
}

func (s *stubReportService) MonthlyReport(_ context.Context, _ report.MonthlyReportRequest) (report.MonthlyReport, error) {
	return s.monthly, s.err
}

func (s *stubReportService) DayStatus(_ context.Context, _ report.DayStatusRequest) (report.DayStatusResponse, error) {
	return s.day, s.err
}

func TestReportHandler_GetMonthlyReport(t *testing.T) {
	t.Parallel()

	handler := NewReportHandler(&stubReportService{
		monthly: report.MonthlyReport{PeriodMonth: 2, PeriodYear: 2024},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/attendance/monthly?month=2&year=2024", nil)
	rec := httptest.NewRecorder()

	handler.GetMonthlyReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                 `json:"success"`
		Data    report.MonthlyReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Data.PeriodMonth)
	assert.Equal(t, 2024, body.Data.PeriodYear)
}

func TestReportHandler_GetMonthlyReport_RejectsNonNumericPeriod(t *testing.T) {
	t.Parallel()

	handler := NewReportHandler(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/reports/attendance/monthly?month=feb&year=2024", nil)
	rec := httptest.NewRecorder()

	handler.GetMonthlyReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_GetDayStatus(t *testing.T) {
	t.Parallel()

	handler := NewReportHandler(&stubReportService{
		day: report.DayStatusResponse{
			EmployeeID: "emp-1",
			Day:        report.DayRecordResponse{Date: "2024-02-07", Status: "present"},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/attendance/day?employee_id=emp-1&date=2024-02-07", nil)
	rec := httptest.NewRecorder()

	handler.GetDayStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                     `json:"success"`
		Data    report.DayStatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "emp-1", body.Data.EmployeeID)
	assert.Equal(t, "present", body.Data.Day.Status)
}
