package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	eventService attendance.EventService
}

func NewAttendanceHandler(eventService attendance.EventService) AttendanceHandler {
	return &attendanceHandlerImpl{
		eventService: eventService,
	}
}

// RecordEvent handles POST /attendance/events
func (h *attendanceHandlerImpl) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.eventService.RecordEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch event recorded", result)
}

// ListEvents handles GET /attendance/events
func (h *attendanceHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListEventsFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.eventService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
