package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/attendly/workforce-backend-go/internal/domain/leave"
	"github.com/attendly/workforce-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	ListApproved(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateLeave handles POST /leaves
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave record created", result)
}

// ListApproved handles GET /leaves/approved
func (h *leaveHandlerImpl) ListApproved(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	filter := leave.ListApprovedFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      month,
		Year:       year,
	}

	result, err := h.leaveService.ListApproved(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
