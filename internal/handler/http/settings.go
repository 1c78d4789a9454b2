package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
	"github.com/attendly/workforce-backend-go/internal/handler/http/response"
	"github.com/attendly/workforce-backend-go/internal/service/settings"
)

type SettingsHandler interface {
	// Holiday configuration
	ListFixedHolidays(w http.ResponseWriter, r *http.Request)
	ListPoolHolidays(w http.ResponseWriter, r *http.Request)
	AssignPoolHoliday(w http.ResponseWriter, r *http.Request)
	ListConfiguredHolidays(w http.ResponseWriter, r *http.Request)
	ListRecurringRules(w http.ResponseWriter, r *http.Request)

	// Shift rules
	ListShiftRules(w http.ResponseWriter, r *http.Request)
	UpsertShiftRules(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// ListFixedHolidays handles GET /holidays/fixed
func (h *settingsHandlerImpl) ListFixedHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.ListFixedHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPoolHolidays handles GET /holidays/pool
func (h *settingsHandlerImpl) ListPoolHolidays(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	result, err := h.settingsService.ListPoolHolidays(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignPoolHoliday handles POST /holidays/pool
func (h *settingsHandlerImpl) AssignPoolHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.AssignPoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.AssignPoolHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pool holiday assigned", result)
}

// ListConfiguredHolidays handles GET /holidays/configured
func (h *settingsHandlerImpl) ListConfiguredHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.ListConfiguredHolidays(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRecurringRules handles GET /holidays/recurring
func (h *settingsHandlerImpl) ListRecurringRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.ListRecurringRules(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShiftRules handles GET /shift-rules
func (h *settingsHandlerImpl) ListShiftRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.ListShiftRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertShiftRules handles PUT /shift-rules
func (h *settingsHandlerImpl) UpsertShiftRules(w http.ResponseWriter, r *http.Request) {
	var req shift.UpsertRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpsertShiftRules(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
