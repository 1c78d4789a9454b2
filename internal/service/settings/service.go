package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
	"github.com/attendly/workforce-backend-go/internal/fixtures"
)

// SettingsService aggregates the configuration surfaces the report core
// reads from: holiday calendars and per-category shift rules.
type SettingsService interface {
	// EnsureDefaultHolidays seeds the fixed holiday calendar on an empty
	// deployment. Populated calendars are left untouched.
	EnsureDefaultHolidays(ctx context.Context) error

	// Holiday operations
	ListFixedHolidays(ctx context.Context) ([]holiday.FixedHolidayResponse, error)
	ListPoolHolidays(ctx context.Context, employeeID string) ([]holiday.PoolHolidayResponse, error)
	AssignPoolHoliday(ctx context.Context, req holiday.AssignPoolRequest) (holiday.PoolHolidayResponse, error)
	ListConfiguredHolidays(ctx context.Context, category string) ([]holiday.ConfiguredHolidayResponse, error)
	ListRecurringRules(ctx context.Context, category string) ([]holiday.RecurringRuleResponse, error)

	// Shift rule operations
	ListShiftRules(ctx context.Context) ([]shift.RulesResponse, error)
	UpsertShiftRules(ctx context.Context, req shift.UpsertRulesRequest) (shift.RulesResponse, error)
}

type settingsServiceImpl struct {
	holidayRepo holiday.Repository
	shiftRepo   shift.RulesRepository
}

func NewSettingsService(holidayRepo holiday.Repository, shiftRepo shift.RulesRepository) SettingsService {
	return &settingsServiceImpl{
		holidayRepo: holidayRepo,
		shiftRepo:   shiftRepo,
	}
}

// EnsureDefaultHolidays implements SettingsService.
func (s *settingsServiceImpl) EnsureDefaultHolidays(ctx context.Context) error {
	existing, err := s.holidayRepo.ListFixed(ctx)
	if err != nil {
		return fmt.Errorf("failed to check fixed holidays: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, h := range fixtures.DefaultFixedHolidays() {
		if _, err := s.holidayRepo.CreateFixed(ctx, h); err != nil {
			return fmt.Errorf("failed to seed fixed holiday %q: %w", h.Name, err)
		}
	}
	return nil
}

// ==================== HOLIDAY OPERATIONS ====================

func (s *settingsServiceImpl) ListFixedHolidays(ctx context.Context) ([]holiday.FixedHolidayResponse, error) {
	fixed, err := s.holidayRepo.ListFixed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed holidays: %w", err)
	}

	responses := make([]holiday.FixedHolidayResponse, 0, len(fixed))
	for _, h := range fixed {
		responses = append(responses, holiday.FixedHolidayResponse{ID: h.ID, Date: h.Date, Name: h.Name})
	}
	return responses, nil
}

func (s *settingsServiceImpl) ListPoolHolidays(ctx context.Context, employeeID string) ([]holiday.PoolHolidayResponse, error) {
	pool, err := s.holidayRepo.ListPoolByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pool holidays: %w", err)
	}

	responses := make([]holiday.PoolHolidayResponse, 0, len(pool))
	for _, h := range pool {
		responses = append(responses, holiday.PoolHolidayResponse{
			ID:         h.ID,
			EmployeeID: h.EmployeeID,
			Date:       h.Date,
			Name:       h.Name,
		})
	}
	return responses, nil
}

func (s *settingsServiceImpl) AssignPoolHoliday(ctx context.Context, req holiday.AssignPoolRequest) (holiday.PoolHolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.PoolHolidayResponse{}, err
	}

	created, err := s.holidayRepo.AssignPool(ctx, holiday.PoolHoliday{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Name:       req.Name,
	})
	if err != nil {
		return holiday.PoolHolidayResponse{}, err
	}

	return holiday.PoolHolidayResponse{
		ID:         created.ID,
		EmployeeID: created.EmployeeID,
		Date:       created.Date,
		Name:       created.Name,
	}, nil
}

func (s *settingsServiceImpl) ListConfiguredHolidays(ctx context.Context, category string) ([]holiday.ConfiguredHolidayResponse, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return nil, err
	}

	configured, err := s.holidayRepo.ListConfiguredByCategory(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to list configured holidays: %w", err)
	}

	responses := make([]holiday.ConfiguredHolidayResponse, 0, len(configured))
	for _, h := range configured {
		responses = append(responses, holiday.ConfiguredHolidayResponse{
			ID:       h.ID,
			Category: string(h.Category),
			Date:     h.Date,
			Name:     h.Name,
		})
	}
	return responses, nil
}

func (s *settingsServiceImpl) ListRecurringRules(ctx context.Context, category string) ([]holiday.RecurringRuleResponse, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return nil, err
	}

	rules, err := s.holidayRepo.ListRecurringByCategory(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring holiday rules: %w", err)
	}

	responses := make([]holiday.RecurringRuleResponse, 0, len(rules))
	for _, r := range rules {
		responses = append(responses, holiday.RecurringRuleResponse{
			ID:       r.ID,
			Category: string(r.Category),
			Weekday:  r.Weekday.String(),
			Ordinal:  r.Ordinal,
			Name:     r.Name,
		})
	}
	return responses, nil
}

// ==================== SHIFT RULE OPERATIONS ====================

func (s *settingsServiceImpl) ListShiftRules(ctx context.Context) ([]shift.RulesResponse, error) {
	all, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift rules: %w", err)
	}

	responses := make([]shift.RulesResponse, 0, len(all))
	for _, r := range all {
		responses = append(responses, shift.NewRulesResponse(r))
	}
	return responses, nil
}

func (s *settingsServiceImpl) UpsertShiftRules(ctx context.Context, req shift.UpsertRulesRequest) (shift.RulesResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.RulesResponse{}, err
	}

	rules := shift.Rules{
		Category:      shift.StaffCategory(req.Category),
		FullDayHours:  req.FullDayHours,
		HalfDayHours:  req.HalfDayHours,
		MaxDailyHours: req.MaxDailyHours,
	}

	if err := s.shiftRepo.Upsert(ctx, rules); err != nil {
		return shift.RulesResponse{}, fmt.Errorf("failed to upsert shift rules: %w", err)
	}

	return shift.NewRulesResponse(rules), nil
}

func parseCategory(category string) (shift.StaffCategory, error) {
	switch shift.StaffCategory(strings.ToLower(strings.TrimSpace(category))) {
	case shift.CategoryOffice:
		return shift.CategoryOffice, nil
	case shift.CategoryField:
		return shift.CategoryField, nil
	case shift.CategorySite:
		return shift.CategorySite, nil
	default:
		return "", shift.ErrInvalidCategory
	}
}
