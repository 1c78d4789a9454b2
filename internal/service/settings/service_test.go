package settings

import (
	"context"
	"testing"

	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	fixed      []holiday.FixedHoliday
	pool       []holiday.PoolHoliday
	configured []holiday.ConfiguredHoliday
	recurring  []holiday.RecurringRule
}

func (r *fakeHolidayRepo) ListFixed(_ context.Context) ([]holiday.FixedHoliday, error) {
	return r.fixed, nil
}

func (r *fakeHolidayRepo) CreateFixed(_ context.Context, h holiday.FixedHoliday) (holiday.FixedHoliday, error) {
	r.fixed = append(r.fixed, h)
	return h, nil
}

func (r *fakeHolidayRepo) ListPoolByEmployee(_ context.Context, employeeID string) ([]holiday.PoolHoliday, error) {
	var out []holiday.PoolHoliday
	for _, h := range r.pool {
		if h.EmployeeID == employeeID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) AssignPool(_ context.Context, assignment holiday.PoolHoliday) (holiday.PoolHoliday, error) {
	r.pool = append(r.pool, assignment)
	return assignment, nil
}

func (r *fakeHolidayRepo) ListConfiguredByCategory(_ context.Context, category shift.StaffCategory) ([]holiday.ConfiguredHoliday, error) {
	var out []holiday.ConfiguredHoliday
	for _, h := range r.configured {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) ListRecurringByCategory(_ context.Context, category shift.StaffCategory) ([]holiday.RecurringRule, error) {
	var out []holiday.RecurringRule
	for _, rule := range r.recurring {
		if rule.Category == category {
			out = append(out, rule)
		}
	}
	return out, nil
}

type fakeShiftRepo struct {
	rules map[shift.StaffCategory]shift.Rules
}

func (r *fakeShiftRepo) GetByCategory(_ context.Context, category shift.StaffCategory) (shift.Rules, error) {
	rules, ok := r.rules[category]
	if !ok {
		return shift.Rules{}, shift.ErrRulesNotFound
	}
	return rules, nil
}

func (r *fakeShiftRepo) List(_ context.Context) ([]shift.Rules, error) {
	out := make([]shift.Rules, 0, len(r.rules))
	for _, rules := range r.rules {
		out = append(out, rules)
	}
	return out, nil
}

func (r *fakeShiftRepo) Upsert(_ context.Context, rules shift.Rules) error {
	if r.rules == nil {
		r.rules = make(map[shift.StaffCategory]shift.Rules)
	}
	r.rules[rules.Category] = rules
	return nil
}

func newTestSettingsService(holidayRepo *fakeHolidayRepo) SettingsService {
	return NewSettingsService(holidayRepo, &fakeShiftRepo{})
}

func TestEnsureDefaultHolidays_SeedsEmptyCalendar(t *testing.T) {
	t.Parallel()

	repo := &fakeHolidayRepo{}
	svc := newTestSettingsService(repo)

	require.NoError(t, svc.EnsureDefaultHolidays(context.Background()))

	require.NotEmpty(t, repo.fixed)
	names := make([]string, 0, len(repo.fixed))
	for _, h := range repo.fixed {
		names = append(names, h.Name)
	}
	assert.Contains(t, names, "Republic Day")
	assert.Contains(t, names, "Christmas Day")
}

func TestEnsureDefaultHolidays_LeavesPopulatedCalendarAlone(t *testing.T) {
	t.Parallel()

	repo := &fakeHolidayRepo{
		fixed: []holiday.FixedHoliday{{ID: "fh-1", Date: "03-17", Name: "Founders Day"}},
	}
	svc := newTestSettingsService(repo)

	require.NoError(t, svc.EnsureDefaultHolidays(context.Background()))

	require.Len(t, repo.fixed, 1)
	assert.Equal(t, "Founders Day", repo.fixed[0].Name)
}

func TestEnsureDefaultHolidays_IsIdempotent(t *testing.T) {
	t.Parallel()

	repo := &fakeHolidayRepo{}
	svc := newTestSettingsService(repo)

	require.NoError(t, svc.EnsureDefaultHolidays(context.Background()))
	seeded := len(repo.fixed)

	require.NoError(t, svc.EnsureDefaultHolidays(context.Background()))
	assert.Len(t, repo.fixed, seeded)
}

func TestAssignPoolHoliday_RejectsMissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestSettingsService(&fakeHolidayRepo{})

	_, err := svc.AssignPoolHoliday(context.Background(), holiday.AssignPoolRequest{
		EmployeeID: "emp-1",
	})
	assert.Error(t, err)
}

func TestListConfiguredHolidays_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	svc := newTestSettingsService(&fakeHolidayRepo{})

	_, err := svc.ListConfiguredHolidays(context.Background(), "warehouse")
	assert.ErrorIs(t, err, shift.ErrInvalidCategory)
}
