package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/holiday"
	"github.com/attendly/workforce-backend-go/internal/domain/shift"
	"github.com/attendly/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}

// ListFixed implements holiday.Repository.
func (r *holidayRepository) ListFixed(ctx context.Context) ([]holiday.FixedHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name
		FROM fixed_holidays
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.FixedHoliday
	for rows.Next() {
		var h holiday.FixedHoliday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan fixed holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixed holidays: %w", err)
	}

	return holidays, nil
}

// CreateFixed implements holiday.Repository.
func (r *holidayRepository) CreateFixed(ctx context.Context, h holiday.FixedHoliday) (holiday.FixedHoliday, error) {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.New().String()
	}

	query := `
		INSERT INTO fixed_holidays (id, date, name)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, h.ID, h.Date, h.Name); err != nil {
		return holiday.FixedHoliday{}, fmt.Errorf("failed to create fixed holiday: %w", err)
	}

	return h, nil
}

// ListPoolByEmployee implements holiday.Repository.
func (r *holidayRepository) ListPoolByEmployee(ctx context.Context, employeeID string) ([]holiday.PoolHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, name
		FROM pool_holidays
		WHERE employee_id = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pool holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.PoolHoliday
	for rows.Next() {
		var h holiday.PoolHoliday
		if err := rows.Scan(&h.ID, &h.EmployeeID, &h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan pool holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pool holidays: %w", err)
	}

	return holidays, nil
}

// AssignPool implements holiday.Repository.
func (r *holidayRepository) AssignPool(ctx context.Context, assignment holiday.PoolHoliday) (holiday.PoolHoliday, error) {
	q := GetQuerier(ctx, r.db)

	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO pool_holidays (id, employee_id, date, name)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query,
		assignment.ID,
		assignment.EmployeeID,
		assignment.Date,
		assignment.Name,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.PoolHoliday{}, holiday.ErrPoolAlreadyAssigned
		}
		return holiday.PoolHoliday{}, fmt.Errorf("failed to assign pool holiday: %w", err)
	}

	return assignment, nil
}

// ListConfiguredByCategory implements holiday.Repository.
func (r *holidayRepository) ListConfiguredByCategory(ctx context.Context, category shift.StaffCategory) ([]holiday.ConfiguredHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, category, date, name
		FROM configured_holidays
		WHERE category = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list configured holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.ConfiguredHoliday
	for rows.Next() {
		var h holiday.ConfiguredHoliday
		if err := rows.Scan(&h.ID, &h.Category, &h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan configured holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read configured holidays: %w", err)
	}

	return holidays, nil
}

// ListRecurringByCategory implements holiday.Repository.
func (r *holidayRepository) ListRecurringByCategory(ctx context.Context, category shift.StaffCategory) ([]holiday.RecurringRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, category, weekday, ordinal, name
		FROM recurring_holiday_rules
		WHERE category = $1
		ORDER BY ordinal ASC, weekday ASC
	`

	rows, err := q.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring holiday rules: %w", err)
	}
	defer rows.Close()

	var rules []holiday.RecurringRule
	for rows.Next() {
		var rule holiday.RecurringRule
		var weekday int
		if err := rows.Scan(&rule.ID, &rule.Category, &weekday, &rule.Ordinal, &rule.Name); err != nil {
			return nil, fmt.Errorf("failed to scan recurring holiday rule: %w", err)
		}
		rule.Weekday = timeWeekday(weekday)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recurring holiday rules: %w", err)
	}

	return rules, nil
}

// timeWeekday converts the stored 0-6 weekday (Sunday = 0) to time.Weekday.
func timeWeekday(d int) time.Weekday {
	return time.Weekday(((d % 7) + 7) % 7)
}
