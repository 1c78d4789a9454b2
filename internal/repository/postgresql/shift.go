package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/workforce-backend-go/internal/domain/shift"
	"github.com/attendly/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRulesRepository struct {
	db *database.DB
}

func NewShiftRulesRepository(db *database.DB) shift.RulesRepository {
	return &shiftRulesRepository{db: db}
}

// GetByCategory implements shift.RulesRepository.
func (r *shiftRulesRepository) GetByCategory(ctx context.Context, category shift.StaffCategory) (shift.Rules, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT category, full_day_hours, half_day_hours, max_daily_hours
		FROM shift_rules
		WHERE category = $1
	`

	var rules shift.Rules
	err := q.QueryRow(ctx, query, category).Scan(
		&rules.Category,
		&rules.FullDayHours,
		&rules.HalfDayHours,
		&rules.MaxDailyHours,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Rules{}, shift.ErrRulesNotFound
		}
		return shift.Rules{}, fmt.Errorf("failed to get shift rules: %w", err)
	}

	return rules, nil
}

// List implements shift.RulesRepository.
func (r *shiftRulesRepository) List(ctx context.Context) ([]shift.Rules, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT category, full_day_hours, half_day_hours, max_daily_hours
		FROM shift_rules
		ORDER BY category ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift rules: %w", err)
	}
	defer rows.Close()

	var all []shift.Rules
	for rows.Next() {
		var rules shift.Rules
		if err := rows.Scan(&rules.Category, &rules.FullDayHours, &rules.HalfDayHours, &rules.MaxDailyHours); err != nil {
			return nil, fmt.Errorf("failed to scan shift rules: %w", err)
		}
		all = append(all, rules)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift rules: %w", err)
	}

	return all, nil
}

// Upsert implements shift.RulesRepository.
func (r *shiftRulesRepository) Upsert(ctx context.Context, rules shift.Rules) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_rules (category, full_day_hours, half_day_hours, max_daily_hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category) DO UPDATE SET
			full_day_hours = EXCLUDED.full_day_hours,
			half_day_hours = EXCLUDED.half_day_hours,
			max_daily_hours = EXCLUDED.max_daily_hours
	`

	if _, err := q.Exec(ctx, query, rules.Category, rules.FullDayHours, rules.HalfDayHours, rules.MaxDailyHours); err != nil {
		return fmt.Errorf("failed to upsert shift rules: %w", err)
	}

	return nil
}
