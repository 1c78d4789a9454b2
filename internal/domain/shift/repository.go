package shift

import "context"

// RulesRepository defines data access for per-category shift rules.
type RulesRepository interface {
	// GetByCategory retrieves the rules configured for one staff category.
	GetByCategory(ctx context.Context, category StaffCategory) (Rules, error)

	// List retrieves the rules for all categories.
	List(ctx context.Context) ([]Rules, error)

	// Upsert creates or replaces the rules for a category.
	Upsert(ctx context.Context, rules Rules) error
}
