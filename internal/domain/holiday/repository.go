package holiday

import (
	"context"

	"github.com/attendly/workforce-backend-go/internal/domain/shift"
)

// Repository defines data access for the four holiday sources.
type Repository interface {
	// ListFixed retrieves all fixed holidays.
	ListFixed(ctx context.Context) ([]FixedHoliday, error)

	// CreateFixed stores a fixed holiday.
	CreateFixed(ctx context.Context, h FixedHoliday) (FixedHoliday, error)

	// ListPoolByEmployee retrieves an employee's pool assignments.
	ListPoolByEmployee(ctx context.Context, employeeID string) ([]PoolHoliday, error)

	// AssignPool stores a pool holiday pick for an employee.
	AssignPool(ctx context.Context, assignment PoolHoliday) (PoolHoliday, error)

	// ListConfiguredByCategory retrieves admin-set holidays for a category.
	ListConfiguredByCategory(ctx context.Context, category shift.StaffCategory) ([]ConfiguredHoliday, error)

	// ListRecurringByCategory retrieves recurring rules for a category.
	ListRecurringByCategory(ctx context.Context, category shift.StaffCategory) ([]RecurringRule, error)
}
