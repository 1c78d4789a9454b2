package employee

import "context"

// Repository defines data access for employees.
type Repository interface {
	// GetByID retrieves one employee.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all active employees ordered by full name.
	ListActive(ctx context.Context) ([]Employee, error)
}
