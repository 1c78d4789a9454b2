package leave

import (
	"context"
	"time"
)

// Repository defines data access for leave records.
type Repository interface {
	// ListApproved retrieves approved records for an employee whose
	// interval overlaps [start, end].
	ListApproved(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// Create stores a new leave record.
	Create(ctx context.Context, record Record) (Record, error)
}
