package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access for punch events. Events are
// append-only; there is no update or delete path.
type EventRepository interface {
	// Create records a new punch event.
	Create(ctx context.Context, event Event) (Event, error)

	// ListByEmployeeAndRange retrieves an employee's events with
	// timestamps in [start, end), ordered by timestamp ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Event, error)

	// ListOpenSessions retrieves employee IDs that have a check-in but no
	// later check-out within [start, end). Used by the nightly sweep.
	ListOpenSessions(ctx context.Context, start, end time.Time) ([]string, error)
}
