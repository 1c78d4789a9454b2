package attendance

import "context"

// EventService defines business logic for punch events.
type EventService interface {
	// RecordEvent stores one punch after validation.
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	// ListEvents retrieves an employee's events for a date range.
	ListEvents(ctx context.Context, filter ListEventsFilter) ([]EventResponse, error)
}
