package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/domain/employee"
)

type EventServiceImpl struct {
	eventRepo    attendance.EventRepository
	employeeRepo employee.Repository
}

func NewEventService(eventRepo attendance.EventRepository, employeeRepo employee.Repository) attendance.EventService {
	return &EventServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

// RecordEvent implements attendance.EventService.
func (s *EventServiceImpl) RecordEvent(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.EventResponse{}, err
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return attendance.EventResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
		timestamp = parsed.UTC()
	}

	created, err := s.eventRepo.Create(ctx, attendance.Event{
		EmployeeID: req.EmployeeID,
		Timestamp:  timestamp,
		Kind:       attendance.EventKind(req.Kind),
		Source:     req.Source,
	})
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to record event: %w", err)
	}

	return attendance.NewEventResponse(created), nil
}

// ListEvents implements attendance.EventService.
func (s *EventServiceImpl) ListEvents(ctx context.Context, filter attendance.ListEventsFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", filter.StartDate)
	end, _ := time.Parse("2006-01-02", filter.EndDate)
	end = end.AddDate(0, 0, 1) // inclusive end date

	events, err := s.eventRepo.ListByEmployeeAndRange(ctx, filter.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, attendance.NewEventResponse(e))
	}
	return responses, nil
}
