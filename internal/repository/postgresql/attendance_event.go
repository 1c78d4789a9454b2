package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/attendance"
	"github.com/attendly/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceEventRepository struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) attendance.EventRepository {
	return &attendanceEventRepository{db: db}
}

// Create implements attendance.EventRepository.
func (r *attendanceEventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_events (id, employee_id, ts, kind, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.Timestamp,
		event.Kind,
		event.Source,
	).Scan(&event.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// ListByEmployeeAndRange implements attendance.EventRepository.
func (r *attendanceEventRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, ts, kind, source, created_at
		FROM attendance_events
		WHERE employee_id = $1
		  AND ts >= $2
		  AND ts < $3
		ORDER BY ts ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var e attendance.Event
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Timestamp, &e.Kind, &e.Source, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance events: %w", err)
	}

	return events, nil
}

// ListOpenSessions implements attendance.EventRepository. Returns employee
// IDs with a check-in but no check-out inside [start, end).
func (r *attendanceEventRepository) ListOpenSessions(ctx context.Context, start, end time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ci.employee_id
		FROM attendance_events ci
		WHERE ci.kind = 'check_in'
		  AND ci.ts >= $1 AND ci.ts < $2
		  AND NOT EXISTS (
			SELECT 1
			FROM attendance_events co
			WHERE co.employee_id = ci.employee_id
			  AND co.kind = 'check_out'
			  AND co.ts >= ci.ts AND co.ts < $2
		  )
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	var employeeIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan open session: %w", err)
		}
		employeeIDs = append(employeeIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read open sessions: %w", err)
	}

	return employeeIDs, nil
}
