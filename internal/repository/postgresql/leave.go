package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/leave"
	"github.com/attendly/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

// ListApproved implements leave.Repository. Returns approved records whose
// interval overlaps [start, end].
func (r *leaveRepository) ListApproved(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, leave_type, status, reason, created_at, updated_at
		FROM leave_records
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.LeaveType, &rec.Status, &rec.Reason, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave records: %w", err)
	}

	return records, nil
}

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, record leave.Record) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	if record.EndDate.Before(record.StartDate) {
		return leave.Record{}, leave.ErrInvalidRange
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_records (id, employee_id, start_date, end_date, leave_type, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.StartDate,
		record.EndDate,
		record.LeaveType,
		record.Status,
		record.Reason,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return record, nil
}
