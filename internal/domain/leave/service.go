package leave

import "context"

// Service defines business logic for leave records.
type Service interface {
	// CreateLeave stores one leave record after validation.
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// ListApproved retrieves an employee's approved leaves for one month.
	ListApproved(ctx context.Context, filter ListApprovedFilter) ([]LeaveResponse, error)
}
