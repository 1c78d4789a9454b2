package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/employee"
	"github.com/attendly/workforce-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateLeave implements leave.Service.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.Record{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  req.LeaveType,
		Status:     leave.Status(req.Status),
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return leave.NewLeaveResponse(created), nil
}

// ListApproved implements leave.Service.
func (s *LeaveServiceImpl) ListApproved(ctx context.Context, filter leave.ListApprovedFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := filter.MonthRange()
	records, err := s.leaveRepo.ListApproved(ctx, filter.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, leave.NewLeaveResponse(r))
	}
	return responses, nil
}
