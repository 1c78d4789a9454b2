package employee

import (
	"time"

	"github.com/attendly/workforce-backend-go/internal/domain/shift"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusResigned Status = "resigned"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Role         string
	Status       Status
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category derives the staff category from the employee's role.
func (e Employee) Category() shift.StaffCategory {
	return shift.CategoryForRole(e.Role)
}
