package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/workforce-backend-go/internal/domain/employee"
	"github.com/attendly/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.Repository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, role, status, hire_date, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.EmployeeCode,
		&emp.FullName,
		&emp.Role,
		&emp.Status,
		&emp.HireDate,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.Repository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, role, status, hire_date, created_at, updated_at
		FROM employees
		WHERE status = 'active'
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Role, &emp.Status, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}
