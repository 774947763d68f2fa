package postgresql

import (
	"context"
	"fmt"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.employee_code, e.shift_id, e.created_at, e.updated_at, s.name
		FROM employees e
		LEFT JOIN shifts s ON s.id = e.shift_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.EmployeeCode, &emp.ShiftID,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.ShiftName,
	)

	if err == pgx.ErrNoRows {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.employee_code, e.shift_id, e.created_at, e.updated_at, s.name
		FROM employees e
		LEFT JOIN shifts s ON s.id = e.shift_id
		WHERE e.employee_code = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, code).Scan(
		&emp.ID, &emp.FullName, &emp.EmployeeCode, &emp.ShiftID,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.ShiftName,
	)

	if err == pgx.ErrNoRows {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// ListWithShift implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListWithShift(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.employee_code, e.shift_id, e.created_at, e.updated_at, s.name
		FROM employees e
		JOIN shifts s ON s.id = e.shift_id
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with shift: %w", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.EmployeeCode, &emp.ShiftID,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.ShiftName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}
