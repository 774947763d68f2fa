package employee

import (
	"context"
)

// EmployeeRepository defines read access to the employee directory.
// The reconciliation engine only ever reads employees; lifecycle management
// belongs to an external admin surface.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves an employee by the stable code used to join raw logs
	GetByCode(ctx context.Context, code string) (Employee, error)

	// ListWithShift retrieves all employees with a non-null shift assignment,
	// the population of a reconciliation run
	ListWithShift(ctx context.Context) ([]Employee, error)
}
