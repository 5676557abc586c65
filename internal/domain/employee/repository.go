package employee

import (
	"context"
)

// EmployeeRepository is a read-only view over the employee collection.
type EmployeeRepository interface {
	// GetByID retrieves an employee, ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListWithSalary retrieves active employees that have a monthly salary
	// set and positive; everyone else is invisible to payroll.
	ListWithSalary(ctx context.Context) ([]Employee, error)
}
