package advance

import (
	"context"
	"time"
)

// AdvanceRepository defines data access methods for salary advances.
// Advances are create/delete only; there is no update operation.
type AdvanceRepository interface {
	// Create persists a new advance. The store assigns id and date.
	Create(ctx context.Context, adv SalaryAdvance) (SalaryAdvance, error)

	// GetByID retrieves an advance, ErrAdvanceNotFound when absent.
	GetByID(ctx context.Context, id string) (SalaryAdvance, error)

	// List retrieves advances, optionally scoped to an employee and a
	// date window (endpoints inclusive).
	List(ctx context.Context, employeeID *string, start, end *time.Time) ([]SalaryAdvance, error)

	// Delete removes an advance, ErrAdvanceNotFound when absent.
	Delete(ctx context.Context, id string) error
}
