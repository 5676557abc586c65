package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the partial profile view this service reads. Employee CRUD
// lives in the surrounding back office; only the fields needed for
// attendance and payroll cross this boundary. A nil MonthlySalary means
// the employee is excluded from salary reports entirely; absence, not
// zero, is the exclusion signal.
type Employee struct {
	ID            string
	FullName      string
	Email         string
	MonthlySalary *decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
