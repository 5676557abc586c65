package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryAdvance is one advance payment, deducted from the employee's net
// payable in the month it was recorded. Rows are immutable once created;
// corrections happen by delete-and-recreate. EmployeeName and
// RecordedByName are snapshots, not live references.
type SalaryAdvance struct {
	ID             string
	EmployeeID     string
	EmployeeName   string
	Amount         decimal.Decimal
	Date           time.Time // server-assigned at creation
	Notes          *string
	RecordedByUID  string
	RecordedByName string
	CreatedAt      time.Time
}
