package report

import (
	"fmt"
	"time"

	"github.com/risingsuncomputers/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// MONTHLY SALARY REPORT
// ========================================

type SalaryReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *SalaryReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SalaryReportRow is one employee's line in the monthly report. TotalHours
// is informational only; it never reduces NetPayable. NetPayable can go
// negative when advances exceed salary; IsOverdrawn surfaces that case
// instead of clamping.
type SalaryReportRow struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	TotalHours    string          `json:"total_hours"`
	WorkedMs      int64           `json:"worked_ms"`
	AdvancesTotal decimal.Decimal `json:"advances_total"`
	NetPayable    decimal.Decimal `json:"net_payable"`
	IsOverdrawn   bool            `json:"is_overdrawn"`
}

type SalaryReportTotals struct {
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	AdvancesTotal decimal.Decimal `json:"advances_total"`
	NetPayable    decimal.Decimal `json:"net_payable"`
}

type SalaryReportResponse struct {
	PeriodMonth int                `json:"period_month"`
	PeriodYear  int                `json:"period_year"`
	PeriodStart string             `json:"period_start"`
	PeriodEnd   string             `json:"period_end"`
	GeneratedAt string             `json:"generated_at"`
	Rows        []SalaryReportRow  `json:"rows"`
	Totals      SalaryReportTotals `json:"totals"`
}
