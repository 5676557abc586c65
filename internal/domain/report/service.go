package report

import (
	"context"
)

// ReportService defines business logic for payroll reporting
type ReportService interface {
	// BuildSalaryReport computes per-employee net payable for one calendar
	// month: monthly salary minus advances recorded in the window, with
	// worked hours alongside for reference
	BuildSalaryReport(ctx context.Context, req SalaryReportRequest) (SalaryReportResponse, error)
}
