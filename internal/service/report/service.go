package report

import (
	"context"
	"fmt"
	"time"

	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/advance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/attendance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/employee"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	EmployeeRepository   employee.EmployeeRepository
	AttendanceRepository attendance.AttendanceRepository
	AdvanceRepository    advance.AdvanceRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		AdvanceRepository:    advanceRepo,
	}
}

// BuildSalaryReport implements report.ReportService.
//
// Net payable is monthly salary minus the month's advances. Worked hours
// ride along for reference but never enter the arithmetic; this payroll
// pays fixed monthly salaries, not hourly wages.
func (r *ReportServiceImpl) BuildSalaryReport(ctx context.Context, req report.SalaryReportRequest) (report.SalaryReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SalaryReportResponse{}, err
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	now := time.Now().UTC()

	employees, err := r.EmployeeRepository.ListWithSalary(ctx)
	if err != nil {
		return report.SalaryReportResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	sessions, err := r.AttendanceRepository.ListForWindow(ctx, periodStart, periodEnd, nil)
	if err != nil {
		return report.SalaryReportResponse{}, fmt.Errorf("failed to list attendance sessions: %w", err)
	}
	workedByEmployee := attendance.AggregateWorkedTime(sessions, periodStart, periodEnd, now)

	advances, err := r.AdvanceRepository.List(ctx, nil, &periodStart, &periodEnd)
	if err != nil {
		return report.SalaryReportResponse{}, fmt.Errorf("failed to list salary advances: %w", err)
	}
	advancesByEmployee := make(map[string]decimal.Decimal)
	for _, adv := range advances {
		advancesByEmployee[adv.EmployeeID] = advancesByEmployee[adv.EmployeeID].Add(adv.Amount)
	}

	rows := make([]report.SalaryReportRow, 0, len(employees))
	var totals report.SalaryReportTotals
	for _, emp := range employees {
		if emp.MonthlySalary == nil {
			continue
		}
		salary := *emp.MonthlySalary
		worked := workedByEmployee[emp.ID]
		advanceTotal := advancesByEmployee[emp.ID]
		netPayable := salary.Sub(advanceTotal)

		rows = append(rows, report.SalaryReportRow{
			EmployeeID:    emp.ID,
			EmployeeName:  emp.FullName,
			MonthlySalary: salary,
			TotalHours:    attendance.FormatWorked(worked),
			WorkedMs:      worked.Milliseconds(),
			AdvancesTotal: advanceTotal,
			NetPayable:    netPayable,
			IsOverdrawn:   netPayable.IsNegative(),
		})

		totals.MonthlySalary = totals.MonthlySalary.Add(salary)
		totals.AdvancesTotal = totals.AdvancesTotal.Add(advanceTotal)
		totals.NetPayable = totals.NetPayable.Add(netPayable)
	}

	return report.SalaryReportResponse{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format(time.RFC3339),
		PeriodEnd:   periodEnd.Format(time.RFC3339),
		GeneratedAt: now.Format(time.RFC3339),
		Rows:        rows,
		Totals:      totals,
	}, nil
}
