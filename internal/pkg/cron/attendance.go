package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	staleSessionMax time.Duration
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, staleSessionMax time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		staleSessionMax: staleSessionMax,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("audit_stale_open_sessions", 30*time.Minute, j.AuditStaleOpenSessions)
}

// AuditStaleOpenSessions logs sessions that have been open longer than the
// configured maximum. It never mutates records; a forgotten clock-out is
// fixed by the employee or an admin, not by the scheduler.
func (j *AttendanceJobs) AuditStaleOpenSessions(ctx context.Context) error {
	open, err := j.attendanceRepo.ListOpen(ctx)
	if err != nil {
		return fmt.Errorf("failed to list open sessions: %w", err)
	}

	now := time.Now().UTC()
	stale := 0
	for _, att := range open {
		age := now.Sub(att.ClockIn)
		if age <= j.staleSessionMax {
			continue
		}
		stale++
		slog.Warn("Attendance session open past maximum",
			"record_id", att.ID,
			"employee_id", att.EmployeeID,
			"employee_name", att.EmployeeName,
			"clock_in", att.ClockIn.Format(time.RFC3339),
			"open_for", age.Round(time.Minute).String(),
		)
	}

	if stale > 0 {
		slog.Info("Stale session audit finished", "open", len(open), "stale", stale)
	}

	return nil
}
