package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance sessions
type AttendanceService interface {
	// ClockIn opens a new session for the authenticated employee
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes an open session
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetMyAttendance retrieves sessions for the authenticated employee
	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves sessions with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single session by ID (admin)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// HoursToday computes the authenticated employee's worked time so far
	// today, clamping any open session to now
	HoursToday(ctx context.Context) (HoursTodayResponse, error)
}
