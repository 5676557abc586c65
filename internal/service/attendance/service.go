package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/attendance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
	}
}

// Helper to get the caller's identity from JWT context
func getClaimsFromContext(ctx context.Context) (userID, userName string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	userName, _ = claims["user_name"].(string)

	return userID, userName, nil
}

func isAdminFromContext(ctx context.Context) bool {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false
	}
	admin, _ := claims["is_admin"].(bool)
	return admin
}

// timePtrToString safely converts a *time.Time to an ISO-8601 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

// ClockIn implements attendance.AttendanceService.
//
// The open-session precondition is checked here for a friendly error, but
// the invariant itself is held by the store's partial unique index: two
// near-simultaneous clock-ins can both pass this check, and the second
// insert then fails with ErrSessionConflict.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, userName, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, err = a.AttendanceRepository.GetOpenSession(ctx, userID)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrSessionConflict
	}
	if !errors.Is(err, attendance.ErrNoOpenSession) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check for open session: %w", err)
	}

	nowUTC := time.Now().UTC()

	data := attendance.Attendance{
		EmployeeID:   userID,
		EmployeeName: userName,
		ClockIn:      nowUTC,
		Status:       attendance.StatusClockedIn,
		Latitude:     &req.Latitude,
		Longitude:    &req.Longitude,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrSessionConflict) {
			return attendance.AttendanceResponse{}, attendance.ErrSessionConflict
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
//
// Clock-out time is always server time at the moment of the call; there is
// no end-time argument, so client clock skew never enters the record.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		if errors.Is(err, attendance.ErrSessionNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrSessionNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if att.EmployeeID != userID && !isAdminFromContext(ctx) {
		return attendance.AttendanceResponse{}, attendance.ErrNotSessionOwner
	}

	// A second clock-out must fail without touching the record.
	if !att.Open() {
		return attendance.AttendanceResponse{}, attendance.ErrSessionAlreadyClosed
	}

	nowUTC := time.Now().UTC()
	duration := attendance.FormatElapsed(nowUTC.Sub(att.ClockIn))

	att.ClockOut = &nowUTC
	att.Duration = &duration
	att.Status = att.CurrentStatus()

	if err := a.AttendanceRepository.Close(ctx, att); err != nil {
		if errors.Is(err, attendance.ErrSessionNotFound) || errors.Is(err, attendance.ErrSessionAlreadyClosed) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// Callers can never list anyone else's sessions through this path.
	filter.EmployeeID = &userID

	return a.listWithFilter(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return a.listWithFilter(ctx, filter)
}

func (a *AttendanceServiceImpl) listWithFilter(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrSessionNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrSessionNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// HoursToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) HoursToday(ctx context.Context) (attendance.HoursTodayResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.HoursTodayResponse{}, err
	}

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	records, err := a.AttendanceRepository.ListForWindow(ctx, dayStart, dayEnd, &userID)
	if err != nil {
		return attendance.HoursTodayResponse{}, fmt.Errorf("failed to list sessions for today: %w", err)
	}

	totals := attendance.AggregateWorkedTime(records, dayStart, dayEnd, now)
	worked := totals[userID]

	hasOpen := false
	for _, rec := range records {
		if rec.Open() {
			hasOpen = true
			break
		}
	}

	return attendance.HoursTodayResponse{
		EmployeeID:    userID,
		Date:          dayStart.Format("2006-01-02"),
		WorkedMs:      worked.Milliseconds(),
		Worked:        attendance.FormatWorked(worked),
		HasOpenRecord: hasOpen,
	}, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		ClockInTime:  att.ClockIn.Format(time.RFC3339),
		ClockOutTime: timePtrToString(att.ClockOut),
		Status:       string(att.CurrentStatus()),
		Duration:     att.Duration,
		Latitude:     att.Latitude,
		Longitude:    att.Longitude,
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.Format(time.RFC3339),
	}
}
