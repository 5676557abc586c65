package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/risingsuncomputers/backoffice-backend-go/internal/config"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/attendance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// fakeAttendanceService returns canned results so router tests cover only
// wiring, auth and error mapping.
type fakeAttendanceService struct {
	clockInResult attendance.AttendanceResponse
	clockInErr    error
	listResult    attendance.ListAttendanceResponse
	listErr       error
}

func (f *fakeAttendanceService) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return f.clockInResult, f.clockInErr
}

func (f *fakeAttendanceService) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, attendance.ErrSessionAlreadyClosed
}

func (f *fakeAttendanceService) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return f.listResult, f.listErr
}

func (f *fakeAttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return f.listResult, f.listErr
}

func (f *fakeAttendanceService) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, attendance.ErrSessionNotFound
}

func (f *fakeAttendanceService) HoursToday(ctx context.Context) (attendance.HoursTodayResponse, error) {
	return attendance.HoursTodayResponse{EmployeeID: "emp-1", Worked: "0h 0m"}, nil
}

func testRouter(t *testing.T, svc attendance.AttendanceService) (jwt.Service, http.Handler) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.AllowedOrigins = []string{"http://localhost:3000"}

	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	router := NewRouter(
		cfg,
		jwtService,
		NewAttendanceHandler(svc),
		NewAdvanceHandler(nil),
		NewReportHandler(nil),
	)
	return jwtService, router
}

func bearerToken(t *testing.T, jwtService jwt.Service, userID string, isAdmin bool) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(userID, "Test User", isAdmin)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope
}

func TestClockInRequiresToken(t *testing.T) {
	_, router := testRouter(t, &fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClockInSuccess(t *testing.T) {
	svc := &fakeAttendanceService{
		clockInResult: attendance.AttendanceResponse{
			ID:          "att-1",
			EmployeeID:  "emp-1",
			Status:      string(attendance.StatusClockedIn),
			ClockInTime: "2026-08-29T09:00:00Z",
		},
	}
	jwtService, router := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", bytes.NewBufferString(`{"latitude":12.97,"longitude":77.59}`))
	req.Header.Set("Authorization", bearerToken(t, jwtService, "emp-1", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.Equal(t, true, envelope["success"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "att-1", data["id"])
	assert.Equal(t, "clocked-in", data["status"])
}

func TestClockInConflictMapsTo409(t *testing.T) {
	svc := &fakeAttendanceService{clockInErr: attendance.ErrSessionConflict}
	jwtService, router := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", bearerToken(t, jwtService, "emp-1", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.Equal(t, false, envelope["success"])
}

func TestClockOutAlreadyClosedMapsTo409(t *testing.T) {
	jwtService, router := testRouter(t, &fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-out", bytes.NewBufferString(`{"record_id":"att-1"}`))
	req.Header.Set("Authorization", bearerToken(t, jwtService, "emp-1", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestClockInBadJSON(t *testing.T) {
	jwtService, router := testRouter(t, &fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/clock-in", bytes.NewBufferString(`{not json`))
	req.Header.Set("Authorization", bearerToken(t, jwtService, "emp-1", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminListRejectsNonAdmin(t *testing.T) {
	jwtService, router := testRouter(t, &fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "emp-1", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminListAllowsAdmin(t *testing.T) {
	svc := &fakeAttendanceService{
		listResult: attendance.ListAttendanceResponse{
			TotalCount: 1,
			Page:       1,
			Limit:      20,
			TotalPages: 1,
			Attendances: []attendance.AttendanceResponse{
				{ID: "att-1", EmployeeID: "emp-1"},
			},
		},
	}
	jwtService, router := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "admin-1", true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)

	meta, ok := envelope["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), meta["total_items"])
}

func TestGetUnknownAttendanceMapsTo404(t *testing.T) {
	jwtService, router := testRouter(t, &fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/att-missing", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "admin-1", true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHoursToday(t *testing.T) {
	jwtService, router := testRouter(t, &fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/hours-today", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "emp-1", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "emp-1", data["employee_id"])
}
