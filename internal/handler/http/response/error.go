package response

import (
	"errors"
	"net/http"

	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/advance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/attendance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/auth"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/employee"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSessionConflict):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrSessionAlreadyClosed):
		Conflict(w, "Session already clocked out")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotSessionOwner):
		Forbidden(w, "You can only clock out from your own session")
	case errors.Is(err, attendance.ErrNoOpenSession):
		NotFound(w, "No open session to clock out from")

	// Salary advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Salary advance not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
