package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrSessionConflict = errors.New("must clock out from previous session before clocking in again")

	// Clock-out errors
	ErrSessionNotFound      = errors.New("attendance session not found")
	ErrSessionAlreadyClosed = errors.New("session has already been clocked out")
	ErrNotSessionOwner      = errors.New("session belongs to another employee")

	// Repository sentinel: no open session exists for the employee
	ErrNoOpenSession = errors.New("no open attendance session")
)
