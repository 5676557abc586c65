package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance sessions.
type AttendanceRepository interface {
	// Create persists a new session. The store assigns the id and creation
	// timestamps. A partial unique index on (employee_id) for open rows makes
	// a second concurrent open session impossible; the violation surfaces as
	// ErrSessionConflict.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves a session, ErrSessionNotFound when absent.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetOpenSession retrieves the employee's open session,
	// ErrNoOpenSession when there is none.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	// Close writes clock-out time, cached duration and the derived status.
	// The store re-checks openness under a row lock; a session already
	// closed by a concurrent call surfaces as ErrSessionAlreadyClosed.
	Close(ctx context.Context, att Attendance) error

	// List retrieves sessions with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListForWindow bulk-fetches sessions whose clock-in falls inside
	// [start, end], optionally scoped to one employee. Feeds the aggregator.
	ListForWindow(ctx context.Context, start, end time.Time, employeeID *string) ([]Attendance, error)

	// ListOpen retrieves every currently open session (stale-session audit).
	ListOpen(ctx context.Context) ([]Attendance, error)
}
