package attendance

import (
	"time"
)

type Status string

const (
	StatusClockedIn  Status = "clocked-in"
	StatusClockedOut Status = "clocked-out"
)

// Attendance is one clock-in-to-clock-out session for an employee.
// EmployeeName is a snapshot taken at clock-in, not re-synced if the
// employee is later renamed. Status is stored redundantly for query
// efficiency; it must always be written from the presence of ClockOut
// (see CurrentStatus) so the two columns can never disagree.
type Attendance struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	ClockIn      time.Time
	ClockOut     *time.Time
	Status       Status
	Duration     *string
	Latitude     *float64
	Longitude    *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Open reports whether the session has not been clocked out yet.
func (a *Attendance) Open() bool {
	return a.ClockOut == nil
}

// CurrentStatus derives the status from ClockOut presence. Repositories
// persist this value rather than trusting the raw Status field.
func (a *Attendance) CurrentStatus() Status {
	if a.ClockOut == nil {
		return StatusClockedIn
	}
	return StatusClockedOut
}
