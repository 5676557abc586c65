package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", value, err)
	}
	return parsed
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestAggregateWorkedTime(t *testing.T) {
	windowStart := mustParse(t, "2026-08-01T00:00:00Z")
	windowEnd := mustParse(t, "2026-08-31T23:59:59Z")
	now := mustParse(t, "2026-08-15T12:00:00Z")

	tests := []struct {
		name    string
		records []Attendance
		want    map[string]time.Duration
	}{
		{
			name:    "empty input yields empty totals",
			records: nil,
			want:    map[string]time.Duration{},
		},
		{
			name: "closed sessions sum per employee",
			records: []Attendance{
				{
					EmployeeID: "emp-1",
					ClockIn:    mustParse(t, "2026-08-03T09:00:00Z"),
					ClockOut:   timePtr(mustParse(t, "2026-08-03T17:00:00Z")),
				},
				{
					EmployeeID: "emp-1",
					ClockIn:    mustParse(t, "2026-08-04T09:00:00Z"),
					ClockOut:   timePtr(mustParse(t, "2026-08-04T13:30:00Z")),
				},
				{
					EmployeeID: "emp-2",
					ClockIn:    mustParse(t, "2026-08-03T10:00:00Z"),
					ClockOut:   timePtr(mustParse(t, "2026-08-03T12:00:00Z")),
				},
			},
			want: map[string]time.Duration{
				"emp-1": 12*time.Hour + 30*time.Minute,
				"emp-2": 2 * time.Hour,
			},
		},
		{
			name: "nine to five-thirty is eight and a half hours",
			records: []Attendance{
				{
					EmployeeID: "emp-1",
					ClockIn:    mustParse(t, "2026-08-05T09:00:00Z"),
					ClockOut:   timePtr(mustParse(t, "2026-08-05T17:30:00Z")),
				},
			},
			want: map[string]time.Duration{
				"emp-1": 8*time.Hour + 30*time.Minute,
			},
		},
		{
			name: "open session is clamped to now",
			records: []Attendance{
				{
					EmployeeID: "emp-1",
					ClockIn:    mustParse(t, "2026-08-15T09:00:00Z"),
				},
			},
			want: map[string]time.Duration{
				"emp-1": 3 * time.Hour,
			},
		},
		{
			name: "clock-in before window start is excluded entirely",
			records: []Attendance{
				{
					EmployeeID: "emp-1",
					ClockIn:    mustParse(t, "2026-07-31T22:00:00Z"),
					ClockOut:   timePtr(mustParse(t, "2026-08-01T06:00:00Z")),
				},
			},
			want: map[string]time.Duration{},
		},
		{
			name: "clock-in after window end is excluded",
			records: []Attendance{
				{
					EmployeeID: "emp-1",
					ClockIn:    mustParse(t, "2026-09-01T00:00:01Z"),
					ClockOut:   timePtr(mustParse(t, "2026-09-01T08:00:00Z")),
				},
			},
			want: map[string]time.Duration{},
		},
		{
			name: "clock-in exactly on window boundaries is included",
			records: []Attendance{
				{
					EmployeeID: "emp-1",
					ClockIn:    windowStart,
					ClockOut:   timePtr(windowStart.Add(time.Hour)),
				},
				{
					EmployeeID: "emp-1",
					ClockIn:    windowEnd,
					ClockOut:   timePtr(windowEnd.Add(time.Hour)),
				},
			},
			want: map[string]time.Duration{
				"emp-1": 2 * time.Hour,
			},
		},
		{
			name: "clock-out before clock-in contributes zero",
			records: []Attendance{
				{
					EmployeeID: "emp-1",
					ClockIn:    mustParse(t, "2026-08-10T12:00:00Z"),
					ClockOut:   timePtr(mustParse(t, "2026-08-10T09:00:00Z")),
				},
				{
					EmployeeID: "emp-1",
					ClockIn:    mustParse(t, "2026-08-11T09:00:00Z"),
					ClockOut:   timePtr(mustParse(t, "2026-08-11T10:00:00Z")),
				},
			},
			want: map[string]time.Duration{
				"emp-1": time.Hour,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateWorkedTime(tt.records, windowStart, windowEnd, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregateWorkedTimeIsPure(t *testing.T) {
	windowStart := mustParse(t, "2026-08-01T00:00:00Z")
	windowEnd := mustParse(t, "2026-08-31T23:59:59Z")
	now := mustParse(t, "2026-08-15T12:00:00Z")

	records := []Attendance{
		{
			EmployeeID: "emp-1",
			ClockIn:    mustParse(t, "2026-08-03T09:00:00Z"),
			ClockOut:   timePtr(mustParse(t, "2026-08-03T17:00:00Z")),
		},
	}

	first := AggregateWorkedTime(records, windowStart, windowEnd, now)
	second := AggregateWorkedTime(records, windowStart, windowEnd, now)
	assert.Equal(t, first, second)
	assert.Nil(t, records[0].Duration, "input records must not be mutated")
}

func TestAggregateWorkedTimeMilliseconds(t *testing.T) {
	windowStart := mustParse(t, "2026-08-05T00:00:00Z")
	windowEnd := mustParse(t, "2026-08-05T23:59:59Z")

	records := []Attendance{
		{
			EmployeeID: "emp-1",
			ClockIn:    mustParse(t, "2026-08-05T09:00:00Z"),
			ClockOut:   timePtr(mustParse(t, "2026-08-05T17:30:00Z")),
		},
	}

	totals := AggregateWorkedTime(records, windowStart, windowEnd, windowEnd)
	assert.Equal(t, int64(30600000), totals["emp-1"].Milliseconds())
}

func TestFormatWorked(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0h 0m"},
		{30 * time.Minute, "0h 30m"},
		{8*time.Hour + 30*time.Minute, "8h 30m"},
		{25 * time.Hour, "25h 0m"},
		{-time.Hour, "0h 0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWorked(tt.in))
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 minutes"},
		{time.Minute, "1 minute"},
		{15 * time.Minute, "15 minutes"},
		{time.Hour, "1 hour"},
		{2 * time.Hour, "2 hours"},
		{time.Hour + time.Minute, "1 hour 1 minute"},
		{2*time.Hour + 15*time.Minute, "2 hours 15 minutes"},
		{-5 * time.Minute, "0 minutes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.in))
	}
}

func TestCurrentStatus(t *testing.T) {
	open := Attendance{ClockIn: time.Now()}
	assert.True(t, open.Open())
	assert.Equal(t, StatusClockedIn, open.CurrentStatus())

	out := time.Now()
	closed := Attendance{ClockIn: out.Add(-time.Hour), ClockOut: &out}
	assert.False(t, closed.Open())
	assert.Equal(t, StatusClockedOut, closed.CurrentStatus())

	// A lying Status field never wins over ClockOut presence.
	lying := Attendance{ClockIn: out.Add(-time.Hour), ClockOut: &out, Status: StatusClockedIn}
	assert.Equal(t, StatusClockedOut, lying.CurrentStatus())
}
