package request

import (
	"time"
)

// Status of an approval-gated request. Pending is the only mutable state;
// Approved and Rejected are terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Kind distinguishes full-day requests, which short-circuit the whole day,
// from hourly ones, which only credit minutes.
type Kind string

const (
	KindFullDay Kind = "FULL_DAY"
	KindHourly  Kind = "HOURLY"
)

// LogType of a manual-log request.
type LogType string

const (
	LogTypeIn  LogType = "IN"
	LogTypeOut LogType = "OUT"
)

// LeaveRequest is an (employee, date)-unique leave. Hourly leaves carry the
// requested minute duration to subtract from required minutes.
type LeaveRequest struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	Kind             Kind
	RequestedMinutes int
	Reason           *string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName *string
}

// MissionRequest is an (employee, date)-unique work-away assignment. Hourly
// missions credit the span between StartTime and EndTime as worked minutes.
type MissionRequest struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Kind        Kind
	StartTime   *time.Time
	EndTime     *time.Time
	Destination *string
	Reason      *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

// OvertimeRequest gates overtime crediting for one (employee, date).
type OvertimeRequest struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	RequestedMinutes int
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName *string
}

// ManualLogRequest asks for a missing clock event to be recorded. Approval
// synthesizes a RawAttendanceLog at the requested date+time in the
// configured local timezone.
type ManualLogRequest struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Time       time.Time
	LogType    LogType
	Reason     *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
