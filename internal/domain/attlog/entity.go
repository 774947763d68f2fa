package attlog

import (
	"time"
)

// RawLog is one append-only clock event. Logs are keyed by the employee's
// stable code rather than the employee ID because hardware devices only know
// the code. Logs synthesized by an approved manual-log request are identical
// to device-sourced ones.
type RawLog struct {
	ID           string
	EmployeeCode string
	Timestamp    time.Time
	CreatedAt    time.Time
}
