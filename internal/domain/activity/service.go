package activity

import (
	"context"
	"time"
)

// Service builds the per-employee day-status calendar shown to employees:
// one entry per date in the range, classified by holiday, approved leave,
// the shift's weekday rule and the presence of raw logs, in that order.
type Service interface {
	GetRange(ctx context.Context, employeeID string, from, to time.Time) ([]DayActivity, error)
}
