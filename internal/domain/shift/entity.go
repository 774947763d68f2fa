package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is a named weekly attendance template. It owns exactly one DayRule
// per weekday; a missing rule for a weekday in use is a configuration fault.
type Shift struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayRule is the work/off designation and expected hours for one weekday of
// a shift. StartTime and EndTime carry only the time-of-day component.
//
// GracePeriodMinutes and PenaltyRate are optional per-rule overrides; when
// nil the global settings values apply. Which granularity wins is decided by
// the policy source configured on the reconciliation engine.
type DayRule struct {
	ID                  string
	ShiftID             string
	DayOfWeek           time.Weekday
	IsWorkDay           bool
	StartTime           time.Time
	EndTime             time.Time
	RequiredWorkMinutes int
	GracePeriodMinutes  *int
	PenaltyRate         *decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// StartMinuteOfDay returns the shift start as minutes since midnight.
func (r DayRule) StartMinuteOfDay() int {
	return r.StartTime.Hour()*60 + r.StartTime.Minute()
}

// EndMinuteOfDay returns the shift end as minutes since midnight.
func (r DayRule) EndMinuteOfDay() int {
	return r.EndTime.Hour()*60 + r.EndTime.Minute()
}
