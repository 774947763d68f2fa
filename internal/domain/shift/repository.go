package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetDayRule retrieves the rule for (shift, weekday).
	// Returns ErrNoDayRule when the shift has no rule for that weekday.
	GetDayRule(ctx context.Context, shiftID string, day time.Weekday) (DayRule, error)

	// ListDayRules retrieves all rules of a shift ordered by weekday
	ListDayRules(ctx context.Context, shiftID string) ([]DayRule, error)
}
