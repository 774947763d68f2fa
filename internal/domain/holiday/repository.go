package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// GetByDate retrieves the holiday on an exact date, nil when none
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)

	// ListRange retrieves holidays within [from, to] inclusive
	ListRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
