package attlog

import (
	"context"
	"time"
)

type RawLogRepository interface {
	// Create appends a raw clock event
	Create(ctx context.Context, log RawLog) (RawLog, error)

	// ListForDay retrieves all logs for an employee code within
	// [dayStart, dayEnd), ordered ascending by timestamp
	ListForDay(ctx context.Context, employeeCode string, dayStart, dayEnd time.Time) ([]RawLog, error)

	// ListRange retrieves all logs for an employee code within [from, to),
	// ordered ascending by timestamp
	ListRange(ctx context.Context, employeeCode string, from, to time.Time) ([]RawLog, error)
}
