package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// Upsert writes the report keyed by (employee_id, date). Re-running the
	// engine overwrites the existing row; the uniqueness constraint is the
	// only concurrency guard (last writer wins).
	Upsert(ctx context.Context, rep DailyReport) (DailyReport, error)

	// GetByEmployeeAndDate retrieves one report, nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyReport, error)

	// ListByDate retrieves all reports for a date ordered by employee name
	ListByDate(ctx context.Context, date time.Time) ([]DailyReport, error)
}
