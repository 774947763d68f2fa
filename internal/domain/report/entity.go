package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is the engine's single write target, unique per
// (employee, date). Penalty and required minutes carry decimal precision
// because the penalty rate is a decimal multiplier; the remaining counters
// are whole minutes.
type DailyReport struct {
	ID                   string
	EmployeeID           string
	Date                 time.Time
	FirstCheckIn         *time.Time
	LastCheckOut         *time.Time
	TotalLatenessMinutes int
	PenaltyMinutes       decimal.Decimal
	RequiredWorkMinutes  decimal.Decimal
	TotalWorkedMinutes   int
	WorkShortfallMinutes int
	WorkOvertimeMinutes  int
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// DTO
	EmployeeName *string
}
