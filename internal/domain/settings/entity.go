package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// GlobalSettings is the company-wide policy singleton. It is loaded once at
// the start of a reconciliation run and passed into every component that
// needs it; its absence aborts the entire run.
type GlobalSettings struct {
	ID                 string
	GracePeriodMinutes int
	PenaltyRate        decimal.Decimal
	UpdatedAt          time.Time
}
