package holiday

import (
	"time"
)

// Holiday is a global calendar entry applying to all employees.
// Date granularity is date-only; exactly one holiday may exist per date.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}
