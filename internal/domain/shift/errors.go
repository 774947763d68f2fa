package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")

	// ErrNoDayRule marks a configuration fault: a shift in use has no rule
	// defined for the weekday being processed. Non-fatal to a batch run; the
	// affected employee is skipped.
	ErrNoDayRule = errors.New("no day rule defined for this weekday")
)
