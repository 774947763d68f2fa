package activity

import "errors"

var (
	ErrNoShiftAssigned = errors.New("employee is not assigned to a shift")
	ErrInvalidRange    = errors.New("start_date must not be after end_date")
)
