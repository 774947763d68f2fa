package request

import "errors"

var (
	ErrRequestNotFound         = errors.New("request not found")
	ErrRequestAlreadyProcessed = errors.New("request has already been approved or rejected")
	ErrDuplicateRequest        = errors.New("a request of this kind already exists for this date")
	ErrInvalidReviewAction     = errors.New("review action must be APPROVE or REJECT")
)
