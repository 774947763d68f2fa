package request

import (
	"context"
	"time"
)

// The engine only ever reads approved state; mutation happens through the
// review workflow. UpdateStatus implementations must only transition rows
// that are still Pending and report ErrRequestAlreadyProcessed otherwise.

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetApproved retrieves the approved leave of the given kind for
	// (employee, date), nil when none
	GetApproved(ctx context.Context, employeeID string, date time.Time, kind Kind) (*LeaveRequest, error)

	// ListApprovedRange retrieves approved leaves within [from, to] inclusive
	ListApprovedRange(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)

	ListPending(ctx context.Context) ([]LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type MissionRequestRepository interface {
	Create(ctx context.Context, req MissionRequest) (MissionRequest, error)
	GetByID(ctx context.Context, id string) (MissionRequest, error)

	// GetApproved retrieves the approved mission of the given kind for
	// (employee, date), nil when none
	GetApproved(ctx context.Context, employeeID string, date time.Time, kind Kind) (*MissionRequest, error)

	ListPending(ctx context.Context) ([]MissionRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]MissionRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type OvertimeRequestRepository interface {
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)

	// HasApproved reports whether an approved overtime request exists for
	// (employee, date)
	HasApproved(ctx context.Context, employeeID string, date time.Time) (bool, error)

	ListPending(ctx context.Context) ([]OvertimeRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]OvertimeRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type ManualLogRequestRepository interface {
	Create(ctx context.Context, req ManualLogRequest) (ManualLogRequest, error)
	GetByID(ctx context.Context, id string) (ManualLogRequest, error)
	ListPending(ctx context.Context) ([]ManualLogRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
