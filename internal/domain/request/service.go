package request

import (
	"context"
)

// Service is the request workflow: submission creates Pending rows, review
// moves them to a terminal state. Approving a manual-log request also
// synthesizes a raw attendance log.
type Service interface {
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)
	SubmitMission(ctx context.Context, req SubmitMissionRequest) (MissionResponse, error)
	SubmitOvertime(ctx context.Context, req SubmitOvertimeRequest) (OvertimeResponse, error)
	SubmitManualLog(ctx context.Context, req SubmitManualLogRequest) (ManualLogResponse, error)

	ListPendingLeave(ctx context.Context) ([]LeaveResponse, error)
	ListPendingMissions(ctx context.Context) ([]MissionResponse, error)
	ListPendingOvertime(ctx context.Context) ([]OvertimeResponse, error)
	ListPendingManualLogs(ctx context.Context) ([]ManualLogResponse, error)

	ReviewLeave(ctx context.Context, req ReviewRequest) (LeaveResponse, error)
	ReviewMission(ctx context.Context, req ReviewRequest) (MissionResponse, error)
	ReviewOvertime(ctx context.Context, req ReviewRequest) (OvertimeResponse, error)
	ReviewManualLog(ctx context.Context, req ReviewRequest) (ManualLogResponse, error)
}
