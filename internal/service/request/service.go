package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockday-hr/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestServiceImpl struct {
	leaveRepo     request.LeaveRequestRepository
	missionRepo   request.MissionRequestRepository
	overtimeRepo  request.OvertimeRequestRepository
	manualLogRepo request.ManualLogRequestRepository
	logRepo       attlog.RawLogRepository
	employeeRepo  employee.EmployeeRepository

	loc *time.Location

	// runInTx wraps manual-log approval so the status flip and the
	// synthesized raw log commit or roll back together.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(
	db *database.DB,
	leaveRepo request.LeaveRequestRepository,
	missionRepo request.MissionRequestRepository,
	overtimeRepo request.OvertimeRequestRepository,
	manualLogRepo request.ManualLogRequestRepository,
	logRepo attlog.RawLogRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) *RequestServiceImpl {
	return &RequestServiceImpl{
		leaveRepo:     leaveRepo,
		missionRepo:   missionRepo,
		overtimeRepo:  overtimeRepo,
		manualLogRepo: manualLogRepo,
		logRepo:       logRepo,
		employeeRepo:  employeeRepo,
		loc:           loc,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(postgresql.TxContext(ctx, tx))
			})
		},
	}
}

// SubmitLeave implements request.Service.
func (s *RequestServiceImpl) SubmitLeave(ctx context.Context, req request.SubmitLeaveRequest) (request.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return request.LeaveResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return request.LeaveResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, s.loc)
	minutes := req.RequestedMinutes
	if req.Kind == request.KindFullDay {
		minutes = 0
	}

	created, err := s.leaveRepo.Create(ctx, request.LeaveRequest{
		ID:               uuid.NewString(),
		EmployeeID:       req.EmployeeID,
		Date:             date,
		Kind:             req.Kind,
		RequestedMinutes: minutes,
		Reason:           req.Reason,
		Status:           request.StatusPending,
	})
	if err != nil {
		return request.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return request.NewLeaveResponse(created), nil
}

// SubmitMission implements request.Service.
func (s *RequestServiceImpl) SubmitMission(ctx context.Context, req request.SubmitMissionRequest) (request.MissionResponse, error) {
	if err := req.Validate(); err != nil {
		return request.MissionResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return request.MissionResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, s.loc)

	var start, end *time.Time
	if req.Kind == request.KindHourly {
		st := s.timeOfDay(*req.StartTime)
		en := s.timeOfDay(*req.EndTime)
		start, end = &st, &en
	}

	created, err := s.missionRepo.Create(ctx, request.MissionRequest{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Kind:        req.Kind,
		StartTime:   start,
		EndTime:     end,
		Destination: req.Destination,
		Reason:      req.Reason,
		Status:      request.StatusPending,
	})
	if err != nil {
		return request.MissionResponse{}, fmt.Errorf("failed to create mission request: %w", err)
	}
	return request.NewMissionResponse(created), nil
}

// SubmitOvertime implements request.Service.
func (s *RequestServiceImpl) SubmitOvertime(ctx context.Context, req request.SubmitOvertimeRequest) (request.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return request.OvertimeResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return request.OvertimeResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, s.loc)

	created, err := s.overtimeRepo.Create(ctx, request.OvertimeRequest{
		ID:               uuid.NewString(),
		EmployeeID:       req.EmployeeID,
		Date:             date,
		RequestedMinutes: req.RequestedMinutes,
		Status:           request.StatusPending,
	})
	if err != nil {
		return request.OvertimeResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}
	return request.NewOvertimeResponse(created), nil
}

// SubmitManualLog implements request.Service.
func (s *RequestServiceImpl) SubmitManualLog(ctx context.Context, req request.SubmitManualLogRequest) (request.ManualLogResponse, error) {
	if err := req.Validate(); err != nil {
		return request.ManualLogResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return request.ManualLogResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, s.loc)

	created, err := s.manualLogRepo.Create(ctx, request.ManualLogRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Time:       s.timeOfDay(req.Time),
		LogType:    req.LogType,
		Reason:     req.Reason,
		Status:     request.StatusPending,
	})
	if err != nil {
		return request.ManualLogResponse{}, fmt.Errorf("failed to create manual log request: %w", err)
	}
	return request.NewManualLogResponse(created), nil
}

// ListPendingLeave implements request.Service.
func (s *RequestServiceImpl) ListPendingLeave(ctx context.Context) ([]request.LeaveResponse, error) {
	items, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	out := make([]request.LeaveResponse, 0, len(items))
	for _, item := range items {
		out = append(out, request.NewLeaveResponse(item))
	}
	return out, nil
}

// ListPendingMissions implements request.Service.
func (s *RequestServiceImpl) ListPendingMissions(ctx context.Context) ([]request.MissionResponse, error) {
	items, err := s.missionRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mission requests: %w", err)
	}
	out := make([]request.MissionResponse, 0, len(items))
	for _, item := range items {
		out = append(out, request.NewMissionResponse(item))
	}
	return out, nil
}

// ListPendingOvertime implements request.Service.
func (s *RequestServiceImpl) ListPendingOvertime(ctx context.Context) ([]request.OvertimeResponse, error) {
	items, err := s.overtimeRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending overtime requests: %w", err)
	}
	out := make([]request.OvertimeResponse, 0, len(items))
	for _, item := range items {
		out = append(out, request.NewOvertimeResponse(item))
	}
	return out, nil
}

// ListPendingManualLogs implements request.Service.
func (s *RequestServiceImpl) ListPendingManualLogs(ctx context.Context) ([]request.ManualLogResponse, error) {
	items, err := s.manualLogRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending manual log requests: %w", err)
	}
	out := make([]request.ManualLogResponse, 0, len(items))
	for _, item := range items {
		out = append(out, request.NewManualLogResponse(item))
	}
	return out, nil
}

// ReviewLeave implements request.Service.
func (s *RequestServiceImpl) ReviewLeave(ctx context.Context, req request.ReviewRequest) (request.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return request.LeaveResponse{}, err
	}
	if err := s.leaveRepo.UpdateStatus(ctx, req.ID, statusFor(req.Action)); err != nil {
		return request.LeaveResponse{}, err
	}
	updated, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return request.LeaveResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}
	return request.NewLeaveResponse(updated), nil
}

// ReviewMission implements request.Service.
func (s *RequestServiceImpl) ReviewMission(ctx context.Context, req request.ReviewRequest) (request.MissionResponse, error) {
	if err := req.Validate(); err != nil {
		return request.MissionResponse{}, err
	}
	if err := s.missionRepo.UpdateStatus(ctx, req.ID, statusFor(req.Action)); err != nil {
		return request.MissionResponse{}, err
	}
	updated, err := s.missionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return request.MissionResponse{}, fmt.Errorf("failed to reload mission request: %w", err)
	}
	return request.NewMissionResponse(updated), nil
}

// ReviewOvertime implements request.Service.
func (s *RequestServiceImpl) ReviewOvertime(ctx context.Context, req request.ReviewRequest) (request.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return request.OvertimeResponse{}, err
	}
	if err := s.overtimeRepo.UpdateStatus(ctx, req.ID, statusFor(req.Action)); err != nil {
		return request.OvertimeResponse{}, err
	}
	updated, err := s.overtimeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return request.OvertimeResponse{}, fmt.Errorf("failed to reload overtime request: %w", err)
	}
	return request.NewOvertimeResponse(updated), nil
}

// ReviewManualLog implements request.Service. Approval flips the status and
// synthesizes a raw attendance log at the requested date+time in the local
// timezone, in one transaction. The synthesized log is indistinguishable
// from a device log.
func (s *RequestServiceImpl) ReviewManualLog(ctx context.Context, req request.ReviewRequest) (request.ManualLogResponse, error) {
	if err := req.Validate(); err != nil {
		return request.ManualLogResponse{}, err
	}

	pending, err := s.manualLogRepo.GetByID(ctx, req.ID)
	if err != nil {
		return request.ManualLogResponse{}, err
	}

	if req.Action == request.ActionReject {
		if err := s.manualLogRepo.UpdateStatus(ctx, req.ID, request.StatusRejected); err != nil {
			return request.ManualLogResponse{}, err
		}
		pending.Status = request.StatusRejected
		return request.NewManualLogResponse(pending), nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, pending.EmployeeID)
	if err != nil {
		return request.ManualLogResponse{}, fmt.Errorf("failed to get employee for manual log: %w", err)
	}

	err = s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.manualLogRepo.UpdateStatus(txCtx, req.ID, request.StatusApproved); err != nil {
			return err
		}
		_, err := s.logRepo.Create(txCtx, attlog.RawLog{
			ID:           uuid.NewString(),
			EmployeeCode: emp.EmployeeCode,
			Timestamp:    s.combine(pending.Date, pending.Time),
		})
		if err != nil {
			return fmt.Errorf("failed to synthesize raw log: %w", err)
		}
		return nil
	})
	if err != nil {
		return request.ManualLogResponse{}, err
	}

	slog.Info("Manual log approved, raw log synthesized",
		"request_id", pending.ID,
		"employee_code", emp.EmployeeCode,
		"date", pending.Date.Format("2006-01-02"),
		"time", pending.Time.Format("15:04"))

	pending.Status = request.StatusApproved
	return request.NewManualLogResponse(pending), nil
}

func statusFor(action request.ReviewAction) request.Status {
	if action == request.ActionApprove {
		return request.StatusApproved
	}
	return request.StatusRejected
}

// timeOfDay parses an HH:MM (or HH:MM:SS) clock value. Inputs reach here
// already validated.
func (s *RequestServiceImpl) timeOfDay(v string) time.Time {
	t, err := time.Parse("15:04:05", v)
	if err != nil {
		t, _ = time.Parse("15:04", v)
	}
	return t
}

// combine anchors a clock value on a calendar date in the local timezone.
func (s *RequestServiceImpl) combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, s.loc)
}
