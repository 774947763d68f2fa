package attlog

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type LogServiceImpl struct {
	logRepo      attlog.RawLogRepository
	employeeRepo employee.EmployeeRepository
}

func NewService(logRepo attlog.RawLogRepository, employeeRepo employee.EmployeeRepository) *LogServiceImpl {
	return &LogServiceImpl{
		logRepo:      logRepo,
		employeeRepo: employeeRepo,
	}
}

// Ingest implements attlog.Service.
func (s *LogServiceImpl) Ingest(ctx context.Context, req attlog.CreateLogRequest) (attlog.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attlog.LogResponse{}, err
	}

	if _, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode); err != nil {
		return attlog.LogResponse{}, err
	}

	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return attlog.LogResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	created, err := s.logRepo.Create(ctx, attlog.RawLog{
		ID:           uuid.NewString(),
		EmployeeCode: req.EmployeeCode,
		Timestamp:    ts,
	})
	if err != nil {
		return attlog.LogResponse{}, fmt.Errorf("failed to store raw log: %w", err)
	}
	return attlog.NewLogResponse(created), nil
}
