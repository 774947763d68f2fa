package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
)

// hourlyLeaveMinutes returns the minute credit of an approved hourly leave
// for the date, to be subtracted from required minutes. Zero when none.
func (s *Service) hourlyLeaveMinutes(ctx context.Context, employeeID string, date time.Time) (int, error) {
	leave, err := s.leaveRepo.GetApproved(ctx, employeeID, date, request.KindHourly)
	if err != nil {
		return 0, fmt.Errorf("failed to look up hourly leave: %w", err)
	}
	if leave == nil {
		return 0, nil
	}
	return leave.RequestedMinutes, nil
}

// hourlyMissionMinutes returns the span of an approved hourly mission,
// credited as worked minutes as if the employee were physically present.
// A mission missing either endpoint credits nothing.
func (s *Service) hourlyMissionMinutes(ctx context.Context, employeeID string, date time.Time) (int, error) {
	mission, err := s.missionRepo.GetApproved(ctx, employeeID, date, request.KindHourly)
	if err != nil {
		return 0, fmt.Errorf("failed to look up hourly mission: %w", err)
	}
	if mission == nil || mission.StartTime == nil || mission.EndTime == nil {
		return 0, nil
	}

	start := mission.StartTime.Hour()*60 + mission.StartTime.Minute()
	end := mission.EndTime.Hour()*60 + mission.EndTime.Minute()
	if end <= start {
		return 0, nil
	}
	return end - start, nil
}
