package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/activity"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/shift"
)

type ActivityServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	holidayRepo  holiday.HolidayRepository
	logRepo      attlog.RawLogRepository
	leaveRepo    request.LeaveRequestRepository

	loc *time.Location
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	holidayRepo holiday.HolidayRepository,
	logRepo attlog.RawLogRepository,
	leaveRepo request.LeaveRequestRepository,
	loc *time.Location,
) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		holidayRepo:  holidayRepo,
		logRepo:      logRepo,
		leaveRepo:    leaveRepo,
		loc:          loc,
	}
}

// GetRange implements activity.Service. Each day in [from, to] is classified
// in precedence order: holiday, full-day leave, hourly leave, the shift's
// off-day rule, then presence of logs. The range is fetched in bulk and
// bucketed per day.
func (s *ActivityServiceImpl) GetRange(ctx context.Context, employeeID string, from, to time.Time) ([]activity.DayActivity, error) {
	from = s.truncateToDay(from)
	to = s.truncateToDay(to)
	if from.After(to) {
		return nil, activity.ErrInvalidRange
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.ShiftID == nil {
		return nil, activity.ErrNoShiftAssigned
	}

	rules, err := s.shiftRepo.ListDayRules(ctx, *emp.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list day rules: %w", err)
	}
	ruleByWeekday := make(map[time.Weekday]shift.DayRule, len(rules))
	for _, r := range rules {
		ruleByWeekday[r.DayOfWeek] = r
	}

	holidays, err := s.holidayRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidayByDay := make(map[string]holiday.Holiday, len(holidays))
	for _, h := range holidays {
		holidayByDay[dayKey(h.Date)] = h
	}

	leaves, err := s.leaveRepo.ListApprovedRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	leaveByDay := make(map[string]request.LeaveRequest, len(leaves))
	for _, l := range leaves {
		leaveByDay[dayKey(l.Date)] = l
	}

	logs, err := s.logRepo.ListRange(ctx, emp.EmployeeCode, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list raw logs: %w", err)
	}
	logsByDay := make(map[string][]string)
	for _, l := range logs {
		key := dayKey(l.Timestamp.In(s.loc))
		logsByDay[key] = append(logsByDay[key], l.Timestamp.In(s.loc).Format("15:04"))
	}

	var out []activity.DayActivity
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := dayKey(day)
		entry := activity.DayActivity{
			Date: key,
			Logs: logsByDay[key],
		}

		switch {
		case hasHoliday(holidayByDay, key):
			entry.Status = activity.StatusHoliday
			entry.StatusInfo = holidayByDay[key].Name
		case hasLeave(leaveByDay, key, request.KindFullDay):
			entry.Status = activity.StatusLeaveFull
			entry.StatusInfo = leaveInfo(leaveByDay[key])
		case hasLeave(leaveByDay, key, request.KindHourly):
			entry.Status = activity.StatusLeaveHourly
			entry.StatusInfo = leaveInfo(leaveByDay[key])
		case isOffDay(ruleByWeekday, day.Weekday()):
			entry.Status = activity.StatusWeekendOff
		case len(entry.Logs) > 0:
			entry.Status = activity.StatusPresent
		default:
			entry.Status = activity.StatusAbsent
		}

		out = append(out, entry)
	}
	return out, nil
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func hasHoliday(m map[string]holiday.Holiday, key string) bool {
	_, ok := m[key]
	return ok
}

func hasLeave(m map[string]request.LeaveRequest, key string, kind request.Kind) bool {
	l, ok := m[key]
	return ok && l.Kind == kind
}

func leaveInfo(l request.LeaveRequest) string {
	if l.Reason != nil {
		return *l.Reason
	}
	return ""
}

// isOffDay treats a missing weekday rule as an off day: the activity view is
// informational and must not fail the whole range over one unconfigured day.
func isOffDay(rules map[time.Weekday]shift.DayRule, wd time.Weekday) bool {
	rule, ok := rules[wd]
	return !ok || !rule.IsWorkDay
}

// truncateToDay anchors the calendar date named by t at local midnight.
// Dates parsed from HTTP arrive as midnight UTC; converting that instant
// into a zone west of UTC would shift it onto the previous day.
func (s *ActivityServiceImpl) truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}
