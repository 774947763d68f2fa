package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/report"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/request"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// Service is the daily attendance reconciliation engine. One Run derives,
// for every employee with an assigned shift, a single authoritative
// DailyReport for the target date from raw clock events and policy facts.
// Runs are idempotent: re-running with unchanged inputs upserts identical
// rows, and with changed inputs overwrites rather than duplicates.
type Service struct {
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	holidayRepo  holiday.HolidayRepository
	logRepo      attlog.RawLogRepository
	leaveRepo    request.LeaveRequestRepository
	missionRepo  request.MissionRequestRepository
	overtimeRepo request.OvertimeRequestRepository
	reportRepo   report.ReportRepository
	settingsRepo settings.SettingsRepository

	loc         *time.Location
	policyScope string
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	holidayRepo holiday.HolidayRepository,
	logRepo attlog.RawLogRepository,
	leaveRepo request.LeaveRequestRepository,
	missionRepo request.MissionRequestRepository,
	overtimeRepo request.OvertimeRequestRepository,
	reportRepo report.ReportRepository,
	settingsRepo settings.SettingsRepository,
	loc *time.Location,
	policyScope string,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		holidayRepo:  holidayRepo,
		logRepo:      logRepo,
		leaveRepo:    leaveRepo,
		missionRepo:  missionRepo,
		overtimeRepo: overtimeRepo,
		reportRepo:   reportRepo,
		settingsRepo: settingsRepo,
		loc:          loc,
		policyScope:  policyScope,
	}
}

// Fault records a per-employee failure that did not stop the run.
type Fault struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Reason       string `json:"reason"`
}

// RunSummary is the outcome of one reconciliation pass.
type RunSummary struct {
	Date      string  `json:"date"`
	Processed int     `json:"processed"`
	Written   int     `json:"written"`
	Skipped   int     `json:"skipped"`
	Faults    []Fault `json:"faults,omitempty"`
}

// Run reconciles every employee with an assigned shift for the given date.
// The argument names a calendar day; its time-of-day and zone carry no
// meaning, the day is anchored in the engine's configured timezone. Missing
// global settings abort the whole run before any employee is touched; every
// other fault is isolated to its employee.
func (s *Service) Run(ctx context.Context, date time.Time) (RunSummary, error) {
	day := s.truncateToDay(date)
	summary := RunSummary{Date: day.Format("2006-01-02")}

	gs, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return summary, fmt.Errorf("aborting run, global settings unavailable: %w", err)
	}
	policy := policySourceFor(s.policyScope, gs)

	employees, err := s.employeeRepo.ListWithShift(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list employees: %w", err)
	}

	slog.Info("Reconciliation run starting",
		"date", summary.Date,
		"employees", len(employees),
		"policy_scope", s.policyScope)

	for _, emp := range employees {
		wrote, err := s.processEmployee(ctx, emp, day, policy)
		if err != nil {
			if errors.Is(err, shift.ErrNoDayRule) {
				slog.Error("Reconciliation: no day rule for employee's shift, skipping",
					"employee_id", emp.ID,
					"employee_code", emp.EmployeeCode,
					"weekday", day.Weekday().String())
			} else {
				slog.Error("Reconciliation: employee failed",
					"employee_id", emp.ID,
					"employee_code", emp.EmployeeCode,
					"error", err)
			}
			summary.Skipped++
			summary.Faults = append(summary.Faults, Fault{
				EmployeeID:   emp.ID,
				EmployeeCode: emp.EmployeeCode,
				Reason:       err.Error(),
			})
			continue
		}

		summary.Processed++
		if wrote {
			summary.Written++
		}
	}

	slog.Info("Reconciliation run finished",
		"date", summary.Date,
		"processed", summary.Processed,
		"written", summary.Written,
		"skipped", summary.Skipped)
	return summary, nil
}

// processEmployee reconciles one employee. Returns whether a report row was
// written; unworked off-days deliberately leave no record.
func (s *Service) processEmployee(ctx context.Context, emp employee.Employee, day time.Time, policy PolicySource) (bool, error) {
	class, rule, err := s.classify(ctx, emp, day)
	if err != nil {
		return false, err
	}

	if class == ClassHoliday || class == ClassScheduledOff {
		return s.processOffDay(ctx, emp, day)
	}
	return s.processWorkday(ctx, emp, day, rule, policy)
}

// processOffDay handles holidays and scheduled days off. Presence is
// credited by the span between the first and last log, required minutes are
// forced to zero, and the whole span becomes overtime when an approved
// overtime request exists. Without logs nothing is written.
func (s *Service) processOffDay(ctx context.Context, emp employee.Employee, day time.Time) (bool, error) {
	logs, err := s.logsForDay(ctx, emp.EmployeeCode, day)
	if err != nil {
		return false, err
	}
	if len(logs) == 0 {
		return false, nil
	}

	first := logs[0].Timestamp
	last := logs[len(logs)-1].Timestamp
	worked := spanMinutes(logs)

	overtime := 0
	approved, err := s.overtimeRepo.HasApproved(ctx, emp.ID, day)
	if err != nil {
		return false, fmt.Errorf("failed to look up overtime approval: %w", err)
	}
	if approved {
		overtime = worked
	}

	rep := report.DailyReport{
		EmployeeID:          emp.ID,
		Date:                day,
		FirstCheckIn:        &first,
		LastCheckOut:        &last,
		PenaltyMinutes:      decimal.Zero,
		RequiredWorkMinutes: decimal.Zero,
		TotalWorkedMinutes:  worked,
		WorkOvertimeMinutes: overtime,
	}
	if _, err := s.reportRepo.Upsert(ctx, rep); err != nil {
		return false, fmt.Errorf("failed to upsert off-day report: %w", err)
	}
	return true, nil
}

// processWorkday runs the full calculation chain: full-day exceptions,
// presence pairing, hourly credits, lateness/penalty and the balance split.
func (s *Service) processWorkday(ctx context.Context, emp employee.Employee, day time.Time, rule shift.DayRule, policy PolicySource) (bool, error) {
	// Full-day leave wins over everything else on a workday.
	leave, err := s.leaveRepo.GetApproved(ctx, emp.ID, day, request.KindFullDay)
	if err != nil {
		return false, fmt.Errorf("failed to look up full-day leave: %w", err)
	}
	if leave != nil {
		rep := report.DailyReport{
			EmployeeID:          emp.ID,
			Date:                day,
			PenaltyMinutes:      decimal.Zero,
			RequiredWorkMinutes: decimal.Zero,
		}
		if _, err := s.reportRepo.Upsert(ctx, rep); err != nil {
			return false, fmt.Errorf("failed to upsert leave-day report: %w", err)
		}
		return true, nil
	}

	// A full-day mission counts the day as fully worked.
	mission, err := s.missionRepo.GetApproved(ctx, emp.ID, day, request.KindFullDay)
	if err != nil {
		return false, fmt.Errorf("failed to look up full-day mission: %w", err)
	}
	if mission != nil {
		rep := report.DailyReport{
			EmployeeID:          emp.ID,
			Date:                day,
			PenaltyMinutes:      decimal.Zero,
			RequiredWorkMinutes: decimal.NewFromInt(int64(rule.RequiredWorkMinutes)),
			TotalWorkedMinutes:  rule.RequiredWorkMinutes,
		}
		if _, err := s.reportRepo.Upsert(ctx, rep); err != nil {
			return false, fmt.Errorf("failed to upsert mission-day report: %w", err)
		}
		return true, nil
	}

	logs, err := s.logsForDay(ctx, emp.EmployeeCode, day)
	if err != nil {
		return false, err
	}
	if len(logs) == 0 {
		// Absence: no logs on a workday is an outcome, not an error.
		rep := report.DailyReport{
			EmployeeID:           emp.ID,
			Date:                 day,
			PenaltyMinutes:       decimal.Zero,
			RequiredWorkMinutes:  decimal.NewFromInt(int64(rule.RequiredWorkMinutes)),
			WorkShortfallMinutes: rule.RequiredWorkMinutes,
		}
		if _, err := s.reportRepo.Upsert(ctx, rep); err != nil {
			return false, fmt.Errorf("failed to upsert absence report: %w", err)
		}
		return true, nil
	}

	first := logs[0].Timestamp
	last := logs[len(logs)-1].Timestamp

	missionCredit, err := s.hourlyMissionMinutes(ctx, emp.ID, day)
	if err != nil {
		return false, err
	}
	worked := pairPresenceMinutes(logs) + missionCredit

	leaveCredit, err := s.hourlyLeaveMinutes(ctx, emp.ID, day)
	if err != nil {
		return false, err
	}

	late := computeLateness(first.In(s.loc), rule, policy)
	required := adjustedRequiredMinutes(rule, late.PenaltyMinutes, leaveCredit)

	overtimeApproved, err := s.overtimeRepo.HasApproved(ctx, emp.ID, day)
	if err != nil {
		return false, fmt.Errorf("failed to look up overtime approval: %w", err)
	}
	balance := splitBalance(worked, required, overtimeApproved)

	rep := report.DailyReport{
		EmployeeID:           emp.ID,
		Date:                 day,
		FirstCheckIn:         &first,
		LastCheckOut:         &last,
		TotalLatenessMinutes: late.LatenessMinutes,
		PenaltyMinutes:       late.PenaltyMinutes,
		RequiredWorkMinutes:  required,
		TotalWorkedMinutes:   worked,
		WorkShortfallMinutes: balance.ShortfallMinutes,
		WorkOvertimeMinutes:  balance.OvertimeMinutes,
	}
	if _, err := s.reportRepo.Upsert(ctx, rep); err != nil {
		return false, fmt.Errorf("failed to upsert report: %w", err)
	}
	return true, nil
}

// logsForDay fetches the employee's logs within the local-day bounds,
// re-sorted before any pairing regardless of store ordering.
func (s *Service) logsForDay(ctx context.Context, employeeCode string, day time.Time) ([]attlog.RawLog, error) {
	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	logs, err := s.logRepo.ListForDay(ctx, employeeCode, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list raw logs: %w", err)
	}
	sortLogs(logs)
	return logs, nil
}

// truncateToDay anchors the calendar date named by t at local midnight.
// Dates parsed from HTTP arrive as midnight UTC; converting that instant
// into a zone west of UTC would shift it onto the previous day.
func (s *Service) truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}
