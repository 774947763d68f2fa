package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockday-hr/attendance-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// DayClass is the policy classification of one (employee, date).
type DayClass int

const (
	ClassWorkday DayClass = iota
	ClassScheduledOff
	ClassHoliday
)

func (c DayClass) String() string {
	switch c {
	case ClassWorkday:
		return "workday"
	case ClassScheduledOff:
		return "scheduled_off"
	case ClassHoliday:
		return "holiday"
	}
	return "unknown"
}

// PolicySource answers where grace period and penalty rate come from for a
// given day rule. Two generations of the product disagreed on the
// granularity (per shift-day vs one global singleton), so the choice is
// injected instead of hard-coded into the calculators.
type PolicySource interface {
	GracePeriodMinutes(rule shift.DayRule) int
	PenaltyRate(rule shift.DayRule) decimal.Decimal
}

// GlobalPolicy reads grace and penalty exclusively from the settings
// singleton, ignoring any per-rule values.
type GlobalPolicy struct {
	Settings settings.GlobalSettings
}

func (p GlobalPolicy) GracePeriodMinutes(shift.DayRule) int {
	return p.Settings.GracePeriodMinutes
}

func (p GlobalPolicy) PenaltyRate(shift.DayRule) decimal.Decimal {
	return p.Settings.PenaltyRate
}

// RulePolicy prefers per-shift-day overrides and falls back to the settings
// singleton where a rule carries none.
type RulePolicy struct {
	Fallback settings.GlobalSettings
}

func (p RulePolicy) GracePeriodMinutes(rule shift.DayRule) int {
	if rule.GracePeriodMinutes != nil {
		return *rule.GracePeriodMinutes
	}
	return p.Fallback.GracePeriodMinutes
}

func (p RulePolicy) PenaltyRate(rule shift.DayRule) decimal.Decimal {
	if rule.PenaltyRate != nil {
		return *rule.PenaltyRate
	}
	return p.Fallback.PenaltyRate
}

// PolicyScope names for config-driven selection.
const (
	PolicyScopeGlobal = "global"
	PolicyScopeRule   = "rule"
)

func policySourceFor(scope string, gs settings.GlobalSettings) PolicySource {
	if scope == PolicyScopeRule {
		return RulePolicy{Fallback: gs}
	}
	return GlobalPolicy{Settings: gs}
}

// classify resolves the day classification for one employee. Holidays win
// over everything; otherwise the shift's weekday rule decides. A missing
// rule is a configuration fault surfaced as shift.ErrNoDayRule.
func (s *Service) classify(ctx context.Context, emp employee.Employee, date time.Time) (DayClass, shift.DayRule, error) {
	hol, err := s.holidayRepo.GetByDate(ctx, date)
	if err != nil {
		return ClassWorkday, shift.DayRule{}, fmt.Errorf("failed to look up holiday: %w", err)
	}
	if hol != nil {
		return ClassHoliday, shift.DayRule{}, nil
	}

	if emp.ShiftID == nil {
		return ClassWorkday, shift.DayRule{}, shift.ErrNoDayRule
	}

	rule, err := s.shiftRepo.GetDayRule(ctx, *emp.ShiftID, date.Weekday())
	if err != nil {
		return ClassWorkday, shift.DayRule{}, err
	}

	if !rule.IsWorkDay {
		return ClassScheduledOff, rule, nil
	}
	return ClassWorkday, rule, nil
}
