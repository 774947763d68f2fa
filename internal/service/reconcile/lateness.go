package reconcile

import (
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

type latenessResult struct {
	LatenessMinutes int
	PenaltyMinutes  decimal.Decimal
}

// computeLateness compares the first check-in against the shift start, both
// as minutes-of-day in the run's timezone. Lateness accrues from the shift
// start, but the penalty only applies once the arrival has passed the grace
// deadline: an employee can be late with zero penalty.
func computeLateness(arrival time.Time, rule shift.DayRule, policy PolicySource) latenessResult {
	shiftStart := rule.StartMinuteOfDay()
	graceDeadline := shiftStart + policy.GracePeriodMinutes(rule)
	arrivalMinute := arrival.Hour()*60 + arrival.Minute()

	res := latenessResult{PenaltyMinutes: decimal.Zero}
	if arrivalMinute > shiftStart {
		res.LatenessMinutes = arrivalMinute - shiftStart
	}
	if arrivalMinute > graceDeadline {
		res.PenaltyMinutes = decimal.NewFromInt(int64(res.LatenessMinutes)).Mul(policy.PenaltyRate(rule))
	}
	return res
}

// adjustedRequiredMinutes is the day's final requirement: the rule's nominal
// minutes, raised by the lateness penalty and lowered by any approved hourly
// leave credit. No floor is applied; a large enough credit can drive the
// requirement negative.
func adjustedRequiredMinutes(rule shift.DayRule, penalty decimal.Decimal, hourlyLeaveMinutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(rule.RequiredWorkMinutes)).
		Add(penalty).
		Sub(decimal.NewFromInt(int64(hourlyLeaveMinutes)))
}
