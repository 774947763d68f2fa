package reconcile

import (
	"github.com/shopspring/decimal"
)

type balanceResult struct {
	ShortfallMinutes int
	OvertimeMinutes  int
}

// splitBalance partitions worked-minus-required into shortfall or overtime.
// Overtime is credited only when an approved overtime request exists;
// unapproved surplus is simply not stored anywhere. At most one of the two
// results is nonzero. Fractional balances are truncated to whole minutes.
func splitBalance(workedMinutes int, requiredMinutes decimal.Decimal, overtimeApproved bool) balanceResult {
	balance := decimal.NewFromInt(int64(workedMinutes)).Sub(requiredMinutes)

	var res balanceResult
	switch balance.Sign() {
	case -1:
		res.ShortfallMinutes = int(balance.Abs().IntPart())
	case 1:
		if overtimeApproved {
			res.OvertimeMinutes = int(balance.IntPart())
		}
	}
	return res
}
