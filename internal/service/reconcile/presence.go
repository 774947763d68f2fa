package reconcile

import (
	"sort"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
)

// sortLogs orders raw logs ascending by timestamp. Logs may arrive from
// devices out of order; sorting always happens before any pairing.
func sortLogs(logs []attlog.RawLog) {
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.Before(logs[j].Timestamp)
	})
}

// pairPresenceMinutes sums physical presence from positionally paired logs:
// (log0,log1), (log2,log3), ... Each pair contributes the whole minutes
// between its two timestamps; an unpaired trailing log contributes nothing.
//
// This is a heuristic, not an in/out state machine: it models an employee
// clocking out and back in during the day without crediting the gap, and it
// silently drops a trailing unmatched punch. Logs must already be sorted.
func pairPresenceMinutes(logs []attlog.RawLog) int {
	total := 0
	for i := 0; i+1 < len(logs); i += 2 {
		total += wholeMinutesBetween(logs[i].Timestamp, logs[i+1].Timestamp)
	}
	return total
}

// spanMinutes is the whole minutes between the earliest and latest log.
// Off-day work is credited by span rather than by pairing.
func spanMinutes(logs []attlog.RawLog) int {
	if len(logs) < 2 {
		return 0
	}
	return wholeMinutesBetween(logs[0].Timestamp, logs[len(logs)-1].Timestamp)
}

func wholeMinutesBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
