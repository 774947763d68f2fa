package reconcile

import (
	"testing"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/attlog"
	"github.com/stretchr/testify/assert"
)

func logsAt(hhmm ...string) []attlog.RawLog {
	out := make([]attlog.RawLog, 0, len(hhmm))
	for _, v := range hhmm {
		clock, err := time.Parse("15:04", v)
		if err != nil {
			panic(err)
		}
		out = append(out, attlog.RawLog{
			Timestamp: time.Date(2026, 3, 16, clock.Hour(), clock.Minute(), 0, 0, time.UTC),
		})
	}
	return out
}

func TestPairPresenceMinutes(t *testing.T) {
	cases := []struct {
		name string
		logs []attlog.RawLog
		want int
	}{
		{"no logs", nil, 0},
		{"single log", logsAt("08:00"), 0},
		{"one pair", logsAt("08:00", "16:45"), 525},
		{"two pairs with gap", logsAt("08:00", "12:00", "13:00", "17:00"), 480},
		{"odd trailing dropped", logsAt("08:00", "12:00", "13:00"), 240},
		{"seconds truncated", []attlog.RawLog{
			{Timestamp: time.Date(2026, 3, 16, 8, 0, 30, 0, time.UTC)},
			{Timestamp: time.Date(2026, 3, 16, 9, 0, 15, 0, time.UTC)},
		}, 59},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pairPresenceMinutes(tc.logs))
		})
	}
}

func TestSpanMinutes(t *testing.T) {
	assert.Equal(t, 0, spanMinutes(nil))
	assert.Equal(t, 0, spanMinutes(logsAt("10:00")))
	assert.Equal(t, 150, spanMinutes(logsAt("10:00", "12:30")))
	// Span ignores everything between the endpoints.
	assert.Equal(t, 540, spanMinutes(logsAt("08:00", "09:00", "11:00", "17:00")))
}

func TestSortLogs(t *testing.T) {
	logs := logsAt("13:00", "08:00", "12:00")
	sortLogs(logs)
	assert.Equal(t, "08:00", logs[0].Timestamp.Format("15:04"))
	assert.Equal(t, "12:00", logs[1].Timestamp.Format("15:04"))
	assert.Equal(t, "13:00", logs[2].Timestamp.Format("15:04"))
}

func TestWholeMinutesBetween(t *testing.T) {
	a := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 16, 8, 30, 59, 0, time.UTC)
	assert.Equal(t, 30, wholeMinutesBetween(a, b))
	assert.Equal(t, 0, wholeMinutesBetween(b, a))
}
