package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/service/reconcile"
)

type ReconcileJobs struct {
	engine *reconcile.Service
	loc    *time.Location
}

func NewReconcileJobs(engine *reconcile.Service, loc *time.Location) *ReconcileJobs {
	return &ReconcileJobs{engine: engine, loc: loc}
}

func (j *ReconcileJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconcile_previous_day", 1*time.Hour, j.ReconcilePreviousDay)
}

// ReconcilePreviousDay runs the engine for yesterday once the local midnight
// hour arrives, after the day's logs have stopped coming in. The hourly tick
// plus the hour gate gives one effective run per day; re-runs are harmless
// because the engine upserts.
func (j *ReconcileJobs) ReconcilePreviousDay(ctx context.Context) error {
	now := time.Now().In(j.loc)
	if now.Hour() != 0 {
		return nil
	}

	target := now.AddDate(0, 0, -1)
	slog.Info("Cron: Starting nightly reconciliation", "date", target.Format("2006-01-02"))

	summary, err := j.engine.Run(ctx, target)
	if err != nil {
		return fmt.Errorf("nightly reconciliation failed: %w", err)
	}

	slog.Info("Cron: Nightly reconciliation finished",
		"date", summary.Date,
		"processed", summary.Processed,
		"written", summary.Written,
		"skipped", summary.Skipped)
	return nil
}
