package postgresql

import (
	"context"
	"fmt"

	"github.com/clockday-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.GlobalSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, grace_period_minutes, penalty_rate, updated_at
		FROM global_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var gs settings.GlobalSettings
	err := q.QueryRow(ctx, query).Scan(&gs.ID, &gs.GracePeriodMinutes, &gs.PenaltyRate, &gs.UpdatedAt)

	if err == pgx.ErrNoRows {
		return settings.GlobalSettings{}, settings.ErrSettingsNotFound
	}
	if err != nil {
		return settings.GlobalSettings{}, fmt.Errorf("failed to get global settings: %w", err)
	}

	return gs, nil
}
