package settings

import (
	"context"
)

type SettingsRepository interface {
	// Get retrieves the singleton row.
	// Returns ErrSettingsNotFound when it has never been configured.
	Get(ctx context.Context) (GlobalSettings, error)
}
