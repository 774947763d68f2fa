package settings

import "errors"

var (
	// ErrSettingsNotFound is fatal to a reconciliation run: without grace and
	// penalty configuration no employee can be processed.
	ErrSettingsNotFound = errors.New("global settings not configured")
)
