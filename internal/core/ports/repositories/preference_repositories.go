package repositories

import "context"

// PreferenceRepository is the typed view over the flat preference map:
// JSON-encoded scalar settings keyed by string, overwrite-on-set, no history.
type PreferenceRepository interface {
	// GetPreference decodes the stored value into dest.
	// Returns apperrors.ErrNotFound when the key has never been set.
	GetPreference(ctx context.Context, key string, dest any) error

	// SetPreference JSON-encodes value and stores it under key.
	SetPreference(ctx context.Context, key string, value any) error

	// DeletePreference removes the key; absent keys are a no-op.
	DeletePreference(ctx context.Context, key string) error
}
