package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
)

type preferenceRepository struct {
	store portsrepo.DocumentStore
}

// NewPreferenceRepository creates the typed view over the preference map.
func NewPreferenceRepository(store portsrepo.DocumentStore) portsrepo.PreferenceRepository {
	return &preferenceRepository{store: store}
}

// Ensure implementation matches interface
var _ portsrepo.PreferenceRepository = (*preferenceRepository)(nil)

// GetPreference decodes the stored value into dest.
func (r *preferenceRepository) GetPreference(ctx context.Context, key string, dest any) error {
	data, err := r.store.GetPreference(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode preference %s: %w", key, err)
	}
	return nil
}

// SetPreference JSON-encodes value and stores it under key.
func (r *preferenceRepository) SetPreference(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode preference %s: %w", key, err)
	}
	return r.store.SetPreference(ctx, key, data)
}

// DeletePreference removes the key; absent keys are a no-op.
func (r *preferenceRepository) DeletePreference(ctx context.Context, key string) error {
	return r.store.DeletePreference(ctx, key)
}
