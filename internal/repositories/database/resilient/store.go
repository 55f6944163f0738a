// Package resilient layers the durable document store with an in-memory
// mirror. Durability is best-effort: a write that fails against the durable
// engine is logged and kept in the mirror so the in-session model stays
// correct; a read that fails is served from the last known mirrored state.
// A session never crashes because storage misbehaved.
package resilient

import (
	"context"
	"errors"
	"log/slog"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	"github.com/minivyapar/vyapar_ledger/internal/repositories/database/memory"
	"github.com/minivyapar/vyapar_ledger/internal/repositories/database/sqlite"
)

// Store wraps a durable DocumentStore with a write-through memory mirror.
// When durable is nil the store runs memory-only (Degraded).
type Store struct {
	durable portsrepo.DocumentStore
	mirror  *memory.Store
	logger  *slog.Logger
}

// Ensure Store implements the DocumentStore port.
var _ portsrepo.DocumentStore = (*Store)(nil)

// Open attempts to open the durable engine at path and wraps it. When the
// engine cannot open, the returned store is Degraded and memory-only; this
// is not an error for the caller, only a reduced guarantee.
func Open(ctx context.Context, path string, logger *slog.Logger) *Store {
	durable, err := sqlite.Open(ctx, path)
	if err != nil {
		logger.Warn("Durable store unavailable, running memory-only",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return NewStore(nil, logger)
	}

	store := NewStore(durable, logger)
	store.warmMirror(ctx)
	return store
}

// NewStore wraps an already-open durable store (nil for memory-only).
func NewStore(durable portsrepo.DocumentStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		durable: durable,
		mirror:  memory.NewStore(),
		logger:  logger,
	}
}

// warmMirror preloads the known collections so degraded reads have a last
// known state to fall back on from the first call.
func (s *Store) warmMirror(ctx context.Context) {
	collections := []string{
		portsrepo.CollectionProducts,
		portsrepo.CollectionSales,
		portsrepo.CollectionExpenses,
	}
	for _, collection := range collections {
		docs, err := s.durable.GetAll(ctx, collection)
		if err != nil {
			s.logger.Warn("Failed to warm mirror for collection",
				slog.String("collection", collection),
				slog.String("error", err.Error()))
			continue
		}
		for _, doc := range docs {
			s.mirror.Put(ctx, collection, doc.ID, doc.Data)
		}
	}
}

// Mode reports the guarantee decided at open time. Individual call failures
// degrade that call only, not the whole session.
func (s *Store) Mode() portsrepo.StoreMode {
	if s.durable == nil {
		return portsrepo.ModeDegraded
	}
	return portsrepo.ModeReady
}

// Put writes through to the mirror and best-effort to the durable engine.
func (s *Store) Put(ctx context.Context, collection, id string, data []byte) (string, error) {
	id, err := s.mirror.Put(ctx, collection, id, data)
	if err != nil {
		return "", err
	}
	if s.durable != nil {
		if _, derr := s.durable.Put(ctx, collection, id, data); derr != nil {
			s.logWriteFailure("put", collection, id, derr)
		}
	}
	return id, nil
}

// Get serves from the durable engine, falling back to the mirror on failure.
// A durable miss also consults the mirror: a record whose durable write
// failed exists only there, and it must stay visible for the session.
func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	if s.durable != nil {
		data, err := s.durable.Get(ctx, collection, id)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logReadFailure("get", collection, id, err)
		}
	}
	return s.mirror.Get(ctx, collection, id)
}

// GetAll serves from the durable engine, falling back to the mirror on
// failure. Successful durable reads refresh the mirror, then mirror-only
// records (failed durable writes) are unioned in so the session view stays
// complete.
func (s *Store) GetAll(ctx context.Context, collection string) ([]portsrepo.Document, error) {
	if s.durable != nil {
		docs, err := s.durable.GetAll(ctx, collection)
		if err == nil {
			for _, doc := range docs {
				s.mirror.Put(ctx, collection, doc.ID, doc.Data)
			}
			return s.withMirrorOnly(ctx, collection, docs), nil
		}
		s.logReadFailure("getAll", collection, "", err)
	}
	return s.mirror.GetAll(ctx, collection)
}

// withMirrorOnly appends mirror records absent from the durable result.
func (s *Store) withMirrorOnly(ctx context.Context, collection string, docs []portsrepo.Document) []portsrepo.Document {
	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		seen[doc.ID] = struct{}{}
	}
	mirrored, err := s.mirror.GetAll(ctx, collection)
	if err != nil {
		return docs
	}
	for _, doc := range mirrored {
		if _, ok := seen[doc.ID]; !ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

// Delete removes from both tiers. The durable result is authoritative when
// available; deleting an absent document is a normal outcome either way.
func (s *Store) Delete(ctx context.Context, collection, id string) (bool, error) {
	mirrorFound, err := s.mirror.Delete(ctx, collection, id)
	if err != nil {
		return false, err
	}
	if s.durable != nil {
		durableFound, derr := s.durable.Delete(ctx, collection, id)
		if derr != nil {
			s.logWriteFailure("delete", collection, id, derr)
			return mirrorFound, nil
		}
		return durableFound, nil
	}
	return mirrorFound, nil
}

// GetPreference serves from the durable engine, falling back to the mirror.
// As with Get, a durable miss still consults the mirror so a preference
// whose durable write failed stays readable for the session.
func (s *Store) GetPreference(ctx context.Context, key string) ([]byte, error) {
	if s.durable != nil {
		value, err := s.durable.GetPreference(ctx, key)
		if err == nil {
			s.mirror.SetPreference(ctx, key, value)
			return value, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logReadFailure("getPreference", "preferences", key, err)
		}
	}
	return s.mirror.GetPreference(ctx, key)
}

// SetPreference writes through to the mirror and best-effort durably.
func (s *Store) SetPreference(ctx context.Context, key string, value []byte) error {
	if err := s.mirror.SetPreference(ctx, key, value); err != nil {
		return err
	}
	if s.durable != nil {
		if derr := s.durable.SetPreference(ctx, key, value); derr != nil {
			s.logWriteFailure("setPreference", "preferences", key, derr)
		}
	}
	return nil
}

// DeletePreference removes from both tiers.
func (s *Store) DeletePreference(ctx context.Context, key string) error {
	if err := s.mirror.DeletePreference(ctx, key); err != nil {
		return err
	}
	if s.durable != nil {
		if derr := s.durable.DeletePreference(ctx, key); derr != nil {
			s.logWriteFailure("deletePreference", "preferences", key, derr)
		}
	}
	return nil
}

// ClearAll wipes both tiers. Factory reset must not silently keep durable
// data, so a durable failure here is returned, not swallowed.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.mirror.ClearAll(ctx); err != nil {
		return err
	}
	if s.durable != nil {
		if err := s.durable.ClearAll(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the durable engine, if any.
func (s *Store) Close() error {
	if s.durable != nil {
		return s.durable.Close()
	}
	return nil
}

func (s *Store) logWriteFailure(op, collection, id string, err error) {
	s.logger.Warn("Durable write failed, in-memory state retained",
		slog.String("op", op),
		slog.String("collection", collection),
		slog.String("id", id),
		slog.String("error", err.Error()))
}

func (s *Store) logReadFailure(op, collection, id string, err error) {
	s.logger.Warn("Durable read failed, serving last known in-memory state",
		slog.String("op", op),
		slog.String("collection", collection),
		slog.String("id", id),
		slog.String("error", err.Error()))
}
