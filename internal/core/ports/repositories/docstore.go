package repositories

import "context"

// StoreMode reports whether the backing store survives a restart.
type StoreMode string

const (
	// ModeReady means the durable engine is open and writes persist.
	ModeReady StoreMode = "READY"
	// ModeDegraded means durable persistence is unavailable; writes are
	// accepted but only guaranteed for the lifetime of the process.
	ModeDegraded StoreMode = "DEGRADED"
)

// Collection names of the persisted record stores.
const (
	CollectionProducts = "products"
	CollectionSales    = "sales"
	CollectionExpenses = "expenses"
)

// Document is one stored record: an opaque JSON payload under a collection-
// scoped id.
type Document struct {
	ID   string
	Data []byte
}

// DocumentStore is the persistence boundary of the core: named collections of
// JSON documents plus a flat scalar preference map. Implementations must
// survive process restart when ModeReady; ModeDegraded implementations keep
// the same contract for the lifetime of the process only.
type DocumentStore interface {
	// Mode reports the current persistence guarantee.
	Mode() StoreMode

	// Put inserts or updates a document. An empty id allocates one.
	// The stored (possibly allocated) id is returned.
	Put(ctx context.Context, collection, id string, data []byte) (string, error)

	// Get fetches a single document, apperrors.ErrNotFound when absent.
	Get(ctx context.Context, collection, id string) ([]byte, error)

	// GetAll returns every document in the collection, order unspecified.
	GetAll(ctx context.Context, collection string) ([]Document, error)

	// Delete removes a document. It reports whether the document existed;
	// deleting an absent document is a normal outcome, not an error.
	Delete(ctx context.Context, collection, id string) (bool, error)

	// GetPreference fetches a scalar preference value,
	// apperrors.ErrNotFound when the key has never been set.
	GetPreference(ctx context.Context, key string) ([]byte, error)

	// SetPreference overwrites a scalar preference value.
	SetPreference(ctx context.Context, key string, value []byte) error

	// DeletePreference removes a preference key. Absent keys are a no-op.
	DeletePreference(ctx context.Context, key string) error

	// ClearAll irreversibly wipes every collection and every preference.
	// Used only by the explicit factory-reset flow.
	ClearAll(ctx context.Context) error

	// Close releases the underlying engine.
	Close() error
}
