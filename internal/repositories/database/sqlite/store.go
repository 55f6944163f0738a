// Package sqlite provides the durable DocumentStore on an embedded SQLite
// database (pure-Go driver, no cgo). Documents live in a single table keyed
// by (collection, id); preferences live in a flat key/value table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
)

// Store is a durable document store backed by an embedded SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database at %s: %w", path, err)
	}

	store := &Store{db: db}
	if err := store.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Ensure Store implements the DocumentStore port.
var _ portsrepo.DocumentStore = (*Store)(nil)

func (s *Store) createTables(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}

	documentsTable := `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			data TEXT NOT NULL,
			PRIMARY KEY (collection, id)
		);`
	if _, err := tx.ExecContext(ctx, documentsTable); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	preferencesTable := `
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`
	if _, err := tx.ExecContext(ctx, preferencesTable); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create preferences table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}
	return nil
}

// Mode reports Ready: an open sqlite store persists across restarts.
func (s *Store) Mode() portsrepo.StoreMode {
	return portsrepo.ModeReady
}

// Put inserts or updates a document, allocating an id when none is given.
func (s *Store) Put(ctx context.Context, collection, id string, data []byte) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}

	query := `
		INSERT INTO documents (collection, id, data)
		VALUES (?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data;
	`
	if _, err := s.db.ExecContext(ctx, query, collection, id, string(data)); err != nil {
		return "", fmt.Errorf("failed to put document %s/%s: %w", collection, id, err)
	}
	return id, nil
}

// Get fetches a single document.
func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	var data string
	query := `SELECT data FROM documents WHERE collection = ? AND id = ?;`
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}
	return []byte(data), nil
}

// GetAll returns every document in the collection, order unspecified.
func (s *Store) GetAll(ctx context.Context, collection string) ([]portsrepo.Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = ?;`
	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []portsrepo.Document
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan document in %s: %w", collection, err)
		}
		docs = append(docs, portsrepo.Document{ID: id, Data: []byte(data)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents in %s: %w", collection, err)
	}
	return docs, nil
}

// Delete removes a document, reporting whether it existed.
func (s *Store) Delete(ctx context.Context, collection, id string) (bool, error) {
	query := `DELETE FROM documents WHERE collection = ? AND id = ?;`
	result, err := s.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result for %s/%s: %w", collection, id, err)
	}
	return affected > 0, nil
}

// GetPreference fetches a scalar preference value.
func (s *Store) GetPreference(ctx context.Context, key string) ([]byte, error) {
	var value string
	query := `SELECT value FROM preferences WHERE key = ?;`
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return []byte(value), nil
}

// SetPreference overwrites a scalar preference value.
func (s *Store) SetPreference(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO preferences (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;
	`
	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}

// DeletePreference removes a preference key.
func (s *Store) DeletePreference(ctx context.Context, key string) error {
	query := `DELETE FROM preferences WHERE key = ?;`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}

// ClearAll wipes every document and preference in one transaction. This is
// the factory-reset path and is irreversible on purpose.
func (s *Store) ClearAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin clear transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM documents;`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear documents: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM preferences;`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear preferences: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear transaction: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
