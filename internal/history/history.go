// Package history persists confirmed model selections in sqlite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"

	"github.com/joss/modelpick/internal/selection"
	"github.com/joss/modelpick/internal/store"
)

// Entry is one confirmed selection.
type Entry struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	ProviderKey string    `json:"provider_key"`
	Model       string    `json:"model"`
	Params      string    `json:"params"`
	PickedAt    time.Time `json:"picked_at"`
}

// Store is a sqlite-backed selection history.
type Store struct {
	db   *sql.DB
	path string
}

// Verify Store implements store.Store
var _ store.Store = (*Store)(nil)

// New opens (creating if needed) the history database under dataDir.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")
	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS selections (
		id TEXT PRIMARY KEY,
		provider TEXT NOT NULL,
		provider_key TEXT NOT NULL,
		model TEXT NOT NULL,
		params TEXT NOT NULL,
		picked_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_selections_picked ON selections(picked_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a confirmed selection and returns the created entry.
func (s *Store) Record(ctx context.Context, provider, providerKey, model string) (*Entry, error) {
	e := &Entry{
		ID:          ulid.Make().String(),
		Provider:    provider,
		ProviderKey: providerKey,
		Model:       model,
		Params:      selection.Params(providerKey, model),
		PickedAt:    time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO selections (id, provider, provider_key, model, params, picked_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Provider, e.ProviderKey, e.Model, e.Params, e.PickedAt)
	if err != nil {
		return nil, fmt.Errorf("record selection: %w", err)
	}
	return e, nil
}

// orderColumns whitelists sortable fields.
var orderColumns = map[string]bool{
	"picked_at": true,
	"provider":  true,
	"model":     true,
}

// List returns selections matching the filter, newest first by default.
func (s *Store) List(ctx context.Context, f store.Filter) ([]*Entry, error) {
	orderBy := f.OrderBy
	if !orderColumns[orderBy] {
		orderBy = "picked_at"
	}
	dir := "ASC"
	if f.OrderDesc {
		dir = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, provider, provider_key, model, params, picked_at
		FROM selections
		ORDER BY %s %s`, orderBy, dir)
	args := []any{}
	if f.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.Provider, &e.ProviderKey, &e.Model, &e.Params, &e.PickedAt); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get retrieves a selection by ID.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	e := &Entry{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, provider, provider_key, model, params, picked_at
		FROM selections WHERE id = ?`, id).
		Scan(&e.ID, &e.Provider, &e.ProviderKey, &e.Model, &e.Params, &e.PickedAt)
	if err == sql.ErrNoRows {
		return nil, store.NewNotFoundError("selection", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get selection: %w", err)
	}
	return e, nil
}

// Last returns the most recent selection.
func (s *Store) Last(ctx context.Context) (*Entry, error) {
	entries, err := s.List(ctx, store.DefaultFilter().WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, store.NewNotFoundError("selection", "latest")
	}
	return entries[0], nil
}

// Count returns the number of recorded selections.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM selections`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count selections: %w", err)
	}
	return n, nil
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
