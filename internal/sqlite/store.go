// Package sqlite implements the durable stored-cart store on SQLite.
// Each stored cart is one row in a relational table keyed by identifier,
// with the serialized content structure carried as an opaque blob.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/cartbox/pkg/types"
)

// tableNamePattern restricts table names to plain SQL identifiers; the
// name is interpolated into statements.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store implements types.CartStore over a SQLite database file.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	table  string
	closed bool
}

var _ types.CartStore = (*Store)(nil)

// Open opens (creating when missing) the database at path and ensures the
// stored-cart table exists. An empty table name selects the default
// "shoppingcart".
func Open(path, table string) (*Store, error) {
	if table == "" {
		table = types.DefaultTableName
	}
	if !tableNamePattern.MatchString(table) {
		return nil, types.ErrTableNameInvalid
	}

	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		identifier TEXT PRIMARY KEY,
		instance   TEXT NOT NULL,
		content    BLOB NOT NULL,
		created_at TEXT NOT NULL
	)`, table)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table %s: %w", table, err)
	}

	return &Store{db: db, table: table}, nil
}

// Close releases the database handle. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Insert persists a snapshot. Returns ErrAlreadyStored when a row with
// the identifier exists.
func (s *Store) Insert(stored types.StoredCart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}

	exists, err := s.existsLocked(stored.Identifier)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", types.ErrAlreadyStored, stored.Identifier)
	}

	_, err = s.db.Exec(
		fmt.Sprintf("INSERT INTO %s (identifier, instance, content, created_at) VALUES (?, ?, ?, ?)", s.table),
		stored.Identifier, stored.Instance, stored.Content, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting stored cart %s: %w", stored.Identifier, err)
	}
	return nil
}

// Exists reports whether a snapshot with the identifier is present.
func (s *Store) Exists(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, types.ErrStoreClosed
	}
	return s.existsLocked(identifier)
}

func (s *Store) existsLocked(identifier string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT 1 FROM %s WHERE identifier = ?", s.table),
		identifier,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking stored cart %s: %w", identifier, err)
	}
	return true, nil
}

// Get retrieves the snapshot with the identifier.
func (s *Store) Get(identifier string) (types.StoredCart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.StoredCart{}, types.ErrStoreClosed
	}

	var stored types.StoredCart
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT identifier, instance, content FROM %s WHERE identifier = ?", s.table),
		identifier,
	).Scan(&stored.Identifier, &stored.Instance, &stored.Content)
	if err == sql.ErrNoRows {
		return types.StoredCart{}, fmt.Errorf("%w: %s", types.ErrStoredCartNotFound, identifier)
	}
	if err != nil {
		return types.StoredCart{}, fmt.Errorf("loading stored cart %s: %w", identifier, err)
	}
	return stored, nil
}

// Delete removes the snapshot with the identifier.
func (s *Store) Delete(identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}

	res, err := s.db.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE identifier = ?", s.table),
		identifier,
	)
	if err != nil {
		return fmt.Errorf("deleting stored cart %s: %w", identifier, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting stored cart %s: %w", identifier, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", types.ErrStoredCartNotFound, identifier)
	}
	return nil
}
