package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SourceGeneric is the cache key for the remote generic list.
const SourceGeneric = "generic"

const storeSchema = `
CREATE TABLE IF NOT EXISTS words (
	source TEXT NOT NULL,
	word   TEXT NOT NULL,
	PRIMARY KEY (source, word)
) WITHOUT ROWID;`

// Store caches fetched word lists in a local SQLite database so restarts do
// not refetch the remote list.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the cache database at dir/corpus.db.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", dir, err)
	}
	dbPath := filepath.Join(dir, "corpus.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open corpus cache: %w", err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create corpus cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveWords replaces the cached words for a source in one transaction.
func (s *Store) SaveWords(ctx context.Context, source string, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words WHERE source = ?`, source); err != nil {
		return fmt.Errorf("clear cached words for %s: %w", source, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (source, word) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cache insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, source, w); err != nil {
			return fmt.Errorf("cache word %q: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cached words for %s: %w", source, err)
	}
	return nil
}

// LoadWords returns the cached words for a source, sorted. An unknown source
// yields an empty slice.
func (s *Store) LoadWords(ctx context.Context, source string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE source = ? ORDER BY word`, source)
	if err != nil {
		return nil, fmt.Errorf("query cached words for %s: %w", source, err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan cached word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached words for %s: %w", source, err)
	}
	return words, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
