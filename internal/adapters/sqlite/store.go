package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kgraph/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// schema is created idempotently on every open. Foreign keys give the
// node→edge cascade; the WAL journal keeps readers unblocked by the
// single writer.
const schema = `
	CREATE TABLE IF NOT EXISTS nodes (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL DEFAULT 'concept',
		summary TEXT NOT NULL DEFAULT '',
		bands TEXT NOT NULL DEFAULT '[]',
		domain TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'seed',
		kai_note TEXT NOT NULL DEFAULT '',
		meta TEXT NOT NULL DEFAULT '{}',
		created_at REAL NOT NULL,
		updated_at REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS edges (
		source_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		relation TEXT NOT NULL,
		weight REAL NOT NULL DEFAULT 1.0,
		note TEXT NOT NULL DEFAULT '',
		created_at REAL NOT NULL,
		PRIMARY KEY (source_id, target_id, relation),
		FOREIGN KEY (source_id) REFERENCES nodes(id) ON DELETE CASCADE,
		FOREIGN KEY (target_id) REFERENCES nodes(id) ON DELETE CASCADE
	);
	CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		session_number INTEGER NOT NULL DEFAULT 0,
		node_ids TEXT NOT NULL DEFAULT '[]',
		created_at REAL NOT NULL,
		updated_at REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_edges_source ON edges(source_id);
	CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(target_id);
	CREATE INDEX IF NOT EXISTS idx_nodes_type ON nodes(type);
	CREATE INDEX IF NOT EXISTS idx_nodes_status ON nodes(status);
	CREATE INDEX IF NOT EXISTS idx_nodes_domain ON nodes(domain);
	CREATE INDEX IF NOT EXISTS idx_docs_session ON documents(session_number);
`

// Store implements the graph, state and document repositories on a
// single SQLite database. database/sql pools connections internally;
// every operation is one statement or one explicit transaction, never
// held across traversal rounds.
type Store struct {
	db *sql.DB
}

var _ ports.Store = (*Store)(nil)

// Open creates the database file (and its directory) if needed, sets
// up the schema and seeds the default session-state keys.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA synchronous = NORMAL;" + schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up database: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedState(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding state: %w", err)
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) seedState() error {
	now := nowUnix()
	defaults := map[string]string{
		"focus":          "",
		"open_questions": "[]",
		"last_session":   "",
		"session_count":  "0",
	}
	for key, value := range defaults {
		if _, err := s.db.Exec(
			`INSERT OR IGNORE INTO state (key, value, updated_at) VALUES (?, ?, ?)`,
			key, value, now,
		); err != nil {
			return err
		}
	}
	return nil
}

// nowUnix returns the current time as unix seconds, matching the REAL
// timestamp columns.
func nowUnix() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// querier is satisfied by both *sql.DB and *sql.Tx so the upsert
// helpers can run standalone or inside a bulk transaction.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
