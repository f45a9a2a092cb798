// Package storage persists the whole application state as one JSON document
// in a local SQLite database, mirroring the key-value semantics of the
// client storage the app grew up with.
//
// The gateway fails soft in both directions: Load returns nil on a missing
// or unreadable document, Save swallows write failures. Either way the app
// keeps running on in-memory state; the fault is only logged.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"dayora/internal/store"
)

// stateKey is the document key. The suffix tracks the persisted schema
// generation and matches the original storage key of the app.
const stateKey = "dayora_v1"

// DB wraps the SQLite handle behind the load/save gateway.
type DB struct {
	conn *sql.DB
	log  zerolog.Logger
}

// Open creates the database file (and its directory) if needed and ensures
// the schema exists.
func Open(path string, log zerolog.Logger) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, log: log}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
	CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL
	);
	`)
	return err
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.conn.Close()
}

// persistedState is the wire shape of the document. It carries the legacy
// boolean dark flag alongside the current darkMode string so old documents
// decode without loss.
type persistedState struct {
	store.AppState
	Dark *bool `json:"dark,omitempty"`
}

// Load reads the persisted state. A missing document, malformed JSON or any
// read error yields nil: the caller seeds a fresh state instead.
func (db *DB) Load() *store.AppState {
	var raw string
	err := db.conn.QueryRow(`SELECT data FROM app_state WHERE key = ?`, stateKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		db.log.Warn().Err(err).Msg("failed to load state")
		return nil
	}

	st, err := decodeState([]byte(raw))
	if err != nil {
		db.log.Warn().Err(err).Msg("failed to parse state")
		return nil
	}
	return st
}

// Save writes the state synchronously. Failures are logged and otherwise
// ignored; there is no retry.
func (db *DB) Save(st *store.AppState) {
	data, err := json.Marshal(st)
	if err != nil {
		db.log.Warn().Err(err).Msg("failed to encode state")
		return
	}
	_, err = db.conn.Exec(`
		INSERT INTO app_state (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data
	`, stateKey, string(data))
	if err != nil {
		db.log.Warn().Err(err).Msg("failed to save state")
	}
}

// decodeState parses a persisted document, converting the legacy boolean
// dark field when the newer darkMode field is absent. Notes without a
// folderId are left as-is here; the store's bootstrap reassigns them.
func decodeState(data []byte) (*store.AppState, error) {
	var ps persistedState
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, err
	}
	if ps.DarkMode == "" && ps.Dark != nil {
		if *ps.Dark {
			ps.DarkMode = store.DarkModeDark
		} else {
			ps.DarkMode = store.DarkModeLight
		}
	}
	st := ps.AppState
	return &st, nil
}
