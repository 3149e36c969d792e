package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mattrebelskey/IFS-app/internal/engine"
)

// SQLiteStore keeps the record in a one-row key/value slot table.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// OpenSQLite opens (and creates if missing) the state DB at path.
func OpenSQLite(path string, logger *zap.SugaredLogger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load() *engine.AppState {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM app_state WHERE key = ?`, StorageKey).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warnw("state row unreadable, starting from seed", "error", err)
		}
		return engine.SeedState()
	}
	return mergeRecord([]byte(payload))
}

func (s *SQLiteStore) Save(state *engine.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serialize state: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO app_state (key, payload) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = CURRENT_TIMESTAMP
	`, StorageKey, string(data))
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
