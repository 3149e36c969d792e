package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattrebelskey/IFS-app/internal/engine"
)

// StorageKey is the fixed versioned key the whole app state record is
// stored under. Compatibility across schema versions is achieved by
// defaulting missing fields at load time, not by bumping this key.
const StorageKey = "healing_journey_app_v1"

// Store persists the aggregate AppState as a single record.
//
// Load never fails: an absent, unreadable or unparsable record yields the
// default seed state. Save overwrites the whole record; failures are for
// the caller to log and swallow, the in-memory state stays authoritative.
type Store interface {
	Load() *engine.AppState
	Save(s *engine.AppState) error
	Close() error
}

// DefaultJSONPath returns the default location of the JSON state file.
func DefaultJSONPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".healing-journey.json"), nil
}

// DefaultSQLitePath returns the default location of the SQLite state DB.
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".healing-journey.db"), nil
}

// mergeRecord hydrates a stored JSON record over the seed state: stored
// fields win, absent fields keep their defaults, garbage falls back to a
// clean seed.
func mergeRecord(data []byte) *engine.AppState {
	state := engine.SeedState()
	if err := json.Unmarshal(data, state); err != nil {
		return engine.SeedState()
	}
	engine.Hydrate(state)
	return state
}
