package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mattrebelskey/IFS-app/internal/engine"
)

// JSONStore keeps the record in a single JSON file.
type JSONStore struct {
	path   string
	logger *zap.SugaredLogger
}

func NewJSONStore(path string, logger *zap.SugaredLogger) *JSONStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &JSONStore{path: path, logger: logger}
}

func (s *JSONStore) Load() *engine.AppState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnw("state file unreadable, starting from seed", "path", s.path, "error", err)
		}
		return engine.SeedState()
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warnw("state file corrupt, starting from seed", "path", s.path, "error", err)
		return engine.SeedState()
	}
	payload, ok := record[StorageKey]
	if !ok {
		// Pre-wrapper files held the bare state object.
		payload = data
	}
	return mergeRecord(payload)
}

func (s *JSONStore) Save(state *engine.AppState) error {
	record := map[string]*engine.AppState{StorageKey: state}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }
