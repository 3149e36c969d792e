package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattrebelskey/IFS-app/internal/engine"
)

func TestJSONStoreLoadMissingFileReturnsSeed(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "state.json"), nil)
	state := store.Load()

	assert.Equal(t, 0, state.TotalXP)
	assert.Equal(t, engine.LevelSurvivor, state.CurrentLevel)
	assert.Len(t, state.Parts, 4)
	assert.Equal(t, "Friend", state.Settings.Name)
}

func TestJSONStoreLoadCorruptFileReturnsSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	state := NewJSONStore(path, nil).Load()
	assert.Equal(t, 0, state.TotalXP)
	assert.Len(t, state.Parts, 4)
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewJSONStore(path, nil)

	state := engine.SeedState()
	state.TotalXP = 123
	state.Settings.Name = "Sam"
	state.DailyHistory["2024-01-01"] = []string{"basic_meal", "basic_water"}
	state.PrestigeLevel = 2
	require.NoError(t, store.Save(state))

	loaded := store.Load()
	assert.Equal(t, 123, loaded.TotalXP)
	assert.Equal(t, "Sam", loaded.Settings.Name)
	assert.Equal(t, []string{"basic_meal", "basic_water"}, loaded.DailyHistory["2024-01-01"])
	assert.Equal(t, 2, loaded.PrestigeLevel)
}

func TestJSONStoreLoadDefaultsMissingFields(t *testing.T) {
	// An older record that predates prestige, parts and habit stacks:
	// missing fields are filled from the seed, stored fields win.
	path := filepath.Join(t.TempDir(), "state.json")
	old := fmt.Sprintf(`{%q: {
		"totalXp": 42,
		"dailyHistory": {"2023-12-31": ["basic_meal"]},
		"focusTasks": [],
		"wins": [{"id": "win_1", "date": "2023-12-31", "text": "made tea"}],
		"settings": {"survivalMode": true, "name": "Alex", "theme": "dark"},
		"badges": ["first_step"]
	}}`, StorageKey)
	require.NoError(t, os.WriteFile(path, []byte(old), 0o600))

	state := NewJSONStore(path, nil).Load()

	// Stored fields preserved verbatim.
	assert.Equal(t, 42, state.TotalXP)
	assert.Equal(t, "Alex", state.Settings.Name)
	assert.True(t, state.Settings.SurvivalMode)
	assert.Equal(t, engine.ThemeDark, state.Settings.Theme)
	assert.Equal(t, []string{"first_step"}, state.Badges)
	require.Len(t, state.Wins, 1)
	assert.Equal(t, "made tea", state.Wins[0].Text)

	// Missing fields hydrated from defaults.
	assert.Equal(t, 0, state.PrestigeLevel)
	assert.Len(t, state.Parts, 4)
	assert.NotNil(t, state.HabitStacks)
	assert.NotNil(t, state.HealthLogs)
	assert.Len(t, state.CustomBasics, 5)
	assert.Equal(t, engine.TemplateStandard, state.ActiveTemplate)

	// The stored level cache is never trusted.
	assert.Equal(t, engine.LevelForXP(42), state.CurrentLevel)
}

func TestJSONStoreLoadBareRecord(t *testing.T) {
	// Files written before the keyed wrapper held the state object
	// directly.
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"totalXp": 9}`), 0o600))

	state := NewJSONStore(path, nil).Load()
	assert.Equal(t, 9, state.TotalXP)
	assert.Len(t, state.Parts, 4)
}

func TestJSONStoreSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	store := NewJSONStore(path, nil)
	require.NoError(t, store.Save(engine.SeedState()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
