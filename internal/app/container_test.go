package app

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/storage"
)

func newTestContainer(t *testing.T) (*Container, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journey.json")
	return NewContainer(storage.NewJSONStore(path, nil), nil), path
}

func TestContainerWeekOfBasics(t *testing.T) {
	c, path := newTestContainer(t)

	// Day one: three default basics done.
	for _, id := range []string{"basic_meal", "basic_hygiene", "basic_water"} {
		_, _, err := c.ToggleTask(id, "2024-01-01")
		require.NoError(t, err)
	}
	s := c.Snapshot()
	assert.Equal(t, 3, s.TotalXP)
	assert.Equal(t, engine.LevelSurvivor, s.CurrentLevel)
	assert.Contains(t, s.Badges, "first_step")

	// Six more days at threshold.
	for day := 2; day <= 7; day++ {
		date := fmt.Sprintf("2024-01-%02d", day)
		for _, id := range []string{"basic_meal", "basic_hygiene", "basic_water"} {
			_, _, err := c.ToggleTask(id, date)
			require.NoError(t, err)
		}
	}
	s = c.Snapshot()
	assert.Equal(t, 7, engine.MaxStreak(s.DailyHistory))
	assert.Contains(t, s.Badges, "streak_3")
	assert.Contains(t, s.Badges, "consistency_champ")

	// A fresh container over the same file sees the persisted record.
	reopened := NewContainer(storage.NewJSONStore(path, nil), nil)
	assert.Equal(t, 21, reopened.Snapshot().TotalXP)
}

func TestContainerDerivesLevelAfterMutation(t *testing.T) {
	c, _ := newTestContainer(t)

	c.mu.Lock()
	c.state.TotalXP = 50
	c.mu.Unlock()

	res, _, err := c.ToggleTask("basic_meal", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 51, res.TotalXP)
	assert.True(t, res.LevelUp)

	// Long-running front ends read the snapshot directly; the cached
	// level must track XP without a reload in between.
	s := c.Snapshot()
	assert.Equal(t, engine.LevelCurious, s.CurrentLevel)
	assert.Equal(t, engine.CurrentLevel(s.TotalXP), s.CurrentLevel)
}

func TestContainerToggleUnknownTask(t *testing.T) {
	c, _ := newTestContainer(t)
	_, _, err := c.ToggleTask("basic_nonexistent", "2024-01-01")
	var verr engine.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "taskId", verr.Field)
}

func TestContainerToggleReturnsNewBadgesOnce(t *testing.T) {
	c, _ := newTestContainer(t)
	_, newly, err := c.ToggleTask("basic_meal", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, newly, "first_step")

	_, newly, err = c.ToggleTask("basic_water", "2024-01-01")
	require.NoError(t, err)
	assert.NotContains(t, newly, "first_step")
}

func TestContainerPrestigeGate(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := c.Prestige()
	var verr engine.ValidationError
	require.ErrorAs(t, err, &verr)

	c.mu.Lock()
	c.state.TotalXP = 460
	c.mu.Unlock()
	level, err := c.Prestige()
	require.NoError(t, err)
	assert.Equal(t, 1, level)
	assert.Equal(t, 460, c.Snapshot().TotalXP)
}

func TestContainerApplyTemplate(t *testing.T) {
	c, _ := newTestContainer(t)
	tpl := c.ApplyTemplate(engine.TemplateADHD)
	assert.Equal(t, engine.TemplateADHD, tpl.Name)

	s := c.Snapshot()
	assert.Equal(t, engine.TemplateADHD, s.ActiveTemplate)
	require.NotEmpty(t, s.FocusTasks)
	assert.Equal(t, "focus_timer", s.FocusTasks[0].ID)
}

func TestContainerResetSeedsState(t *testing.T) {
	c, _ := newTestContainer(t)
	_, _, err := c.ToggleTask("basic_meal", "2024-01-01")
	require.NoError(t, err)

	c.Reset()
	s := c.Snapshot()
	assert.Zero(t, s.TotalXP)
	assert.Empty(t, s.DailyHistory)
	assert.Len(t, s.Parts, len(engine.DefaultParts()))
}

func TestContainerExport(t *testing.T) {
	c, _ := newTestContainer(t)
	_, _, err := c.ToggleTask("basic_meal", "2024-01-01")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), ExportFileName("2024-01-01"))
	require.NoError(t, c.Export(out))

	restored := NewContainer(storage.NewJSONStore(out, nil), nil)
	assert.Equal(t, 1, restored.Snapshot().TotalXP)
}

func TestContainerCheckInAwardsXPAndBadge(t *testing.T) {
	c, _ := newTestContainer(t)
	s := c.Snapshot()
	require.NotEmpty(t, s.Parts)

	partID := s.Parts[0].ID
	for day := 1; day <= 5; day++ {
		date := fmt.Sprintf("2024-02-%02d", day)
		_, _, err := c.AddCheckIn(date, []string{partID}, "noticing", 5)
		require.NoError(t, err)
	}
	s = c.Snapshot()
	assert.Equal(t, 10, s.TotalXP)
	assert.Contains(t, s.Badges, "parts_peacemaker")
	assert.Contains(t, s.Badges, "self_energy")
}
