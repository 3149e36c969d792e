package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/storage"
)

// Container owns the live AppState. It is the composition-root state
// holder: intents come in, engine functions mutate the state, the badge
// catalog is swept, and the whole record is written through to the store.
//
// Intents are serialized with a mutex so each one reads the latest state
// and produces the next atomically; the engine itself stays lock-free.
type Container struct {
	mu      sync.Mutex
	store   storage.Store
	state   *engine.AppState
	catalog []engine.Badge
	logger  *zap.SugaredLogger
}

func NewContainer(store storage.Store, logger *zap.SugaredLogger) *Container {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	c := &Container{
		store:   store,
		state:   store.Load(),
		catalog: engine.BadgeCatalog(),
		logger:  logger,
	}
	// Conditions can already hold on a freshly loaded state (e.g. after
	// an import); sweep once so the unlocked set is current.
	c.mu.Lock()
	c.sweepAndPersist()
	c.mu.Unlock()
	return c
}

// Snapshot returns a deep copy for presentation layers.
func (c *Container) Snapshot() *engine.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// sweepAndPersist re-derives the level cache, evaluates badges and
// writes the record through. Callers hold the lock. Save failures are
// logged and swallowed; the in-memory state stays the up-to-date copy.
func (c *Container) sweepAndPersist() []string {
	c.state.CurrentLevel = engine.CurrentLevel(c.state.TotalXP)
	newly := engine.EvaluateBadges(c.state, c.catalog)
	if err := c.store.Save(c.state); err != nil {
		c.logger.Warnw("state save failed, keeping in-memory copy", "error", err)
	}
	return newly
}

// Today returns the current date in the engine's day format.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ToggleTask flips a task for the given date. The XP value is resolved
// from the current task lists; unknown ids are rejected rather than
// guessed at.
func (c *Container) ToggleTask(taskID, date string) (engine.ToggleResult, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	task, ok := engine.FindTask(c.state, taskID)
	if !ok {
		return engine.ToggleResult{}, nil, engine.ValidationError{Field: "taskId", Reason: fmt.Sprintf("unknown task %q", taskID)}
	}
	res := engine.ToggleTask(c.state, taskID, date, task.XPValue)
	return res, c.sweepAndPersist(), nil
}

func (c *Container) AddBasicTask(text string) (engine.TaskItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, err := engine.AddBasicTask(c.state, text)
	if err != nil {
		return engine.TaskItem{}, err
	}
	c.sweepAndPersist()
	return t, nil
}

func (c *Container) DeleteBasicTask(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	engine.DeleteBasicTask(c.state, id)
	c.sweepAndPersist()
}

func (c *Container) ReorderBasics(from, to int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := engine.ReorderBasics(c.state, from, to); err != nil {
		return err
	}
	c.sweepAndPersist()
	return nil
}

func (c *Container) AddFocusTask(text string) (engine.TaskItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, err := engine.AddFocusTask(c.state, text)
	if err != nil {
		return engine.TaskItem{}, err
	}
	c.sweepAndPersist()
	return t, nil
}

func (c *Container) DeleteFocusTask(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	engine.DeleteFocusTask(c.state, id)
	c.sweepAndPersist()
}

func (c *Container) AddWin(date, text string, typ engine.JournalType, mediaData string) (engine.WinEntry, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, err := engine.AddWin(c.state, date, text, typ, mediaData)
	if err != nil {
		return engine.WinEntry{}, nil, err
	}
	return w, c.sweepAndPersist(), nil
}

func (c *Container) DeleteWin(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	engine.DeleteWin(c.state, id)
	c.sweepAndPersist()
}

func (c *Container) AddPart(name string, role engine.PartRole, description string) (engine.Part, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := engine.AddPart(c.state, name, role, description)
	if err != nil {
		return engine.Part{}, nil, err
	}
	return p, c.sweepAndPersist(), nil
}

func (c *Container) DeletePart(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	engine.DeletePart(c.state, id)
	c.sweepAndPersist()
}

func (c *Container) AddCheckIn(date string, activeParts []string, notes string, intensity int) (engine.PartsCheckIn, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ci, err := engine.AddCheckIn(c.state, date, activeParts, notes, intensity)
	if err != nil {
		return engine.PartsCheckIn{}, nil, err
	}
	return ci, c.sweepAndPersist(), nil
}

func (c *Container) SetSurvivalMode(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	engine.SetSurvivalMode(c.state, on)
	c.sweepAndPersist()
}

func (c *Container) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	engine.SetName(c.state, name)
	c.sweepAndPersist()
}

func (c *Container) SetTheme(theme engine.Theme) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := engine.SetTheme(c.state, theme); err != nil {
		return err
	}
	c.sweepAndPersist()
	return nil
}

func (c *Container) RecordHealthLog(log engine.HealthLog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := engine.RecordHealthLog(c.state, log); err != nil {
		return err
	}
	c.sweepAndPersist()
	return nil
}

func (c *Container) AddHabitStack(cue, action string) (engine.HabitStack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h, err := engine.AddHabitStack(c.state, cue, action)
	if err != nil {
		return engine.HabitStack{}, err
	}
	c.sweepAndPersist()
	return h, nil
}

func (c *Container) DeleteHabitStack(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	engine.DeleteHabitStack(c.state, id)
	c.sweepAndPersist()
}

func (c *Container) ApplyTemplate(name string) engine.Template {
	c.mu.Lock()
	defer c.mu.Unlock()
	tpl := engine.ApplyTemplate(c.state, name)
	c.sweepAndPersist()
	return tpl
}

// Prestige marks a cycle complete. Rejected outside the final-stretch
// window.
func (c *Container) Prestige() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !engine.CanPrestige(c.state.TotalXP) {
		progress := engine.CycleProgress(c.state.TotalXP)
		return 0, engine.ValidationError{
			Field:  "totalXp",
			Reason: fmt.Sprintf("cycle progress %d is below the prestige window (%d)", progress, engine.PrestigeThreshold),
		}
	}
	level := engine.Prestige(c.state)
	c.sweepAndPersist()
	return level, nil
}

// Reset replaces everything with the default seed. Destructive; callers
// gate it behind an explicit confirmation.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = engine.SeedState()
	c.sweepAndPersist()
}

// ExportFileName is the default name for an export taken today.
func ExportFileName(date string) string {
	return fmt.Sprintf("healing-journey-backup-%s.json", date)
}

// Export writes the full state as indented JSON to path.
func (c *Container) Export(path string) error {
	data, err := json.MarshalIndent(c.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("serialize export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ExportJSON returns the full state as indented JSON.
func (c *Container) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize export: %w", err)
	}
	return data, nil
}
