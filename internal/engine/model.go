package engine

// TaskItem is a single checkable task. Items are immutable once created;
// lists own add/remove/reorder.
type TaskItem struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
	XPValue  int      `json:"xpValue"`
}

// WinEntry is a journal entry. Created on save, never edited.
type WinEntry struct {
	ID   string      `json:"id"`
	Date string      `json:"date"`
	Text string      `json:"text"`
	Type JournalType `json:"type,omitempty"`
	// MediaData is an opaque encoded blob (voice/photo attachments).
	// The engine stores it verbatim and never interprets the contents.
	MediaData string `json:"mediaData,omitempty"`
}

type Part struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        PartRole `json:"role"`
	Description string   `json:"description"`
}

type PartsCheckIn struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	ActiveParts []string `json:"activeParts"`
	Notes       string   `json:"notes"`
	Intensity   int      `json:"intensity"` // 1-10
}

type HealthLog struct {
	Date            string  `json:"date"`
	SleepHours      float64 `json:"sleepHours,omitempty"`
	MovementMinutes int     `json:"movementMinutes,omitempty"`
	Mood            string  `json:"mood,omitempty"`
}

type HabitStack struct {
	ID     string `json:"id"`
	Cue    string `json:"cue"`
	Action string `json:"action"`
}

type UserSettings struct {
	SurvivalMode bool   `json:"survivalMode"`
	Name         string `json:"name"`
	Theme        Theme  `json:"theme"`
}

// AppState is the aggregate root of persistence. All engine operations
// take it explicitly; there is no ambient state.
//
// TotalXP is a lifetime counter: cycle progress is always derived via
// modulo, and prestige never resets it.
type AppState struct {
	TotalXP int `json:"totalXp"`
	// CurrentLevel is accepted from older stored records for compatibility
	// but is a pure cache: always recomputed, never trusted.
	CurrentLevel LevelName `json:"currentLevel,omitempty"`

	// DailyHistory maps "YYYY-MM-DD" to the ids completed that day.
	DailyHistory map[string][]string `json:"dailyHistory"`

	FocusTasks []TaskItem   `json:"focusTasks"`
	Wins       []WinEntry   `json:"wins"` // newest first
	Settings   UserSettings `json:"settings"`
	Badges     []string     `json:"badges"` // unlocked badge ids, append-only

	Parts       []Part               `json:"parts"`
	CheckIns    []PartsCheckIn       `json:"checkIns"` // newest first
	HealthLogs  map[string]HealthLog `json:"healthLogs"`
	HabitStacks []HabitStack         `json:"habitStacks"`

	// No omitempty: an emptied basics list must round-trip as empty, not
	// vanish and resurrect the defaults on the next load.
	CustomBasics   []TaskItem `json:"customBasics"`
	ActiveTemplate string     `json:"activeTemplate,omitempty"`

	PrestigeLevel int `json:"prestigeLevel,omitempty"`
}

// Clone returns a deep copy, safe to hand to presentation layers.
func (s *AppState) Clone() *AppState {
	out := *s

	out.DailyHistory = make(map[string][]string, len(s.DailyHistory))
	for date, ids := range s.DailyHistory {
		out.DailyHistory[date] = append([]string(nil), ids...)
	}
	out.FocusTasks = append([]TaskItem(nil), s.FocusTasks...)
	out.Wins = append([]WinEntry(nil), s.Wins...)
	out.Badges = append([]string(nil), s.Badges...)
	out.Parts = append([]Part(nil), s.Parts...)
	out.CheckIns = make([]PartsCheckIn, len(s.CheckIns))
	for i, c := range s.CheckIns {
		c.ActiveParts = append([]string(nil), c.ActiveParts...)
		out.CheckIns[i] = c
	}
	out.HealthLogs = make(map[string]HealthLog, len(s.HealthLogs))
	for date, l := range s.HealthLogs {
		out.HealthLogs[date] = l
	}
	out.HabitStacks = append([]HabitStack(nil), s.HabitStacks...)
	out.CustomBasics = append([]TaskItem(nil), s.CustomBasics...)

	return &out
}

// CurrentBasics returns the basics list in effect: the shortened survival
// set when survival mode is on, otherwise the user's custom list. A nil
// custom list means the defaults are in use; an empty one means the user
// removed everything and gets exactly that.
func CurrentBasics(s *AppState) []TaskItem {
	if s.Settings.SurvivalMode {
		return SurvivalModeBasics()
	}
	if s.CustomBasics != nil {
		return s.CustomBasics
	}
	return DefaultDailyBasics()
}

// FindTask looks up a task id in the current basics and focus lists.
// Stale ids (from deleted tasks) are not found; they are tolerated in
// history but never resolved.
func FindTask(s *AppState, id string) (TaskItem, bool) {
	for _, t := range CurrentBasics(s) {
		if t.ID == id {
			return t, true
		}
	}
	for _, t := range s.FocusTasks {
		if t.ID == id {
			return t, true
		}
	}
	return TaskItem{}, false
}
