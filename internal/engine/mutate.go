package engine

import (
	"strings"

	"github.com/google/uuid"
)

const (
	intensityMin = 1
	intensityMax = 10
)

func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

func clampIntensity(v int) int {
	if v < intensityMin {
		return intensityMin
	}
	if v > intensityMax {
		return intensityMax
	}
	return v
}

// AddBasicTask appends a custom daily basic.
func AddBasicTask(s *AppState, text string) (TaskItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TaskItem{}, invalidf("text", "task text is required")
	}
	t := TaskItem{ID: newID("basic_custom"), Text: text, Category: CategoryBasic, XPValue: BasicTaskXP}
	// nil means the defaults are still in use, so they get materialized
	// before the first customization. An empty list stays empty.
	if s.CustomBasics == nil {
		s.CustomBasics = DefaultDailyBasics()
	}
	s.CustomBasics = append(s.CustomBasics, t)
	return t, nil
}

// DeleteBasicTask removes a basic by id. History entries for the id stay
// banked; the id simply stops rendering.
func DeleteBasicTask(s *AppState, id string) {
	if s.CustomBasics == nil {
		s.CustomBasics = DefaultDailyBasics()
	}
	kept := make([]TaskItem, 0, len(s.CustomBasics))
	for _, t := range s.CustomBasics {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.CustomBasics = kept
}

// ReorderBasics moves the basic at from to position to.
func ReorderBasics(s *AppState, from, to int) error {
	if s.CustomBasics == nil {
		s.CustomBasics = DefaultDailyBasics()
	}
	n := len(s.CustomBasics)
	if from < 0 || from >= n {
		return invalidf("from", "index %d out of range [0,%d)", from, n)
	}
	if to < 0 || to >= n {
		return invalidf("to", "index %d out of range [0,%d)", to, n)
	}
	basics := s.CustomBasics
	moved := basics[from]
	basics = append(basics[:from], basics[from+1:]...)
	basics = append(basics[:to], append([]TaskItem{moved}, basics[to:]...)...)
	s.CustomBasics = basics
	return nil
}

// AddFocusTask appends a weekly-scope focus task.
func AddFocusTask(s *AppState, text string) (TaskItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TaskItem{}, invalidf("text", "task text is required")
	}
	t := TaskItem{ID: newID("focus"), Text: text, Category: CategoryFocus, XPValue: FocusTaskXP}
	s.FocusTasks = append(s.FocusTasks, t)
	return t, nil
}

func DeleteFocusTask(s *AppState, id string) {
	kept := make([]TaskItem, 0, len(s.FocusTasks))
	for _, t := range s.FocusTasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.FocusTasks = kept
}

// AddWin records a journal entry, newest first, and awards WinXP.
// Either text or an attachment is required.
func AddWin(s *AppState, date, text string, typ JournalType, mediaData string) (WinEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" && mediaData == "" {
		return WinEntry{}, invalidf("text", "a win needs text or an attachment")
	}
	if !typ.IsValid() {
		typ = JournalText
	}
	w := WinEntry{ID: newID("win"), Date: date, Text: text, Type: typ, MediaData: mediaData}
	s.Wins = append([]WinEntry{w}, s.Wins...)
	s.TotalXP += WinXP
	return w, nil
}

// DeleteWin removes a win by id. XP already earned stays banked.
func DeleteWin(s *AppState, id string) {
	kept := make([]WinEntry, 0, len(s.Wins))
	for _, w := range s.Wins {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.Wins = kept
}

func AddPart(s *AppState, name string, role PartRole, description string) (Part, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Part{}, invalidf("name", "part name is required")
	}
	if !role.IsValid() {
		role = DefaultPartRole
	}
	p := Part{ID: newID("part"), Name: name, Role: role, Description: strings.TrimSpace(description)}
	s.Parts = append(s.Parts, p)
	return p, nil
}

func DeletePart(s *AppState, id string) {
	kept := make([]Part, 0, len(s.Parts))
	for _, p := range s.Parts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.Parts = kept
}

// AddCheckIn records a parts check-in, newest first, and awards CheckInXP.
// At least one active part is required; intensity is clamped to [1,10].
func AddCheckIn(s *AppState, date string, activeParts []string, notes string, intensity int) (PartsCheckIn, error) {
	if len(activeParts) == 0 {
		return PartsCheckIn{}, invalidf("activeParts", "select at least one part")
	}
	c := PartsCheckIn{
		ID:          newID("checkin"),
		Date:        date,
		ActiveParts: append([]string(nil), activeParts...),
		Notes:       notes,
		Intensity:   clampIntensity(intensity),
	}
	s.CheckIns = append([]PartsCheckIn{c}, s.CheckIns...)
	s.TotalXP += CheckInXP
	return c, nil
}

func SetSurvivalMode(s *AppState, on bool) {
	s.Settings.SurvivalMode = on
}

func SetName(s *AppState, name string) {
	s.Settings.Name = strings.TrimSpace(name)
}

func SetTheme(s *AppState, theme Theme) error {
	if !theme.IsValid() {
		return invalidf("theme", "unknown theme %q", theme)
	}
	s.Settings.Theme = theme
	return nil
}

// RecordHealthLog upserts the day's health log.
func RecordHealthLog(s *AppState, log HealthLog) error {
	if strings.TrimSpace(log.Date) == "" {
		return invalidf("date", "date is required")
	}
	if s.HealthLogs == nil {
		s.HealthLogs = map[string]HealthLog{}
	}
	s.HealthLogs[log.Date] = log
	return nil
}

func AddHabitStack(s *AppState, cue, action string) (HabitStack, error) {
	cue = strings.TrimSpace(cue)
	action = strings.TrimSpace(action)
	if cue == "" || action == "" {
		return HabitStack{}, invalidf("habitStack", "cue and action are required")
	}
	h := HabitStack{ID: newID("stack"), Cue: cue, Action: action}
	s.HabitStacks = append(s.HabitStacks, h)
	return h, nil
}

func DeleteHabitStack(s *AppState, id string) {
	kept := make([]HabitStack, 0, len(s.HabitStacks))
	for _, h := range s.HabitStacks {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	s.HabitStacks = kept
}
