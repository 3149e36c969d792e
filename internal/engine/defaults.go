package engine

// Default XP awards per action kind.
const (
	BasicTaskXP = 1
	FocusTaskXP = 2
	WinXP       = 1
	CheckInXP   = 2
)

// DefaultDailyBasics is the standard five-item daily essentials set.
// Ids are fixed so history stays meaningful across resets and templates.
func DefaultDailyBasics() []TaskItem {
	return []TaskItem{
		{ID: "basic_meal", Text: "Ate at least one meal", Category: CategoryBasic, XPValue: BasicTaskXP},
		{ID: "basic_hygiene", Text: "Basic hygiene (shower/face)", Category: CategoryBasic, XPValue: BasicTaskXP},
		{ID: "basic_nature", Text: "5 min outside OR open window", Category: CategoryBasic, XPValue: BasicTaskXP},
		{ID: "basic_water", Text: "Drank water", Category: CategoryBasic, XPValue: BasicTaskXP},
		{ID: "basic_meds", Text: "Took medication", Category: CategoryBasic, XPValue: BasicTaskXP},
	}
}

// SurvivalModeBasics is the reduced set shown while survival mode is on.
func SurvivalModeBasics() []TaskItem {
	return []TaskItem{
		{ID: "basic_meal", Text: "Ate something", Category: CategoryBasic, XPValue: BasicTaskXP},
		{ID: "basic_water", Text: "Drank water", Category: CategoryBasic, XPValue: BasicTaskXP},
		{ID: "basic_rest", Text: "Rest for 5 mins", Category: CategoryBasic, XPValue: BasicTaskXP},
	}
}

// DefaultParts seeds a first-run state with four commonly met parts.
func DefaultParts() []Part {
	return []Part{
		{ID: "p_anxious", Name: "The Worrier", Role: RoleManager, Description: "Tries to keep me safe by predicting bad outcomes."},
		{ID: "p_critic", Name: "The Critic", Role: RoleManager, Description: "Pushes me hard so I dont fail."},
		{ID: "p_tired", Name: "The Tired One", Role: RoleExile, Description: "Holds my exhaustion and overwhelm."},
		{ID: "p_distractor", Name: "The Distractor", Role: RoleFirefighter, Description: "Numbs feelings with scrolling or zoning out."},
	}
}

// SeedState returns the default first-run state.
func SeedState() *AppState {
	return &AppState{
		TotalXP:        0,
		CurrentLevel:   LevelSurvivor,
		DailyHistory:   map[string][]string{},
		FocusTasks:     []TaskItem{},
		Wins:           []WinEntry{},
		Settings:       UserSettings{SurvivalMode: false, Name: "Friend", Theme: ThemeLight},
		Badges:         []string{},
		Parts:          DefaultParts(),
		CheckIns:       []PartsCheckIn{},
		HealthLogs:     map[string]HealthLog{},
		HabitStacks:    []HabitStack{},
		CustomBasics:   DefaultDailyBasics(),
		ActiveTemplate: TemplateStandard,
		PrestigeLevel:  0,
	}
}

// Hydrate normalizes a loaded state in place so downstream code never
// needs per-field fallbacks. It fills fields absent from older stored
// records, clamps out-of-range values, and discards the stored level
// cache in favor of the derived value.
func Hydrate(s *AppState) {
	if s.TotalXP < 0 {
		s.TotalXP = 0
	}
	if s.PrestigeLevel < 0 {
		s.PrestigeLevel = 0
	}
	if s.DailyHistory == nil {
		s.DailyHistory = map[string][]string{}
	}
	if s.FocusTasks == nil {
		s.FocusTasks = []TaskItem{}
	}
	if s.Wins == nil {
		s.Wins = []WinEntry{}
	}
	if s.Badges == nil {
		s.Badges = []string{}
	}
	// Only a missing field gets the seed; an empty list is a deliberate
	// deletion and stays empty.
	if s.Parts == nil {
		s.Parts = DefaultParts()
	}
	if s.CheckIns == nil {
		s.CheckIns = []PartsCheckIn{}
	}
	if s.HealthLogs == nil {
		s.HealthLogs = map[string]HealthLog{}
	}
	if s.HabitStacks == nil {
		s.HabitStacks = []HabitStack{}
	}
	if s.CustomBasics == nil {
		s.CustomBasics = DefaultDailyBasics()
	}
	if s.ActiveTemplate == "" {
		s.ActiveTemplate = TemplateStandard
	}
	if s.Settings.Name == "" {
		s.Settings.Name = "Friend"
	}
	if !s.Settings.Theme.IsValid() {
		s.Settings.Theme = ThemeLight
	}
	for i := range s.CheckIns {
		s.CheckIns[i].Intensity = clampIntensity(s.CheckIns[i].Intensity)
	}
	s.CurrentLevel = CurrentLevel(s.TotalXP)
}
