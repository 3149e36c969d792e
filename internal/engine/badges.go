package engine

import "time"

// Badge is an unlockable achievement. The catalog is static configuration;
// only the set of unlocked ids lives in AppState.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Condition   func(s *AppState) bool
}

// WeekWarriorRatio is the weekly completion that unlocks week_warrior.
const WeekWarriorRatio = 0.6

// BadgeCatalog returns every badge with its unlock predicate. Predicates
// are pure reads of AppState; unlocking is handled by EvaluateBadges.
func BadgeCatalog() []Badge {
	return []Badge{
		{
			ID: "first_step", Name: "First Step", Description: "Earned your first XP", Icon: "🌱",
			Condition: func(s *AppState) bool { return s.TotalXP >= 1 },
		},
		{
			ID: "survivor_graduate", Name: "Curious Explorer", Description: "Reached Level 2: Curious", Icon: "🔭",
			Condition: func(s *AppState) bool { return s.TotalXP > survivorMaxXP },
		},
		{
			ID: "streak_3", Name: "3-Day Streak", Description: "Complete daily basics 3 days in a row", Icon: "⭐",
			Condition: func(s *AppState) bool { return MaxStreak(s.DailyHistory) >= 3 },
		},
		{
			ID: "consistency_champ", Name: "Consistency Champion", Description: "7-day streak of daily basics", Icon: "🏆",
			Condition: func(s *AppState) bool { return MaxStreak(s.DailyHistory) >= 7 },
		},
		{
			ID: "week_warrior", Name: "Week Warrior", Description: "Complete 60% of all tasks in a week", Icon: "🔥",
			Condition: func(s *AppState) bool { return WeeklyCompletion(s, time.Now()) >= WeekWarriorRatio },
		},
		{
			ID: "parts_peacemaker", Name: "Parts Peacemaker", Description: "Completed 5 Parts Check-ins", Icon: "🧩",
			Condition: func(s *AppState) bool { return len(s.CheckIns) >= 5 },
		},
		{
			ID: "befriender", Name: "Befriender", Description: "Identified and named 3 internal parts", Icon: "🤝",
			Condition: func(s *AppState) bool { return len(s.Parts) >= 3 },
		},
		{
			ID: "self_energy", Name: "Self-Energy", Description: "Parts check-ins on 3 different days", Icon: "☀️",
			Condition: func(s *AppState) bool {
				days := map[string]bool{}
				for _, c := range s.CheckIns {
					days[c.Date] = true
				}
				return len(days) >= 3
			},
		},
		{
			ID: "compassion_core", Name: "Compassion Core", Description: "Use the app for 10 days", Icon: "💖",
			Condition: func(s *AppState) bool { return len(s.DailyHistory) >= 10 },
		},
	}
}

// EvaluateBadges checks every catalog badge not yet unlocked and appends
// the ones whose condition now holds. Unlocks are monotonic: a badge is
// never revoked, even if its trigger later becomes false. Returns the
// newly unlocked ids.
func EvaluateBadges(s *AppState, catalog []Badge) []string {
	unlocked := make(map[string]bool, len(s.Badges))
	for _, id := range s.Badges {
		unlocked[id] = true
	}

	var newly []string
	for _, b := range catalog {
		if unlocked[b.ID] {
			continue
		}
		if b.Condition(s) {
			s.Badges = append(s.Badges, b.ID)
			newly = append(newly, b.ID)
		}
	}
	return newly
}

// BadgeByID looks up a catalog badge.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range BadgeCatalog() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
