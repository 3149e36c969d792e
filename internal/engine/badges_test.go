package engine

import (
	"testing"
	"time"
)

func TestEvaluateBadgesFirstStep(t *testing.T) {
	s := SeedState()
	// The seed ships 4 default parts, so befriender is already true.
	newly := EvaluateBadges(s, BadgeCatalog())
	if containsID(newly, "first_step") {
		t.Fatalf("first_step unlocked at 0 XP")
	}

	s.TotalXP = 1
	newly = EvaluateBadges(s, BadgeCatalog())
	if !containsID(newly, "first_step") {
		t.Fatalf("first_step not unlocked at 1 XP, got %v", newly)
	}
}

func TestEvaluateBadgesMonotonic(t *testing.T) {
	s := SeedState()
	for i := 0; i < 5; i++ {
		if _, err := AddCheckIn(s, "2024-01-01", []string{"p_critic"}, "", 5); err != nil {
			t.Fatalf("AddCheckIn: %v", err)
		}
	}
	newly := EvaluateBadges(s, BadgeCatalog())
	if !containsID(newly, "parts_peacemaker") {
		t.Fatalf("parts_peacemaker not unlocked, got %v", newly)
	}

	// Removing the trigger must not revoke the badge.
	s.CheckIns = []PartsCheckIn{}
	newly = EvaluateBadges(s, BadgeCatalog())
	if len(newly) != 0 {
		t.Fatalf("unexpected re-unlocks: %v", newly)
	}
	if !containsID(s.Badges, "parts_peacemaker") {
		t.Fatalf("parts_peacemaker revoked: %v", s.Badges)
	}
}

func TestEvaluateBadgesStreaks(t *testing.T) {
	s := SeedState()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.DailyHistory[start.AddDate(0, 0, i).Format(dayFormat)] = successfulDay()
	}
	EvaluateBadges(s, BadgeCatalog())
	if !containsID(s.Badges, "streak_3") {
		t.Fatalf("streak_3 not unlocked: %v", s.Badges)
	}
	if containsID(s.Badges, "consistency_champ") {
		t.Fatalf("consistency_champ unlocked at streak 3")
	}

	for i := 3; i < 7; i++ {
		s.DailyHistory[start.AddDate(0, 0, i).Format(dayFormat)] = successfulDay()
	}
	EvaluateBadges(s, BadgeCatalog())
	if !containsID(s.Badges, "consistency_champ") {
		t.Fatalf("consistency_champ not unlocked at streak 7: %v", s.Badges)
	}
}

func TestEvaluateBadgesSelfEnergyUniqueDays(t *testing.T) {
	s := SeedState()
	for _, date := range []string{"2024-01-01", "2024-01-01", "2024-01-02", "2024-01-03"} {
		if _, err := AddCheckIn(s, date, []string{"p_tired"}, "", 5); err != nil {
			t.Fatalf("AddCheckIn: %v", err)
		}
	}
	EvaluateBadges(s, BadgeCatalog())
	if !containsID(s.Badges, "self_energy") {
		t.Fatalf("self_energy not unlocked on 3 unique days: %v", s.Badges)
	}
}

func TestEvaluateBadgesWeekWarrior(t *testing.T) {
	s := SeedState()
	monday := WeekStart(time.Now())
	for i := 0; i < 7; i++ {
		s.DailyHistory[monday.AddDate(0, 0, i).Format(dayFormat)] = successfulDay()
	}
	EvaluateBadges(s, BadgeCatalog())
	if !containsID(s.Badges, "week_warrior") {
		t.Fatalf("week_warrior not unlocked at exactly 60%%: %v", s.Badges)
	}
}

func TestEvaluateBadgesCompassionCore(t *testing.T) {
	s := SeedState()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		// Recorded days count even when not successful.
		s.DailyHistory[start.AddDate(0, 0, i*2).Format(dayFormat)] = []string{"basic_meal"}
	}
	EvaluateBadges(s, BadgeCatalog())
	if !containsID(s.Badges, "compassion_core") {
		t.Fatalf("compassion_core not unlocked at 10 recorded days: %v", s.Badges)
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
