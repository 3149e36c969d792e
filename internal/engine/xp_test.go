package engine

import "testing"

func TestLevelPartition(t *testing.T) {
	// The four ranges must partition [0,500] with no gaps or overlaps.
	counts := map[LevelName]int{}
	for xp := 0; xp <= CycleSize; xp++ {
		l := LevelForXP(xp)
		if !l.IsValid() {
			t.Fatalf("LevelForXP(%d)=%q, not a valid level", xp, l)
		}
		counts[l]++
	}
	want := map[LevelName]int{
		LevelSurvivor:   51,  // 0-50
		LevelCurious:    100, // 51-150
		LevelCourageous: 150, // 151-300
		LevelConnected:  200, // 301-500
	}
	for l, n := range want {
		if counts[l] != n {
			t.Fatalf("level %s covers %d values, want %d", l, counts[l], n)
		}
	}
}

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want LevelName
	}{
		{0, LevelSurvivor},
		{50, LevelSurvivor},
		{51, LevelCurious},
		{150, LevelCurious},
		{151, LevelCourageous},
		{300, LevelCourageous},
		{301, LevelConnected},
		{500, LevelConnected},
		{-10, LevelSurvivor}, // clamped
		{9999, LevelConnected},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Fatalf("LevelForXP(%d)=%s, want %s", tc.xp, got, tc.want)
		}
	}
}

func TestCycleProgress(t *testing.T) {
	if got := CycleProgress(0); got != 0 {
		t.Fatalf("CycleProgress(0)=%d, want 0", got)
	}
	if got := CycleProgress(499); got != 499 {
		t.Fatalf("CycleProgress(499)=%d, want 499", got)
	}
	if got := CycleProgress(500); got != 0 {
		t.Fatalf("CycleProgress(500)=%d, want 0", got)
	}
	if got := CycleProgress(1234); got != 234 {
		t.Fatalf("CycleProgress(1234)=%d, want 234", got)
	}
	if got := CycleProgress(-5); got != 0 {
		t.Fatalf("CycleProgress(-5)=%d, want 0", got)
	}
}

func TestCanPrestigeBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want bool
	}{
		{0, false},
		{449, false},
		{450, true},
		{499, true},
		{500, true}, // full cycle banked, boundary counts
		{949, false},
		{950, true},
		{1000, true},
	}
	for _, tc := range cases {
		if got := CanPrestige(tc.xp); got != tc.want {
			t.Fatalf("CanPrestige(%d)=%v, want %v", tc.xp, got, tc.want)
		}
	}
}

func TestPrestigePreservesLifetimeXP(t *testing.T) {
	s := SeedState()
	s.TotalXP = 480
	s.Badges = []string{"first_step"}

	if got := Prestige(s); got != 1 {
		t.Fatalf("Prestige()=%d, want 1", got)
	}
	if s.TotalXP != 480 {
		t.Fatalf("TotalXP=%d after prestige, want 480", s.TotalXP)
	}
	if len(s.Badges) != 1 {
		t.Fatalf("badges touched by prestige: %v", s.Badges)
	}
	if got := Prestige(s); got != 2 {
		t.Fatalf("second Prestige()=%d, want 2", got)
	}
}
