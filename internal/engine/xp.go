package engine

const (
	// CycleSize is the XP span of one full cycle. Progress within the
	// current cycle is always totalXP % CycleSize; lifetime XP is never
	// reset.
	CycleSize = 500

	// PrestigeThreshold is the cycle progress at which the final-stretch
	// prestige window opens.
	PrestigeThreshold = 450
)

// Inclusive upper bounds of each level within a cycle.
const (
	survivorMaxXP   = 50
	curiousMaxXP    = 150
	courageousMaxXP = 300
)

// LevelForXP maps cycle progress to a level name. Callers pass
// pre-normalized cycle XP (totalXP % CycleSize); out-of-range values are
// clamped rather than rejected.
func LevelForXP(cycleXP int) LevelName {
	switch {
	case cycleXP <= survivorMaxXP:
		return LevelSurvivor
	case cycleXP <= curiousMaxXP:
		return LevelCurious
	case cycleXP <= courageousMaxXP:
		return LevelCourageous
	default:
		return LevelConnected
	}
}

// CycleProgress returns progress within the current cycle.
func CycleProgress(totalXP int) int {
	if totalXP < 0 {
		return 0
	}
	return totalXP % CycleSize
}

// CurrentLevel derives the level from lifetime XP. The stored
// currentLevel field is never consulted.
func CurrentLevel(totalXP int) LevelName {
	return LevelForXP(CycleProgress(totalXP))
}

// CanPrestige reports whether the final-stretch window is open. Landing
// exactly on a cycle boundary still counts once a full cycle is banked
// (round-cap rule: 450 through the 500 boundary inclusive).
func CanPrestige(totalXP int) bool {
	if totalXP < 0 {
		return false
	}
	m := totalXP % CycleSize
	if m >= PrestigeThreshold {
		return true
	}
	return m == 0 && totalXP >= CycleSize
}

// Prestige marks a completed cycle. Lifetime XP, badges and history are
// untouched; only the prestige counter moves.
func Prestige(s *AppState) int {
	s.PrestigeLevel++
	return s.PrestigeLevel
}
