package engine

// ToggleResult describes the effect of a task toggle.
type ToggleResult struct {
	TaskID      string    `json:"taskId"`
	Date        string    `json:"date"`
	Completed   bool      `json:"completed"` // true when the task is now completed
	XPChange    int       `json:"xpChange"`
	TotalXP     int       `json:"totalXp"`
	LevelBefore LevelName `json:"levelBefore"`
	LevelAfter  LevelName `json:"levelAfter"`
	LevelUp     bool      `json:"levelUp"`
}

// ToggleTask flips membership of taskID in the day's completion record.
// Completing adds xpValue to lifetime XP; un-completing subtracts it,
// clamped so TotalXP never drops below zero. This is the only mutation
// path for task XP; history is never re-scored afterwards.
func ToggleTask(s *AppState, taskID, date string, xpValue int) ToggleResult {
	if xpValue < 0 {
		xpValue = 0
	}
	if s.DailyHistory == nil {
		s.DailyHistory = map[string][]string{}
	}

	before := CurrentLevel(s.TotalXP)
	day := s.DailyHistory[date]

	completed := false
	for _, id := range day {
		if id == taskID {
			completed = true
			break
		}
	}

	var change int
	if completed {
		kept := make([]string, 0, len(day))
		for _, id := range day {
			if id != taskID {
				kept = append(kept, id)
			}
		}
		// The date key stays even when its last task is removed; the day
		// still counts as a recorded day.
		s.DailyHistory[date] = kept
		change = -xpValue
	} else {
		s.DailyHistory[date] = append(day, taskID)
		change = xpValue
	}

	s.TotalXP += change
	if s.TotalXP < 0 {
		s.TotalXP = 0
	}

	after := CurrentLevel(s.TotalXP)
	return ToggleResult{
		TaskID:      taskID,
		Date:        date,
		Completed:   !completed,
		XPChange:    change,
		TotalXP:     s.TotalXP,
		LevelBefore: before,
		LevelAfter:  after,
		LevelUp:     levelRank(after) > levelRank(before),
	}
}

func levelRank(l LevelName) int {
	switch l {
	case LevelCurious:
		return 1
	case LevelCourageous:
		return 2
	case LevelConnected:
		return 3
	default:
		return 0
	}
}
