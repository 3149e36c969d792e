package engine

import (
	"math"
	"sort"
	"strings"
	"time"
)

// SuccessfulDayThreshold is the number of completed basics that makes a
// day count toward a streak (roughly 60% of the five-item default set).
const SuccessfulDayThreshold = 3

const dayFormat = "2006-01-02"

const basicIDPrefix = "basic_"

func countBasics(ids []string) int {
	n := 0
	for _, id := range ids {
		if strings.HasPrefix(id, basicIDPrefix) {
			n++
		}
	}
	return n
}

// MaxStreak returns the longest run of consecutive successful days in the
// history. Only successful days are walked, so a single missed day breaks
// a streak via the date-to-date gap. Zero successful days yields 0.
func MaxStreak(dailyHistory map[string][]string) int {
	dates := make([]string, 0, len(dailyHistory))
	for d := range dailyHistory {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	maxStreak := 0
	current := 0
	var last time.Time
	haveLast := false

	for _, dateStr := range dates {
		if countBasics(dailyHistory[dateStr]) < SuccessfulDayThreshold {
			continue
		}
		day, err := time.Parse(dayFormat, dateStr)
		if err != nil {
			continue
		}
		if !haveLast {
			current = 1
		} else {
			gap := int(math.Round(day.Sub(last).Hours() / 24))
			if gap == 1 {
				current++
			} else if gap > 1 {
				current = 1
			}
		}
		last = day
		haveLast = true
		if current > maxStreak {
			maxStreak = current
		}
	}
	return maxStreak
}

// WeekStart returns midnight of the most recent Monday (Sunday rolls back
// six days).
func WeekStart(now time.Time) time.Time {
	wd := int(now.Weekday())
	if wd == 0 {
		wd = 7
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -(wd - 1))
}

// WeeklyCompletion returns the completed fraction of the Monday-Sunday
// window containing now. Denominator is current basics x 7 plus the focus
// list; an empty task set yields 0 rather than dividing by zero.
func WeeklyCompletion(s *AppState, now time.Time) float64 {
	possible := len(CurrentBasics(s))*7 + len(s.FocusTasks)
	if possible == 0 {
		return 0
	}

	focus := make(map[string]bool, len(s.FocusTasks))
	for _, t := range s.FocusTasks {
		focus[t.ID] = true
	}

	monday := WeekStart(now)
	completed := 0
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i).Format(dayFormat)
		for _, id := range s.DailyHistory[day] {
			if strings.HasPrefix(id, basicIDPrefix) || focus[id] {
				completed++
			}
		}
	}
	return float64(completed) / float64(possible)
}
