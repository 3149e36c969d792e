package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/engine"
)

type boardModel struct {
	container *app.Container

	width  int
	height int

	state *engine.AppState
	date  string

	selected int
	lastLog  string
}

type refreshedMsg struct {
	state *engine.AppState
}

type toggledMsg struct {
	res       engine.ToggleResult
	newBadges []string
	err       error
}

func newBoardModel(container *app.Container) boardModel {
	return boardModel{
		container: container,
		date:      app.Today(),
		lastLog:   "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{state: m.container.Snapshot()}
	}
}

func (m boardModel) toggleCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		res, newBadges, err := m.container.ToggleTask(taskID, m.date)
		return toggledMsg{res: res, newBadges: newBadges, err: err}
	}
}

// rows lists today's checklist: basics first, then focus tasks.
func (m boardModel) rows() []engine.TaskItem {
	if m.state == nil {
		return nil
	}
	var out []engine.TaskItem
	out = append(out, engine.CurrentBasics(m.state)...)
	out = append(out, m.state.FocusTasks...)
	return out
}

func (m boardModel) doneToday(taskID string) bool {
	if m.state == nil {
		return false
	}
	for _, id := range m.state.DailyHistory[m.date] {
		if id == taskID {
			return true
		}
	}
	return false
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case refreshedMsg:
		m.state = msg.state
		if n := len(m.rows()); m.selected >= n && n > 0 {
			m.selected = n - 1
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.Completed {
			m.lastLog = fmt.Sprintf("Done: +%d XP (total %d)", msg.res.XPChange, msg.res.TotalXP)
		} else {
			m.lastLog = fmt.Sprintf("Undone: %d XP (total %d)", msg.res.XPChange, msg.res.TotalXP)
		}
		if msg.res.LevelUp {
			m.lastLog += fmt.Sprintf(" — now %s", msg.res.LevelAfter)
		}
		if len(msg.newBadges) > 0 {
			m.lastLog += " 🏆 " + strings.Join(msg.newBadges, ", ")
		}
		return m, m.refreshCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.lastLog = "Refreshing…"
			return m, m.refreshCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows())-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ", "c":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			task := rows[m.selected]
			return m, m.toggleCmd(task.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.state == nil {
		return "Healing Journey — loading…"
	}
	cycleXP := engine.CycleProgress(m.state.TotalXP)
	bar := progressBar(cycleXP, engine.CycleSize, 30)
	prestige := ""
	if m.state.PrestigeLevel > 0 {
		prestige = fmt.Sprintf(" | Journey %d", m.state.PrestigeLevel+1)
	}
	return fmt.Sprintf("Healing Journey | %s | %s | XP %d %s%s",
		m.state.Settings.Name, m.state.CurrentLevel, m.state.TotalXP, bar, prestige)
}

func (m boardModel) renderSidebar() string {
	if m.state == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Streak: %d days", engine.MaxStreak(m.state.DailyHistory)))
	lines = append(lines, fmt.Sprintf("- This week: %.0f%%", engine.WeeklyCompletion(m.state, time.Now())*100))
	lines = append(lines, fmt.Sprintf("- Badges: %d/%d", len(m.state.Badges), len(engine.BadgeCatalog())))
	if m.state.Settings.SurvivalMode {
		lines = append(lines, "- Survival mode on")
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter/space: toggle")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.state == nil {
		return "Loading…"
	}
	var out []string
	out = append(out, fmt.Sprintf("Today (%s)", m.date))

	rows := m.rows()
	if len(rows) == 0 {
		out = append(out, "(no tasks configured)")
		return strings.Join(out, "\n")
	}
	basicsCount := len(engine.CurrentBasics(m.state))
	for i, task := range rows {
		if i == basicsCount {
			out = append(out, "")
			out = append(out, "Focus")
		}
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if m.doneToday(task.ID) {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s (xp=%d)", cursor, mark, task.Text, task.XPValue))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
