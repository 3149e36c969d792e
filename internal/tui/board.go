package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattrebelskey/IFS-app/internal/app"
)

func RunBoard(container *app.Container, out io.Writer) error {
	m := newBoardModel(container)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
