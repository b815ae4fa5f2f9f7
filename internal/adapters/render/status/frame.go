package status

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// frame is a program that draws once and quits, so static output shares the
// styles and layout code of the live views.
type frame struct {
	compose func(styles) string
	styles  styles
}

func (f frame) Init() tea.Cmd { return tea.Quit }

func (f frame) Update(tea.Msg) (tea.Model, tea.Cmd) { return f, nil }

func (f frame) View() string { return f.compose(f.styles) }

func render(compose func(styles) string) (string, error) {
	p := tea.NewProgram(
		frame{compose: compose, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	drawn, ok := final.(frame)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}
	return drawn.View(), nil
}
