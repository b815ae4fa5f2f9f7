package status

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FetchProgressMsg reports how many items a paged read has loaded so far.
type FetchProgressMsg int

type fetchDoneMsg struct {
	err error
}

type fetchModel struct {
	spinner spinner.Model
	styles  styles
	label   string
	loaded  int
	run     tea.Cmd
	err     error
	done    bool
}

func newFetchModel(label string, run tea.Cmd) fetchModel {
	return fetchModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		styles: newStyles(),
		label:  label,
		run:    run,
	}
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case FetchProgressMsg:
		m.loaded = int(msg)
		return m, nil
	case fetchDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchModel) View() string {
	if m.done {
		return ""
	}
	line := m.spinner.View() + " " + m.label
	if m.loaded > 0 {
		line += " " + m.styles.meta.Render(printer.Sprintf("(%d carregados)", m.loaded))
	}
	return line
}

// Fetch keeps a spinner on output while fetch runs and returns its error.
// Paged reads report their running total through progress. Only reads go
// through here; writes are never hidden behind a spinner.
func Fetch(ctx context.Context, output io.Writer, label string, fetch func(ctx context.Context, progress func(loaded int)) error) error {
	var p *tea.Program
	run := func() tea.Msg {
		return fetchDoneMsg{err: fetch(ctx, func(loaded int) {
			p.Send(FetchProgressMsg(loaded))
		})}
	}
	p = tea.NewProgram(
		newFetchModel(label, run),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	result, ok := final.(fetchModel)
	if !ok {
		return ErrUnexpectedRenderModel
	}
	return result.err
}
