package status

import (
	"github.com/camaradigital/camara-cli/internal/application"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// VotingMsg carries a new voting snapshot into a running WatchModel.
type VotingMsg application.VotingSnapshot

// BoardMsg carries a refreshed confirmation board into a running WatchModel.
type BoardMsg struct {
	Target application.ConfirmationTarget
	Board  domain.ConfirmationBoard
}

type ConnMsg domain.ConnState

// StopMsg ends the watch; Err is reported by the caller after the program exits.
type StopMsg struct {
	Err error
}

// WatchModel keeps the latest voting state (and, for the presiding officer,
// the confirmation board) on screen while realtime events arrive.
type WatchModel struct {
	spinner spinner.Model
	styles  styles
	voting  *application.VotingSnapshot
	board   *BoardMsg
	conn    domain.ConnState
	err     error
	done    bool
}

func NewWatchModel() WatchModel {
	return WatchModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		styles: newStyles(),
		conn:   domain.ConnDisconnected,
	}
}

func (m WatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case VotingMsg:
		snapshot := application.VotingSnapshot(msg)
		m.voting = &snapshot
		return m, nil
	case BoardMsg:
		m.board = &msg
		return m, nil
	case ConnMsg:
		m.conn = domain.ConnState(msg)
		return m, nil
	case StopMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m WatchModel) View() string {
	if m.done {
		return ""
	}

	opts := RenderOptions{Conn: m.conn}
	var sections []string
	if m.voting == nil && m.board == nil {
		sections = append(sections, m.spinner.View()+" Carregando...")
	}
	if m.voting != nil {
		sections = append(sections, votingView(*m.voting, opts, m.styles))
	}
	if m.board != nil {
		board := boardView(m.board.Target, m.board.Board, m.styles)
		if m.voting == nil {
			board = lipgloss.JoinVertical(lipgloss.Left, m.styles.meta.Render("tempo real: "+connLabel(m.conn)), board)
		}
		sections = append(sections, m.styles.section.Render(board))
	}
	if m.conn == domain.ConnReconnecting || m.conn == domain.ConnConnecting {
		sections = append(sections, m.styles.section.Render(m.spinner.View()+" "+connLabel(m.conn)+"..."))
	}
	sections = append(sections, m.styles.section.Render(m.styles.empty.Render("q para sair")))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Err is the error passed with StopMsg, if any.
func (m WatchModel) Err() error {
	return m.err
}
