package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/camaradigital/camara-cli/internal/application"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
	barWidth       = 24
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

type RenderOptions struct {
	Now  time.Time
	Conn domain.ConnState
}

func RenderActiveSession(active application.ActiveSession) (string, error) {
	return render(func(s styles) string {
		return activeSessionView(active, s)
	})
}

func RenderSessions(sessions []domain.Session, hasMore bool) (string, error) {
	return render(func(s styles) string {
		return sessionsView(sessions, hasMore, s)
	})
}

func RenderProjects(session domain.Session, projects []domain.Project) (string, error) {
	return render(func(s styles) string {
		return projectsView(session, projects, s)
	})
}

func RenderVoting(snapshot application.VotingSnapshot, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return votingView(snapshot, opts, s)
	})
}

func RenderBoard(target application.ConfirmationTarget, board domain.ConfirmationBoard) (string, error) {
	return render(func(s styles) string {
		return boardView(target, board, s)
	})
}

func RenderFinalSummary(project domain.Project, summary domain.FinalSummary) (string, error) {
	return render(func(s styles) string {
		return finalSummaryView(project, summary, s)
	})
}

func RenderIdentity(creds domain.Credentials, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return identityView(creds, opts, s)
	})
}

func activeSessionView(active application.ActiveSession, s styles) string {
	lines := []string{s.title.Render("Sessão em andamento")}
	switch {
	case active.Err != nil:
		lines = append(lines, s.warning.Render(domain.UserMessage(active.Err)))
	case active.Session == nil:
		lines = append(lines, s.empty.Render("Nenhuma sessão em andamento."))
	default:
		lines = append(lines, sessionLine(*active.Session, s))
		if desc := strings.TrimSpace(active.Session.Description); desc != "" {
			lines = append(lines, s.detail.Render(desc))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionsView(sessions []domain.Session, hasMore bool, s styles) string {
	lines := []string{
		s.title.Render("Sessões"),
		s.header.Render(fmt.Sprintf("sessões: %d", len(sessions))),
	}

	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("Nenhuma sessão encontrada."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, session := range sessions {
		lines = append(lines, sessionLine(session, s))
	}
	if hasMore {
		lines = append(lines, s.meta.Render("Há mais sessões; use --offset ou --all para carregar."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionLine(session domain.Session, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.name.Render(session.Name),
		" ",
		s.meta.Render(formatDate(session.Date)),
		" ",
		sessionStatusStyle(session.Status, s).Render("["+session.Status.Label()+"]"),
		" ",
		s.header.Render(string(session.ID)),
	)
}

func sessionStatusStyle(status domain.SessionStatus, s styles) lipgloss.Style {
	switch status {
	case domain.SessionInProgress:
		return s.success
	case domain.SessionCancelled:
		return s.warning
	default:
		return s.label
	}
}

func projectsView(session domain.Session, projects []domain.Project, s styles) string {
	heading := session.Name
	if strings.TrimSpace(heading) == "" {
		heading = string(session.ID)
	}
	lines := []string{
		s.title.Render("Projetos - " + heading),
		s.header.Render(fmt.Sprintf("projetos: %d", len(projects))),
	}

	if len(projects) == 0 {
		lines = append(lines, s.empty.Render("Nenhum projeto nesta sessão."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, project := range projects {
		parts := []string{
			lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.name.Render(project.Title),
				" ",
				projectStatusStyle(project.Status, s).Render("["+project.Status.Label()+"]"),
			),
			s.header.Render(string(project.ID)),
		}
		if author := strings.TrimSpace(project.AuthorName); author != "" {
			parts = append(parts, s.detail.Render("Autor: "+author))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func projectStatusStyle(status domain.ProjectStatus, s styles) lipgloss.Style {
	switch status {
	case domain.ProjectInVoting:
		return s.abstain
	case domain.ProjectApproved:
		return s.success
	case domain.ProjectRejected, domain.ProjectCancelled:
		return s.warning
	default:
		return s.label
	}
}

func votingView(snapshot application.VotingSnapshot, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Votação")}
	if snapshot.Session != nil {
		lines = append(lines, s.header.Render(snapshot.Session.Name))
	}
	if opts.Conn != "" {
		lines = append(lines, s.meta.Render("tempo real: "+connLabel(opts.Conn)))
	}

	switch snapshot.State {
	case application.VotingNoActiveSession, application.VotingNoProjectInVoting:
		lines = append(lines, s.empty.Render(snapshot.State.Label()+"."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	case application.VotingLoadingProject, application.VotingCheckingVote:
		lines = append(lines, s.meta.Render(snapshot.State.Label()+"..."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if snapshot.Project != nil {
		lines = append(lines, s.section.Render(s.name.Render(snapshot.Project.Title)))
		if desc := strings.TrimSpace(snapshot.Project.Description); desc != "" {
			lines = append(lines, s.detail.Render(desc))
		}
	}

	switch snapshot.State {
	case application.VotingReady, application.VotingSubmitting:
		lines = append(lines, s.section.Render(countdownLine(snapshot.Remaining, s)))
		lines = append(lines, s.label.Render(snapshot.State.Label()))
	case application.VotingAlreadyVoted:
		lines = append(lines, s.section.Render(s.success.Render("Você já votou neste projeto.")))
	case application.VotingVoted:
		msg := "Voto registrado"
		if snapshot.Choice != "" {
			msg += ": " + snapshot.Choice.Label()
		}
		lines = append(lines, s.section.Render(s.success.Render(msg)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func countdownLine(remaining time.Duration, s styles) string {
	if remaining <= 0 {
		return s.warning.Render("Tempo esgotado (o voto ainda é aceito)")
	}
	fraction := remaining.Seconds() / application.VotingWindow.Seconds()
	seconds := int(math.Ceil(remaining.Seconds()))
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render("tempo:"),
		" ",
		renderProgressBar(fraction, barWidth, s),
		" ",
		lipgloss.NewStyle().Foreground(interpolateColor(fraction, 0, 1)).Render(fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)),
	)
}

func connLabel(state domain.ConnState) string {
	switch state {
	case domain.ConnConnected:
		return "conectado"
	case domain.ConnConnecting:
		return "conectando"
	case domain.ConnReconnecting:
		return "reconectando"
	case domain.ConnFailed:
		return "falhou"
	default:
		return "desconectado"
	}
}

func boardView(target application.ConfirmationTarget, board domain.ConfirmationBoard, s styles) string {
	lines := []string{
		s.title.Render("Confirmação de votos"),
		s.header.Render(target.Session.Name),
		s.name.Render(target.Project.Title),
		s.section.Render(tallyLine(board.Tally, s)),
		s.section.Render(s.label.Render(fmt.Sprintf("Pendentes (%d)", len(board.Pending)))),
	}

	if len(board.Pending) == 0 {
		lines = append(lines, s.empty.Render("Nenhum voto pendente."))
	}
	for _, vote := range board.Pending {
		lines = append(lines, voteLine(vote, s))
	}

	lines = append(lines, s.section.Render(s.label.Render(fmt.Sprintf("Confirmados (%d)", len(board.Confirmed)))))
	if len(board.Confirmed) == 0 {
		lines = append(lines, s.empty.Render("Nenhum voto confirmado."))
	}
	for _, vote := range board.Confirmed {
		lines = append(lines, voteLine(vote, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func tallyLine(tally domain.VoteTally, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.yes.Render(fmt.Sprintf("Sim: %d", tally.Yes)),
		"  ",
		s.no.Render(fmt.Sprintf("Não: %d", tally.No)),
		"  ",
		s.abstain.Render(fmt.Sprintf("Abstenção: %d", tally.Abstain)),
		"  ",
		s.meta.Render(fmt.Sprintf("Faltou: %d", tally.Absent)),
		"  ",
		s.meta.Render(fmt.Sprintf("Total: %d", tally.Total)),
	)
}

func voteLine(vote domain.Vote, s styles) string {
	mark := "○"
	if vote.Confirmed {
		mark = "●"
	}
	parts := []string{
		s.meta.Render(mark),
		" ",
		s.detail.Render(vote.Voter.Name),
		" ",
		voteValueStyle(vote.Value, s).Render(voteValueLabel(vote.Value)),
		" ",
		s.header.Render(string(vote.Voter.ID)),
	}
	if !vote.CastAt.IsZero() {
		parts = append(parts, " ", s.meta.Render(vote.CastAt.Format("15:04:05")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func voteValueLabel(value domain.VoteValue) string {
	switch value {
	case domain.VoteYes:
		return "Sim"
	case domain.VoteNo:
		return "Não"
	case domain.VoteAbstain:
		return "Abstenção"
	default:
		return string(value)
	}
}

func voteValueStyle(value domain.VoteValue, s styles) lipgloss.Style {
	switch value {
	case domain.VoteYes:
		return s.yes
	case domain.VoteNo:
		return s.no
	default:
		return s.abstain
	}
}

func finalSummaryView(project domain.Project, summary domain.FinalSummary, s styles) string {
	verdict := s.success.Render("APROVADO")
	if summary.Outcome == domain.OutcomeRejected {
		verdict = s.warning.Render("REJEITADO")
	}
	total := summary.Yes + summary.No + summary.Abstention

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render("Resultado final"),
		s.name.Render(project.Title),
		verdict,
		s.section.Render(summaryRow("Sim", summary.Yes, total, s.yes)),
		summaryRow("Não", summary.No, total, s.no),
		summaryRow("Abstenção", summary.Abstention, total, s.abstain),
	)
}

func summaryRow(label string, count, total int, style lipgloss.Style) string {
	share := 0.0
	if total > 0 {
		share = float64(count) / float64(total) * 100
	}
	return style.Render(fmt.Sprintf("%-10s %3d", label+":", count)) + " " + printer.Sprintf("(%.1f%%)", share)
}

func identityView(creds domain.Credentials, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(creds.User.Name),
		s.detail.Render(creds.User.Role()),
	}
	if email := strings.TrimSpace(creds.User.Email); email != "" {
		lines = append(lines, s.meta.Render(email))
	}
	if creds.Chamber.Name != "" {
		chamber := creds.Chamber.Name
		if creds.Chamber.City != "" {
			chamber += " - " + creds.Chamber.City
		}
		lines = append(lines, s.section.Render(s.label.Render(chamber)))
	}
	if !creds.ExpiresAt.IsZero() {
		lines = append(lines, s.meta.Render("sessão expira em "+formatExpiry(creds.ExpiresAt, opts.Now)))
	}
	if creds.PasswordResetRequired {
		lines = append(lines, s.warning.Render("Troca de senha obrigatória: execute `camara password change`."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatDate(t time.Time) string {
	if domain.IsPlaceholderDate(t) {
		return "sem data"
	}
	return t.Format(dateLayout)
}

func formatExpiry(expiresAt, now time.Time) string {
	if now.IsZero() {
		return expiresAt.Format(dateTimeLayout)
	}
	if !expiresAt.After(now) {
		return "expirada"
	}
	remaining := expiresAt.Sub(now)
	if remaining < time.Hour {
		minutes := int(math.Ceil(remaining.Minutes()))
		return fmt.Sprintf("%d min (%s)", minutes, expiresAt.Format("15:04"))
	}
	hours := int(math.Ceil(remaining.Hours()))
	return fmt.Sprintf("%d h (%s)", hours, expiresAt.Format(dateTimeLayout))
}

func renderProgressBar(fraction float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampFraction(fraction)))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// interpolateColor fades from grey 240 at min to white 255 at max.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := clampFraction((value - min) / (max - min))
	code := int(240 + 15*normalized)
	return lipgloss.Color(fmt.Sprintf("%d", code))
}
