package status

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/camaradigital/camara-cli/internal/application"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func sampleSession() domain.Session {
	return domain.Session{
		ID:     "8d7c0f3e-1b2a-4c5d-9e8f-0a1b2c3d4e5f",
		Name:   "Sessão Ordinária 12/2026",
		Status: domain.SessionInProgress,
		Date:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func sampleProject() domain.Project {
	return domain.Project{
		ID:         "1f2e3d4c-5b6a-4789-8abc-def012345678",
		Title:      "PL 45/2026 - Iluminação pública",
		Status:     domain.ProjectInVoting,
		AuthorName: "Vereadora Ana",
	}
}

func TestRenderActiveSession(t *testing.T) {
	session := sampleSession()

	output, err := RenderActiveSession(application.ActiveSession{Session: &session})
	require.NoError(t, err)
	assert.Contains(t, output, "Sessão Ordinária 12/2026")
	assert.Contains(t, output, "10/03/2026")
	assert.Contains(t, output, "[Em Andamento]")

	output, err = RenderActiveSession(application.ActiveSession{})
	require.NoError(t, err)
	assert.Contains(t, output, "Nenhuma sessão em andamento.")

	output, err = RenderActiveSession(application.ActiveSession{Err: &domain.APIError{Kind: domain.ErrorKindNetwork, Message: domain.MessageNetwork}})
	require.NoError(t, err)
	assert.Contains(t, output, domain.MessageNetwork)
}

func TestRenderSessionsListsAndHintsMore(t *testing.T) {
	scheduled := sampleSession()
	scheduled.ID = "s-2"
	scheduled.Name = "Sessão Extraordinária"
	scheduled.Status = domain.SessionScheduled

	output, err := RenderSessions([]domain.Session{sampleSession(), scheduled}, true)
	require.NoError(t, err)
	assert.Contains(t, output, "sessões: 2")
	assert.Contains(t, output, "Sessão Extraordinária")
	assert.Contains(t, output, "[Agendada]")
	assert.Contains(t, output, "Há mais sessões")

	output, err = RenderSessions(nil, false)
	require.NoError(t, err)
	assert.Contains(t, output, "Nenhuma sessão encontrada.")
	assert.NotContains(t, output, "Há mais sessões")
}

func TestRenderProjects(t *testing.T) {
	presented := sampleProject()
	presented.ID = "p-2"
	presented.Title = "PL 46/2026"
	presented.Status = domain.ProjectPresented

	output, err := RenderProjects(sampleSession(), []domain.Project{sampleProject(), presented})
	require.NoError(t, err)
	assert.Contains(t, output, "projetos: 2")
	assert.Contains(t, output, "[Em Votação]")
	assert.Contains(t, output, "[Apresentado]")
	assert.Contains(t, output, "Autor: Vereadora Ana")
}

func TestRenderVotingStates(t *testing.T) {
	session := sampleSession()
	project := sampleProject()

	tests := []struct {
		name     string
		snapshot application.VotingSnapshot
		opts     RenderOptions
		want     []string
		absent   []string
	}{
		{
			name:     "no session",
			snapshot: application.VotingSnapshot{State: application.VotingNoActiveSession},
			want:     []string{"Nenhuma sessão em andamento."},
		},
		{
			name:     "no project",
			snapshot: application.VotingSnapshot{State: application.VotingNoProjectInVoting, Session: &session},
			want:     []string{"Nenhum projeto em votação.", session.Name},
		},
		{
			name: "ready with countdown",
			snapshot: application.VotingSnapshot{
				State: application.VotingReady, Session: &session, Project: &project, Remaining: 42 * time.Second,
			},
			opts: RenderOptions{Conn: domain.ConnConnected},
			want: []string{project.Title, "00:42", "Pronto para votar", "tempo real: conectado", "["},
		},
		{
			name: "countdown expired still votable",
			snapshot: application.VotingSnapshot{
				State: application.VotingReady, Session: &session, Project: &project,
			},
			want: []string{"Tempo esgotado"},
		},
		{
			name: "already voted",
			snapshot: application.VotingSnapshot{
				State: application.VotingAlreadyVoted, Session: &session, Project: &project,
			},
			want:   []string{"Você já votou neste projeto."},
			absent: []string{"tempo:"},
		},
		{
			name: "voted",
			snapshot: application.VotingSnapshot{
				State: application.VotingVoted, Session: &session, Project: &project, Choice: domain.ChoiceAbstain,
			},
			want: []string{"Voto registrado: Abster-se"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			output, err := RenderVoting(tc.snapshot, tc.opts)
			require.NoError(t, err)
			for _, want := range tc.want {
				assert.Contains(t, output, want)
			}
			for _, absent := range tc.absent {
				assert.NotContains(t, output, absent)
			}
		})
	}
}

func TestRenderBoardSections(t *testing.T) {
	target := application.ConfirmationTarget{Session: sampleSession(), Project: sampleProject(), Link: "link-1"}
	board := domain.ConfirmationBoard{
		Pending: []domain.Vote{
			{ID: "v2", Voter: domain.Voter{ID: "b", Name: "Vereador Bruno"}, Value: domain.VoteNo},
		},
		Confirmed: []domain.Vote{
			{ID: "v1", Voter: domain.Voter{ID: "a", Name: "Vereadora Ana"}, Value: domain.VoteYes, Confirmed: true},
		},
		Tally: domain.VoteTally{Yes: 1, No: 1, Absent: 3, Total: 5},
	}

	output, err := RenderBoard(target, board)
	require.NoError(t, err)
	assert.Contains(t, output, "Pendentes (1)")
	assert.Contains(t, output, "Confirmados (1)")
	assert.Contains(t, output, "Vereador Bruno")
	assert.Contains(t, output, "Faltou: 3")
	assert.Contains(t, output, "Total: 5")
}

func TestRenderFinalSummaryFoldsAbsentees(t *testing.T) {
	summary := domain.SummarizeFinal(domain.OutcomeApproved, domain.VoteTally{Yes: 30, No: 10, Abstain: 3, Absent: 2})

	output, err := RenderFinalSummary(sampleProject(), summary)
	require.NoError(t, err)
	assert.Contains(t, output, "APROVADO")
	assert.Contains(t, output, " 30")
	assert.Contains(t, output, " 10")
	assert.Contains(t, output, "Abstenção:   5")
	assert.NotContains(t, output, "Faltou")
}

func TestRenderIdentity(t *testing.T) {
	creds := domain.Credentials{
		AccessToken:           "eyJ.token",
		ExpiresAt:             now.Add(90 * time.Minute),
		User:                  domain.User{ID: "vereador-1", Name: "Ana Souza", Email: "ana@camara.test", President: true},
		Chamber:               domain.Chamber{Name: "Câmara Municipal de Teste", City: "Testópolis"},
		PasswordResetRequired: true,
	}

	output, err := RenderIdentity(creds, RenderOptions{Now: now})
	require.NoError(t, err)
	assert.Contains(t, output, "Ana Souza")
	assert.Contains(t, output, "Presidente")
	assert.Contains(t, output, "Câmara Municipal de Teste - Testópolis")
	assert.Contains(t, output, "sessão expira em 2 h (10/03/2026 15:30)")
	assert.Contains(t, output, "Troca de senha obrigatória")
}

func TestWatchModelTracksMessages(t *testing.T) {
	session := sampleSession()
	project := sampleProject()
	m := NewWatchModel()
	assert.Contains(t, m.View(), "Carregando...")

	next, _ := m.Update(ConnMsg(domain.ConnConnected))
	next, _ = next.Update(VotingMsg(application.VotingSnapshot{
		State: application.VotingReady, Session: &session, Project: &project, Remaining: time.Minute,
	}))
	view := next.View()
	assert.Contains(t, view, project.Title)
	assert.Contains(t, view, "01:00")
	assert.Contains(t, view, "tempo real: conectado")
	assert.NotContains(t, view, "Carregando...")

	stopErr := errors.New("feed failed")
	final, cmd := next.Update(StopMsg{Err: stopErr})
	require.NotNil(t, cmd)
	watch, ok := final.(WatchModel)
	require.True(t, ok)
	assert.ErrorIs(t, watch.Err(), stopErr)
	assert.Empty(t, watch.View())
}

func TestFetchModelShowsProgressUntilDone(t *testing.T) {
	m := newFetchModel("Carregando sessões...", nil)
	assert.Contains(t, m.View(), "Carregando sessões...")

	updated, _ := m.Update(FetchProgressMsg(40))
	m = updated.(fetchModel)
	assert.Contains(t, m.View(), "(40 carregados)")

	updated, cmd := m.Update(fetchDoneMsg{err: errors.New("boom")})
	m = updated.(fetchModel)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
	assert.EqualError(t, m.err, "boom")
}

func TestFetchReturnsTheFetchError(t *testing.T) {
	var reported []int
	err := Fetch(context.Background(), &bytes.Buffer{}, "Carregando...", func(_ context.Context, progress func(int)) error {
		progress(20)
		reported = append(reported, 20)
		return domain.ErrNoActiveSession
	})

	require.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.Equal(t, []int{20}, reported)
}
