package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nilUUID = "00000000-0000-0000-0000-000000000000"

func TestIsNilID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "empty", id: "", want: true},
		{name: "blank", id: "   ", want: true},
		{name: "nil uuid", id: nilUUID, want: true},
		{name: "real uuid", id: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", want: false},
		{name: "opaque id is not nil", id: "sess-1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNilID(tt.id))
		})
	}
}

func TestIsEmptySession(t *testing.T) {
	date := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)
	valid := Session{ID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", Name: "Sessão Ordinária", Date: date}

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{name: "real session", session: valid, want: false},
		{name: "nil id", session: Session{ID: nilUUID, Name: valid.Name, Date: date}, want: true},
		{name: "blank name", session: Session{ID: valid.ID, Name: " ", Date: date}, want: true},
		{name: "zero date", session: Session{ID: valid.ID, Name: valid.Name}, want: true},
		{name: "epoch date", session: Session{ID: valid.ID, Name: valid.Name, Date: time.Unix(0, 0)}, want: true},
		{name: "dotnet min date", session: Session{ID: valid.ID, Name: valid.Name, Date: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmptySession(tt.session))
		})
	}
}

func TestMergeTalliesKeepsConfirmedOutOfPending(t *testing.T) {
	ana := Vote{ID: "v-1", Voter: Voter{ID: "ana"}, Value: VoteYes}
	bruno := Vote{ID: "v-2", Voter: Voter{ID: "bruno"}, Value: VoteNo}
	carla := Vote{ID: "v-3", Voter: Voter{ID: "carla"}, Value: VoteAbstain, Confirmed: true}

	pending := VoteTally{Yes: 1, No: 1, Abstain: 1, Total: 5, Absent: 2, Votes: []Vote{ana, bruno, carla}}
	confirmed := VoteTally{Votes: []Vote{ana, ana}}

	board := MergeTallies(pending, confirmed)

	require.Len(t, board.Pending, 1)
	assert.Equal(t, VoteID("v-2"), board.Pending[0].ID)
	require.Len(t, board.Confirmed, 2)
	assert.Equal(t, VoteID("v-1"), board.Confirmed[0].ID)
	assert.True(t, board.Confirmed[0].Confirmed)
	assert.Equal(t, VoteID("v-3"), board.Confirmed[1].ID)
	assert.Equal(t, 1, board.PendingCount())
	assert.Equal(t, pending.Total, board.Tally.Total)

	vote, ok := board.FindByVoter("carla")
	require.True(t, ok)
	assert.True(t, vote.Confirmed)
	_, ok = board.FindByVoter("davi")
	assert.False(t, ok)
}

func TestSummarizeFinalFoldsAbsenteesIntoAbstention(t *testing.T) {
	summary := SummarizeFinal(OutcomeApproved, VoteTally{Yes: 30, No: 10, Abstain: 3, Absent: 2, Total: 45})

	assert.Equal(t, FinalSummary{Outcome: OutcomeApproved, Yes: 30, No: 10, Abstention: 5}, summary)
}

func TestOutcomeProjectStatusAndWireName(t *testing.T) {
	status, err := OutcomeRejected.ProjectStatus()
	require.NoError(t, err)
	assert.Equal(t, ProjectRejected, status)

	wire, err := status.WireName()
	require.NoError(t, err)
	assert.Equal(t, "Rejeitado", wire)

	_, err = Outcome("adiado").ProjectStatus()
	require.Error(t, err)

	_, err = ProjectCancelled.WireName()
	require.Error(t, err)
}

func TestParsers(t *testing.T) {
	choice, err := ParseVoteChoice(" Não ")
	require.NoError(t, err)
	assert.Equal(t, ChoiceReject, choice)
	assert.Equal(t, VoteNo, choice.Value())

	_, err = ParseVoteChoice("talvez")
	require.Error(t, err)

	status, err := ParseSessionStatus("Agendada")
	require.NoError(t, err)
	assert.Equal(t, SessionScheduled, status)

	project, err := ParseProjectStatus("Reprovado")
	require.NoError(t, err)
	assert.Equal(t, ProjectRejected, project)

	outcome, err := ParseOutcome("aprovar")
	require.NoError(t, err)
	assert.Equal(t, OutcomeApproved, outcome)
}

func TestCanOpenSession(t *testing.T) {
	scheduled := Session{ID: "s-1", Status: SessionScheduled}

	tests := []struct {
		name    string
		target  Session
		others  []Session
		wantErr bool
	}{
		{name: "scheduled with nothing running", target: scheduled, others: []Session{scheduled, {ID: "s-2", Status: SessionClosed}}},
		{name: "another session in progress", target: scheduled, others: []Session{{ID: "s-2", Status: SessionInProgress}}, wantErr: true},
		{name: "already closed", target: Session{ID: "s-1", Status: SessionClosed}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanOpenSession(tt.target, tt.others)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSessionConflict)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.ErrorIs(t, CanCloseSession(scheduled), ErrSessionConflict)
	assert.NoError(t, CanCloseSession(Session{ID: "s-1", Status: SessionInProgress}))
}

func TestCanSendToVotingAllowsOneProjectAtATime(t *testing.T) {
	presented := Project{ID: "p-1", Status: ProjectPresented}
	inVoting := Project{ID: "p-2", Status: ProjectInVoting}

	assert.NoError(t, CanSendToVoting(presented, []Project{presented, {ID: "p-3", Status: ProjectApproved}}))
	assert.ErrorIs(t, CanSendToVoting(presented, []Project{presented, inVoting}), ErrProjectConflict)
	assert.ErrorIs(t, CanSendToVoting(inVoting, nil), ErrProjectConflict)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		missing  string
	}{
		{name: "too short", password: "Ab1!", missing: "at least 6 characters"},
		{name: "no upper case", password: "segredo1!", missing: "an upper-case letter"},
		{name: "no lower case", password: "SEGREDO1!", missing: "a lower-case letter"},
		{name: "no digit", password: "Segredo!", missing: "a digit"},
		{name: "no special character", password: "Segredo1", missing: "a special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			require.ErrorIs(t, err, ErrWeakPassword)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}

	assert.NoError(t, ValidatePassword("Segredo1!"))
}

func TestChangePasswordRequestValidate(t *testing.T) {
	assert.Error(t, ChangePasswordRequest{NewPassword: "Novo#2024", Confirmation: "Novo#2024"}.Validate())
	assert.Error(t, ChangePasswordRequest{CurrentPassword: "Velha#1", NewPassword: "Novo#2024", Confirmation: "Novo#2025"}.Validate())
	assert.Error(t, ChangePasswordRequest{CurrentPassword: "Novo#2024", NewPassword: "Novo#2024", Confirmation: "Novo#2024"}.Validate())
	assert.NoError(t, ChangePasswordRequest{CurrentPassword: "Velha#1", NewPassword: "Novo#2024", Confirmation: "Novo#2024"}.Validate())
}

func TestCredentialsValid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, Credentials{AccessToken: "tok", ExpiresAt: now.Add(time.Minute)}.Valid(now))
	assert.False(t, Credentials{AccessToken: "tok", ExpiresAt: now}.Valid(now))
	assert.False(t, Credentials{AccessToken: " ", ExpiresAt: now.Add(time.Hour)}.Valid(now))
	assert.False(t, Credentials{AccessToken: "tok"}.Valid(now))
}

func TestAPIErrorMatchesSentinels(t *testing.T) {
	err := fmt.Errorf("list sessions: %w", &APIError{Kind: ErrorKindUnauthorized, Status: 401})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Erro na requisição (status 401)", UserMessage(err))

	withMessage := &APIError{Kind: ErrorKindHTTP, Status: 409, Code: "VOTO_DUPLICADO", Message: "Vereador já votou"}
	assert.Equal(t, "Vereador já votou", UserMessage(fmt.Errorf("cast vote: %w", withMessage)))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
	assert.Empty(t, UserMessage(nil))
}
