package api

import (
	"context"
	"testing"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/testkit/fakebackend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	backend *fakebackend.Backend
	client  *Client
	token   string
}

func newFixture(t *testing.T, president bool) *fixture {
	t.Helper()
	backend, server := fakebackend.Start(t)
	backend.AddUser("ana", "Senha@123", president)

	f := &fixture{backend: backend}
	client, err := New(Options{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Token:      func(context.Context) (string, error) { return f.token, nil },
	})
	require.NoError(t, err)
	f.client = client
	return f
}

func (f *fixture) signIn(t *testing.T) domain.Credentials {
	t.Helper()
	creds, err := f.client.SignIn(context.Background(), domain.LoginRequest{UserName: "ana", Password: "Senha@123"})
	require.NoError(t, err)
	f.token = creds.AccessToken
	return creds
}

func TestSignInMapsProfile(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	creds := f.signIn(t)

	assert.NotEmpty(t, creds.AccessToken)
	assert.Equal(t, "Vereador ana", creds.User.Name)
	assert.True(t, creds.User.President)
	assert.Equal(t, "Câmara Municipal de Teste", creds.Chamber.Name)
	assert.Equal(t, "Testópolis", creds.Chamber.City)
	assert.False(t, creds.PasswordResetRequired)
	assert.True(t, creds.Valid(time.Now()))
}

func TestSignInRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	_, err := f.client.SignIn(context.Background(), domain.LoginRequest{UserName: "ana", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, "Usuário ou senha inválidos", domain.UserMessage(err))
}

func TestSignInReportsPasswordReset(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.backend.RequirePasswordReset("ana")
	creds := f.signIn(t)
	assert.True(t, creds.PasswordResetRequired)

	require.NoError(t, f.client.ChangePassword(context.Background(), domain.ChangePasswordRequest{
		CurrentPassword: "Senha@123",
		NewPassword:     "Nova#4567",
		Confirmation:    "Nova#4567",
	}))

	creds, err := f.client.SignIn(context.Background(), domain.LoginRequest{UserName: "ana", Password: "Nova#4567"})
	require.NoError(t, err)
	assert.False(t, creds.PasswordResetRequired)
}

func TestRefreshTokenRotatesToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	creds := f.signIn(t)

	token, expiresAt, err := f.client.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, creds.AccessToken, token)
	assert.True(t, expiresAt.After(time.Now()))
}

func TestGetActiveSessionDecodesSentinel(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.signIn(t)

	session, err := f.client.GetActiveSession(context.Background())
	require.NoError(t, err)
	assert.True(t, domain.IsEmptySession(session))

	f.backend.SetActiveNotFound(true)
	_, err = f.client.GetActiveSession(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.signIn(t)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s := f.backend.AddSession(domain.Session{Name: "Sessão Ordinária 12", Status: domain.SessionScheduled, Date: date})

	ctx := context.Background()
	require.NoError(t, f.client.OpenSession(ctx, s.ID))

	active, err := f.client.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.ID, active.ID)
	assert.Equal(t, domain.SessionInProgress, active.Status)
	assert.True(t, active.Date.Equal(date))
	assert.False(t, domain.IsEmptySession(active))

	require.NoError(t, f.client.CloseSession(ctx, s.ID))
	err = f.client.CloseSession(ctx, s.ID)
	require.Error(t, err)
	assert.Contains(t, domain.UserMessage(err), "não permite")
}

func TestListSessionsPagesAndFilters(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.signIn(t)
	for _, name := range []string{"Ordinária 1", "Ordinária 2", "Extraordinária 1"} {
		f.backend.AddSession(domain.Session{Name: name, Status: domain.SessionScheduled, Date: time.Now()})
	}

	ctx := context.Background()
	page, err := f.client.ListSessions(ctx, domain.SessionFilter{}, domain.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Sessions, 2)
	assert.True(t, page.HasMore)

	page, err = f.client.ListSessions(ctx, domain.SessionFilter{}, domain.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page.Sessions, 1)
	assert.False(t, page.HasMore)
	assert.Equal(t, 2, page.Offset)

	page, err = f.client.ListSessions(ctx, domain.SessionFilter{Name: "extra"}, domain.PageRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Sessions, 1)
	assert.Equal(t, "Extraordinária 1", page.Sessions[0].Name)
}

func TestDecodeSessionPageAcceptsBareArray(t *testing.T) {
	t.Parallel()

	items, hasMore, err := decodeSessionPage([]byte(`[{"id":"a","nome":"A"},{"id":"b","nome":"B"}]`), 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, hasMore)

	items, hasMore, err = decodeSessionPage([]byte(`null`), 2)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, hasMore)
}

func TestVotingRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	creds := f.signIn(t)
	s := f.backend.AddSession(domain.Session{Name: "Ordinária", Status: domain.SessionInProgress, Date: time.Now()})
	p, link := f.backend.AddProject(s.ID, domain.Project{Title: "PL 10/2026", AuthorName: "Carlos Lima"})

	ctx := context.Background()
	require.NoError(t, f.client.UpdateProjectStatus(ctx, s.ID, p.ID, domain.ProjectInVoting))

	inVoting, err := f.client.GetProjectInVoting(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, inVoting.ID)
	assert.Equal(t, "Carlos Lima", inVoting.AuthorName)

	gotLink, err := f.client.GetSessionProjectID(ctx, p.ID, s.ID)
	require.NoError(t, err)
	assert.Equal(t, link, gotLink)

	voted, err := f.client.HasVoted(ctx, link)
	require.NoError(t, err)
	assert.False(t, voted)

	require.NoError(t, f.client.CastVote(ctx, p.ID, s.ID, domain.VoteYes))
	err = f.client.CastVote(ctx, p.ID, s.ID, domain.VoteNo)
	require.Error(t, err)
	assert.Equal(t, "Vereador já votou neste projeto", domain.UserMessage(err))

	voted, err = f.client.HasVoted(ctx, link)
	require.NoError(t, err)
	assert.True(t, voted)

	pending, err := f.client.GetPendingTally(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, 1, pending.Yes)
	assert.Equal(t, 1, pending.Total)
	require.Len(t, pending.Votes, 1)
	assert.Equal(t, domain.VoterID(creds.User.ID), pending.Votes[0].Voter.ID)

	require.NoError(t, f.client.ConfirmVote(ctx, link, pending.Votes[0].Voter.ID))

	confirmed, err := f.client.GetConfirmedTally(ctx, p.ID, s.ID)
	require.NoError(t, err)
	require.Len(t, confirmed.Votes, 1)
	assert.True(t, confirmed.Votes[0].Confirmed)
	assert.Equal(t, string(creds.User.ID), confirmed.Votes[0].ApproverID)

	pending, err = f.client.GetPendingTally(ctx, link)
	require.NoError(t, err)
	assert.Empty(t, pending.Votes)
}

func TestConfirmAllVotesSendsBareLink(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.signIn(t)
	s := f.backend.AddSession(domain.Session{Name: "Ordinária", Status: domain.SessionInProgress, Date: time.Now()})
	p, link := f.backend.AddProject(s.ID, domain.Project{Title: "PL 11/2026", Status: domain.ProjectInVoting})

	ctx := context.Background()
	require.NoError(t, f.client.CastVote(ctx, p.ID, s.ID, domain.VoteAbstain))
	require.NoError(t, f.client.ConfirmAllVotes(ctx, link))

	for _, v := range f.backend.Votes(link) {
		assert.True(t, v.Confirmed)
	}
	assert.Equal(t, 1, f.backend.CountCalls("PUT /Voto/confirmar-todos-voto"))
}

func TestUpdateProjectStatusRejectsNonWireStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	err := f.client.UpdateProjectStatus(context.Background(), "s", "p", domain.ProjectPresented)
	require.Error(t, err)
	assert.Empty(t, f.backend.Calls())
}

func TestCastVoteRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	err := f.client.CastVote(context.Background(), "p", "s", domain.VoteValue("Talvez"))
	require.Error(t, err)
	assert.Empty(t, f.backend.Calls())
}
