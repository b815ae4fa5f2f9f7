package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type votingFixture struct {
	flow     *VotingFlow
	projects *mocks.MockProjectGateway
	votes    *mocks.MockVoteGateway
	ticks    *manualTicker
	states   chan VotingState
}

func newVotingFixture(t *testing.T, president bool) *votingFixture {
	t.Helper()
	return newVotingFixtureWithWindow(t, president, 0)
}

func newVotingFixtureWithWindow(t *testing.T, president bool, window time.Duration) *votingFixture {
	t.Helper()
	f := &votingFixture{
		projects: mocks.NewMockProjectGateway(t),
		votes:    mocks.NewMockVoteGateway(t),
		ticks:    newManualTicker(),
		states:   make(chan VotingState, 64),
	}
	f.flow = NewVotingFlow(f.projects, f.votes, VotingFlowOptions{
		President: president,
		Ticker:    f.ticks.ticker,
		Window:    window,
		OnChange: func(snapshot VotingSnapshot) {
			select {
			case f.states <- snapshot.State:
			default:
			}
		},
	})
	t.Cleanup(f.flow.Close)
	return f
}

func (f *votingFixture) expectReady() {
	session := activeSession()
	f.projects.EXPECT().GetProjectInVoting(mockAnyContext(), session.ID).Return(votingProject(), nil).Once()
	f.votes.EXPECT().GetSessionProjectID(mockAnyContext(), projectID, sessionID).Return(linkID, nil).Once()
	f.votes.EXPECT().HasVoted(mockAnyContext(), linkID).Return(false, nil).Once()
}

func drainStates(ch chan VotingState) []VotingState {
	var out []VotingState
	for {
		select {
		case s := <-ch:
			out = append(out, s)
		default:
			return out
		}
	}
}

func TestVotingFlowSyncWalksStatesToReady(t *testing.T) {
	t.Parallel()

	f := newVotingFixture(t, false)
	f.expectReady()
	session := activeSession()

	snapshot := f.flow.Sync(context.Background(), &session)
	assert.Equal(t, VotingReady, snapshot.State)
	assert.Equal(t, linkID, snapshot.Link)
	require.NotNil(t, snapshot.Project)
	assert.Equal(t, projectID, snapshot.Project.ID)
	assert.Equal(t, VotingWindow, snapshot.Remaining)
	assert.Equal(t, []VotingState{VotingLoadingProject, VotingCheckingVote, VotingReady}, drainStates(f.states))
	assert.True(t, f.flow.countdown.Running())
}

func TestVotingFlowSyncWithoutSession(t *testing.T) {
	t.Parallel()

	f := newVotingFixture(t, false)

	assert.Equal(t, VotingNoActiveSession, f.flow.Sync(context.Background(), nil).State)

	sentinel := domain.Session{ID: "00000000-0000-0000-0000-000000000000"}
	assert.Equal(t, VotingNoActiveSession, f.flow.Sync(context.Background(), &sentinel).State)

	closed := activeSession()
	closed.Status = domain.SessionClosed
	assert.Equal(t, VotingNoActiveSession, f.flow.Sync(context.Background(), &closed).State)
}

func TestVotingFlowSyncDegradesReadFailuresToNoProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expect func(f *votingFixture)
	}{
		{
			name: "project lookup fails",
			expect: func(f *votingFixture) {
				f.projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).Return(domain.Project{}, errors.New("timeout")).Once()
			},
		},
		{
			name: "nil project sentinel",
			expect: func(f *votingFixture) {
				f.projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).
					Return(domain.Project{ID: "00000000-0000-0000-0000-000000000000"}, nil).Once()
			},
		},
		{
			name: "link lookup fails",
			expect: func(f *votingFixture) {
				f.projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).Return(votingProject(), nil).Once()
				f.votes.EXPECT().GetSessionProjectID(mockAnyContext(), projectID, sessionID).
					Return(domain.SessionProjectID(""), &domain.APIError{Kind: domain.ErrorKindNotFound, Status: 404}).Once()
			},
		},
		{
			name: "already voted check fails",
			expect: func(f *votingFixture) {
				f.projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).Return(votingProject(), nil).Once()
				f.votes.EXPECT().GetSessionProjectID(mockAnyContext(), projectID, sessionID).Return(linkID, nil).Once()
				f.votes.EXPECT().HasVoted(mockAnyContext(), linkID).Return(false, errors.New("502")).Once()
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newVotingFixture(t, false)
			tc.expect(f)
			session := activeSession()

			snapshot := f.flow.Sync(context.Background(), &session)
			assert.Equal(t, VotingNoProjectInVoting, snapshot.State)
			assert.Nil(t, snapshot.Project)
			assert.False(t, f.flow.countdown.Running())
		})
	}
}

func TestVotingFlowAlreadyVotedStopsCountdownAndBlocksSubmit(t *testing.T) {
	t.Parallel()

	f := newVotingFixture(t, false)
	f.expectReady()
	session := activeSession()
	f.flow.Sync(context.Background(), &session)
	require.True(t, f.flow.countdown.Running())

	f.projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).Return(votingProject(), nil).Once()
	f.votes.EXPECT().GetSessionProjectID(mockAnyContext(), projectID, sessionID).Return(linkID, nil).Once()
	f.votes.EXPECT().HasVoted(mockAnyContext(), linkID).Return(true, nil).Once()

	snapshot := f.flow.Sync(context.Background(), &session)
	assert.Equal(t, VotingAlreadyVoted, snapshot.State)
	assert.False(t, f.flow.countdown.Running())
	assert.Zero(t, snapshot.Remaining)

	_, err := f.flow.Submit(context.Background(), domain.ChoiceApprove, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestVotingFlowSubmitRequiresResolvedProjectAndLink(t *testing.T) {
	t.Parallel()

	f := newVotingFixture(t, false)

	_, err := f.flow.Submit(context.Background(), domain.ChoiceApprove, func(domain.Project, domain.VoteChoice) bool {
		t.Fatal("confirmation prompt must not be shown before sequencing")
		return true
	})
	assert.ErrorIs(t, err, domain.ErrVoteNotSequenced)

	f.projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).Return(votingProject(), nil).Once()
	f.votes.EXPECT().GetSessionProjectID(mockAnyContext(), projectID, sessionID).Return(domain.SessionProjectID("00000000-0000-0000-0000-000000000000"), nil).Once()
	session := activeSession()
	f.flow.Sync(context.Background(), &session)

	_, err = f.flow.Submit(context.Background(), domain.ChoiceApprove, nil)
	assert.ErrorIs(t, err, domain.ErrVoteNotSequenced)
}

func TestVotingFlowSubmitAbstainThenAlreadyVoted(t *testing.T) {
	t.Parallel()

	f := newVotingFixture(t, true)
	f.expectReady()
	session := activeSession()
	f.flow.Sync(context.Background(), &session)

	var prompted domain.VoteChoice
	f.votes.EXPECT().CastVote(mockAnyContext(), projectID, sessionID, domain.VoteAbstain).Return(nil).Once()

	result, err := f.flow.Submit(context.Background(), domain.ChoiceAbstain, func(p domain.Project, choice domain.VoteChoice) bool {
		assert.Equal(t, projectID, p.ID)
		prompted = choice
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ChoiceAbstain, prompted)
	assert.Equal(t, domain.ChoiceAbstain, result.Choice)
	assert.True(t, result.PresidentNext)

	snapshot := f.flow.Snapshot()
	assert.Equal(t, VotingVoted, snapshot.State)
	assert.Equal(t, domain.ChoiceAbstain, snapshot.Choice)
	assert.False(t, f.flow.countdown.Running())
	// A successful cast settles the state; the vote is not read back.
	f.votes.AssertNumberOfCalls(t, "HasVoted", 1)

	_, err = f.flow.Submit(context.Background(), domain.ChoiceApprove, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestVotingFlowCancelledPromptLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	f := newVotingFixture(t, false)
	f.expectReady()
	session := activeSession()
	f.flow.Sync(context.Background(), &session)

	_, err := f.flow.Submit(context.Background(), domain.ChoiceReject, func(domain.Project, domain.VoteChoice) bool { return false })
	assert.ErrorIs(t, err, domain.ErrVoteCancelled)
	assert.Equal(t, VotingReady, f.flow.Snapshot().State)
	assert.True(t, f.flow.countdown.Running())
}

func TestVotingFlowSubmitFailureIsSurfacedAndReturnsToReady(t *testing.T) {
	t.Parallel()

	f := newVotingFixture(t, false)
	f.expectReady()
	session := activeSession()
	f.flow.Sync(context.Background(), &session)

	failure := &domain.APIError{Kind: domain.ErrorKindHTTP, Status: 409, Message: "Projeto fora de votação"}
	f.votes.EXPECT().CastVote(mockAnyContext(), projectID, sessionID, domain.VoteNo).Return(failure).Once()

	_, err := f.flow.Submit(context.Background(), domain.ChoiceReject, nil)
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, VotingReady, f.flow.Snapshot().State)
}

func TestVotingFlowCountdownIsCosmetic(t *testing.T) {
	t.Parallel()

	f := newVotingFixtureWithWindow(t, false, 2*time.Second)
	f.expectReady()
	session := activeSession()
	f.flow.Sync(context.Background(), &session)

	f.ticks.tick()
	f.ticks.tick()
	require.Eventually(t, func() bool { return !f.flow.countdown.Running() }, time.Second, 5*time.Millisecond)
	assert.Zero(t, f.flow.Snapshot().Remaining)

	f.votes.EXPECT().CastVote(mockAnyContext(), projectID, sessionID, domain.VoteYes).Return(nil).Once()

	_, err := f.flow.Submit(context.Background(), domain.ChoiceApprove, nil)
	require.NoError(t, err)
	assert.Equal(t, VotingVoted, f.flow.Snapshot().State)
}

func TestVotingFlowHandleEvent(t *testing.T) {
	t.Parallel()

	f := newVotingFixture(t, false)
	f.expectReady()
	session := activeSession()
	f.flow.Sync(context.Background(), &session)

	f.flow.HandleEvent(context.Background(), domain.SessionEvent{Type: domain.EventVotesConfirmed, SessionID: sessionID})
	f.flow.HandleEvent(context.Background(), domain.SessionEvent{Type: domain.EventVotingClosed, SessionID: "another-session"})
	assert.Equal(t, VotingReady, f.flow.Snapshot().State)

	closed := votingProject()
	closed.Status = domain.ProjectApproved
	f.projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).Return(closed, nil).Once()

	f.flow.HandleEvent(context.Background(), domain.SessionEvent{Type: domain.EventVotingClosed, SessionID: sessionID, ProjectID: projectID})
	assert.Equal(t, VotingNoProjectInVoting, f.flow.Snapshot().State)
	assert.False(t, f.flow.countdown.Running())
}

func TestVotingFlowHandleEventResolvesTheActiveSessionAgain(t *testing.T) {
	t.Parallel()

	projects := mocks.NewMockProjectGateway(t)
	votes := mocks.NewMockVoteGateway(t)
	var active ActiveSession
	flow := NewVotingFlow(projects, votes, VotingFlowOptions{
		Ticker:  newManualTicker().ticker,
		Resolve: func(context.Context) ActiveSession { return active },
	})
	t.Cleanup(flow.Close)

	session := activeSession()
	projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).Return(votingProject(), nil).Once()
	votes.EXPECT().GetSessionProjectID(mockAnyContext(), projectID, sessionID).Return(linkID, nil).Once()
	votes.EXPECT().HasVoted(mockAnyContext(), linkID).Return(false, nil).Once()
	flow.Sync(context.Background(), &session)
	require.Equal(t, VotingReady, flow.Snapshot().State)

	// A failed lookup falls back to the session already held.
	active = ActiveSession{Err: errors.New("502")}
	projects.EXPECT().GetProjectInVoting(mockAnyContext(), sessionID).Return(domain.Project{}, nil).Once()
	flow.HandleEvent(context.Background(), domain.SessionEvent{Type: domain.EventVotingClosed, SessionID: sessionID})
	assert.Equal(t, VotingNoProjectInVoting, flow.Snapshot().State)

	// The session was closed meanwhile: no project lookup, no session.
	active = ActiveSession{}
	flow.HandleEvent(context.Background(), domain.SessionEvent{Type: domain.EventVotingOpened, SessionID: sessionID})
	snapshot := flow.Snapshot()
	assert.Equal(t, VotingNoActiveSession, snapshot.State)
	assert.Nil(t, snapshot.Session)
}

func TestVotingStateLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pronto para votar", VotingReady.Label())
	assert.Equal(t, "Voto já registrado", VotingAlreadyVoted.Label())
	assert.Equal(t, "custom", VotingState("custom").Label())
}
