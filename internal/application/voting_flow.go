package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"go.uber.org/zap"
)

type VotingState string

const (
	VotingNoActiveSession   VotingState = "no_active_session"
	VotingLoadingProject    VotingState = "loading_project"
	VotingNoProjectInVoting VotingState = "no_project_in_voting"
	VotingCheckingVote      VotingState = "checking_vote"
	VotingAlreadyVoted      VotingState = "already_voted"
	VotingReady             VotingState = "ready_to_vote"
	VotingSubmitting        VotingState = "submitting"
	VotingVoted             VotingState = "voted"
)

func (s VotingState) Label() string {
	switch s {
	case VotingNoActiveSession:
		return "Nenhuma sessão em andamento"
	case VotingLoadingProject:
		return "Carregando projeto"
	case VotingNoProjectInVoting:
		return "Nenhum projeto em votação"
	case VotingCheckingVote:
		return "Verificando voto"
	case VotingAlreadyVoted:
		return "Voto já registrado"
	case VotingReady:
		return "Pronto para votar"
	case VotingSubmitting:
		return "Enviando voto"
	case VotingVoted:
		return "Voto registrado"
	default:
		return string(s)
	}
}

// VotingSnapshot is a copy of the flow state safe to hand to renderers.
type VotingSnapshot struct {
	State     VotingState
	Session   *domain.Session
	Project   *domain.Project
	Link      domain.SessionProjectID
	Remaining time.Duration
	Choice    domain.VoteChoice
}

// ConfirmFunc is the confirmation prompt shown before a vote is sent.
type ConfirmFunc func(project domain.Project, choice domain.VoteChoice) bool

type SubmitResult struct {
	Project domain.Project
	Choice  domain.VoteChoice
	// PresidentNext is set when the voter presides and should move on to confirming votes.
	PresidentNext bool
}

type VotingFlowOptions struct {
	President bool
	Ticker    TickerFunc
	Window    time.Duration
	// OnChange also runs on the countdown goroutine, once per tick.
	OnChange  func(VotingSnapshot)
	// Resolve looks the active session up again when voting opens or closes.
	// Without it events re-sync the session the flow already holds.
	Resolve   func(ctx context.Context) ActiveSession
	Logger    *zap.Logger
}

// VotingFlow is the vote-casting state machine for one voter. Operations are
// serialized; Snapshot may be called from any goroutine.
type VotingFlow struct {
	projects  ports.ProjectGateway
	votes     ports.VoteGateway
	president bool
	onChange  func(VotingSnapshot)
	resolve   func(ctx context.Context) ActiveSession
	logger    *zap.Logger
	countdown *Countdown

	op sync.Mutex

	mu       sync.Mutex
	state    VotingState
	session  *domain.Session
	project  *domain.Project
	link     domain.SessionProjectID
	choice   domain.VoteChoice
	counting domain.ProjectID
}

func NewVotingFlow(projects ports.ProjectGateway, votes ports.VoteGateway, opts VotingFlowOptions) *VotingFlow {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	window := opts.Window
	if window <= 0 {
		window = VotingWindow
	}

	f := &VotingFlow{
		projects:  projects,
		votes:     votes,
		president: opts.President,
		onChange:  opts.OnChange,
		resolve:   opts.Resolve,
		logger:    logger,
		state:     VotingNoActiveSession,
	}
	f.countdown = NewCountdown(window, countdownTick, opts.Ticker, func(time.Duration) { f.notify() })
	return f
}

func (f *VotingFlow) Snapshot() VotingSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *VotingFlow) snapshotLocked() VotingSnapshot {
	snap := VotingSnapshot{State: f.state, Link: f.link, Choice: f.choice}
	if f.session != nil {
		s := *f.session
		snap.Session = &s
	}
	if f.project != nil {
		p := *f.project
		snap.Project = &p
	}
	if f.counting != "" {
		snap.Remaining = f.countdown.Remaining()
	}
	return snap
}

func (f *VotingFlow) notify() {
	if f.onChange == nil {
		return
	}
	f.onChange(f.Snapshot())
}

// transition moves to state. The countdown starts when a project becomes
// ready to vote and stops once the flow settles anywhere but ready; the
// transient loading, checking and submitting states leave it alone.
func (f *VotingFlow) transition(state VotingState, mutate func()) {
	f.mu.Lock()
	previous := f.state
	f.state = state
	if mutate != nil {
		mutate()
	}
	var start, stop bool
	switch state {
	case VotingReady:
		if f.project != nil && f.counting != f.project.ID {
			f.counting = f.project.ID
			start = true
		}
	case VotingNoActiveSession, VotingNoProjectInVoting, VotingAlreadyVoted, VotingVoted:
		stop = f.counting != ""
		f.counting = ""
	}
	f.mu.Unlock()

	switch {
	case start:
		f.countdown.Start()
	case stop:
		f.countdown.Stop()
	}

	if previous != state {
		f.logger.Debug("voting state", zap.String("from", string(previous)), zap.String("to", string(state)))
	}
	f.notify()
}

// Sync resolves project, link and existing vote for session, in that order.
// Read failures degrade to VotingNoProjectInVoting and are not returned.
func (f *VotingFlow) Sync(ctx context.Context, session *domain.Session) VotingSnapshot {
	f.op.Lock()
	defer f.op.Unlock()
	return f.syncLocked(ctx, session)
}

func (f *VotingFlow) syncLocked(ctx context.Context, session *domain.Session) VotingSnapshot {
	if session == nil || domain.IsEmptySession(*session) || !session.InProgress() {
		f.transition(VotingNoActiveSession, func() {
			f.session, f.project, f.link, f.choice = nil, nil, "", ""
		})
		return f.Snapshot()
	}

	current := *session
	f.transition(VotingLoadingProject, func() { f.session = &current })

	project, err := f.projects.GetProjectInVoting(ctx, current.ID)
	if err != nil || domain.IsEmptyProject(project) || !project.InVoting() {
		if err != nil {
			f.logger.Debug("load project in voting", zap.Error(err))
		}
		f.transition(VotingNoProjectInVoting, func() { f.project, f.link, f.choice = nil, "", "" })
		return f.Snapshot()
	}

	f.transition(VotingCheckingVote, func() {
		if !sameProject(f.project, &project) {
			f.choice = ""
		}
		f.project = &project
		f.link = ""
	})

	link, err := f.votes.GetSessionProjectID(ctx, project.ID, current.ID)
	if err != nil || domain.IsNilID(string(link)) {
		f.logger.Debug("resolve session-project link", zap.Error(err))
		f.transition(VotingNoProjectInVoting, func() { f.project, f.link = nil, "" })
		return f.Snapshot()
	}

	voted, err := f.votes.HasVoted(ctx, link)
	if err != nil {
		f.logger.Debug("check existing vote", zap.Error(err))
		f.transition(VotingNoProjectInVoting, func() { f.project, f.link = nil, "" })
		return f.Snapshot()
	}

	if voted {
		f.transition(VotingAlreadyVoted, func() { f.link = link })
	} else {
		f.transition(VotingReady, func() { f.link = link })
	}
	return f.Snapshot()
}

// Submit casts choice for the resolved project. It refuses to run unless the
// project and its session-project link are both resolved, and leaves the
// state untouched when confirm declines.
func (f *VotingFlow) Submit(ctx context.Context, choice domain.VoteChoice, confirm ConfirmFunc) (SubmitResult, error) {
	f.op.Lock()
	defer f.op.Unlock()

	f.mu.Lock()
	state, session, project, link := f.state, f.session, f.project, f.link
	f.mu.Unlock()

	switch {
	case state == VotingAlreadyVoted || state == VotingVoted:
		return SubmitResult{}, domain.ErrAlreadyVoted
	case state != VotingReady || session == nil || project == nil || domain.IsNilID(string(link)):
		return SubmitResult{}, domain.ErrVoteNotSequenced
	}

	value := choice.Value()
	if !value.Valid() {
		return SubmitResult{}, fmt.Errorf("unsupported vote choice %q", choice)
	}
	if confirm != nil && !confirm(*project, choice) {
		return SubmitResult{}, domain.ErrVoteCancelled
	}

	f.transition(VotingSubmitting, func() { f.choice = choice })
	if err := f.votes.CastVote(ctx, project.ID, session.ID, value); err != nil {
		f.transition(VotingReady, nil)
		return SubmitResult{}, err
	}

	f.transition(VotingVoted, nil)

	return SubmitResult{Project: *project, Choice: choice, PresidentNext: f.president}, nil
}

// HandleEvent re-syncs when voting opens or closes in the current session,
// against the session the backend now reports as in progress.
func (f *VotingFlow) HandleEvent(ctx context.Context, event domain.SessionEvent) {
	if event.Type != domain.EventVotingOpened && event.Type != domain.EventVotingClosed {
		return
	}

	f.op.Lock()
	defer f.op.Unlock()

	f.mu.Lock()
	session := f.session
	f.mu.Unlock()
	if session == nil || session.ID != event.SessionID {
		return
	}
	if f.resolve != nil {
		if active := f.resolve(ctx); active.Err != nil {
			f.logger.Debug("refresh active session", zap.Error(active.Err))
		} else {
			session = active.Session
		}
	}
	f.syncLocked(ctx, session)
}

// Close stops the countdown.
func (f *VotingFlow) Close() {
	f.countdown.Stop()
}

func sameProject(a, b *domain.Project) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
