package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ConfirmAllStrategy string

const (
	ConfirmAllBulk ConfirmAllStrategy = "bulk"
	// Deprecated: sequential confirms one vote per call and exists for
	// backends without the bulk endpoint.
	ConfirmAllSequential ConfirmAllStrategy = "sequential"
)

// ConfirmationTarget is the project the presiding officer is reviewing.
type ConfirmationTarget struct {
	Session domain.Session
	Project domain.Project
	Link    domain.SessionProjectID
}

type ConfirmationFlowOptions struct {
	Strategy ConfirmAllStrategy
	OnChange func(domain.ConfirmationBoard)
	Logger   *zap.Logger
}

// ConfirmationFlow drives vote confirmation and the final decision for the
// project currently in voting. Writes are serialized; tally reads run in
// parallel.
type ConfirmationFlow struct {
	projects ports.ProjectGateway
	votes    ports.VoteGateway
	strategy ConfirmAllStrategy
	onChange func(domain.ConfirmationBoard)
	logger   *zap.Logger

	op sync.Mutex

	mu        sync.Mutex
	target    *ConfirmationTarget
	board     domain.ConfirmationBoard
	loaded    bool
	finalized *domain.FinalSummary
}

func NewConfirmationFlow(projects ports.ProjectGateway, votes ports.VoteGateway, opts ConfirmationFlowOptions) *ConfirmationFlow {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	strategy := opts.Strategy
	if strategy == "" {
		strategy = ConfirmAllBulk
	}
	if strategy == ConfirmAllSequential {
		logger.Warn("sequential confirm-all is deprecated; prefer bulk")
	}
	return &ConfirmationFlow{
		projects: projects,
		votes:    votes,
		strategy: strategy,
		onChange: opts.OnChange,
		logger:   logger,
	}
}

// Bind resolves the project in voting for session and its session-project link.
func (f *ConfirmationFlow) Bind(ctx context.Context, session domain.Session) (ConfirmationTarget, error) {
	f.op.Lock()
	defer f.op.Unlock()

	project, err := f.projects.GetProjectInVoting(ctx, session.ID)
	if err != nil {
		return ConfirmationTarget{}, err
	}
	if domain.IsEmptyProject(project) || !project.InVoting() {
		return ConfirmationTarget{}, domain.ErrNoProjectInVoting
	}

	link, err := f.votes.GetSessionProjectID(ctx, project.ID, session.ID)
	if err != nil {
		return ConfirmationTarget{}, err
	}
	if domain.IsNilID(string(link)) {
		return ConfirmationTarget{}, domain.ErrNoProjectInVoting
	}

	target := ConfirmationTarget{Session: session, Project: project, Link: link}
	f.mu.Lock()
	f.target = &target
	f.board = domain.ConfirmationBoard{}
	f.loaded = false
	f.finalized = nil
	f.mu.Unlock()
	return target, nil
}

func (f *ConfirmationFlow) Target() (ConfirmationTarget, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.target == nil {
		return ConfirmationTarget{}, false
	}
	return *f.target, true
}

func (f *ConfirmationFlow) Board() domain.ConfirmationBoard {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.board
}

// Load fetches both tallies and rebuilds the board. A silent load keeps the
// previous board on failure and reports no error.
func (f *ConfirmationFlow) Load(ctx context.Context, silent bool) (domain.ConfirmationBoard, error) {
	target, ok := f.Target()
	if !ok {
		return domain.ConfirmationBoard{}, domain.ErrNoProjectInVoting
	}

	board, err := f.fetch(ctx, target)
	if err != nil {
		if silent {
			f.logger.Debug("background tally refresh failed", zap.Error(err))
			return f.Board(), nil
		}
		return domain.ConfirmationBoard{}, err
	}

	f.mu.Lock()
	f.board = board
	f.loaded = true
	f.mu.Unlock()

	if f.onChange != nil {
		f.onChange(board)
	}
	return board, nil
}

func (f *ConfirmationFlow) fetch(ctx context.Context, target ConfirmationTarget) (domain.ConfirmationBoard, error) {
	var pending, confirmed domain.VoteTally

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tally, err := f.votes.GetPendingTally(gctx, target.Link)
		if err != nil {
			return err
		}
		pending = tally
		return nil
	})
	g.Go(func() error {
		tally, err := f.votes.GetConfirmedTally(gctx, target.Project.ID, target.Session.ID)
		if err != nil {
			return err
		}
		confirmed = tally
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.ConfirmationBoard{}, err
	}
	return domain.MergeTallies(pending, confirmed), nil
}

// ConfirmVote confirms the vote cast by voterID. Already confirmed votes are
// left alone.
func (f *ConfirmationFlow) ConfirmVote(ctx context.Context, voterID domain.VoterID) error {
	f.op.Lock()
	defer f.op.Unlock()

	target, err := f.writable()
	if err != nil {
		return err
	}
	board, err := f.ensureLoaded(ctx)
	if err != nil {
		return err
	}

	vote, found := board.FindByVoter(voterID)
	if !found {
		return fmt.Errorf("vote of %s: %w", voterID, domain.ErrNotFound)
	}
	if vote.Confirmed {
		f.logger.Debug("vote already confirmed", zap.String("voter", string(voterID)))
		return nil
	}

	if err := f.votes.ConfirmVote(ctx, target.Link, voterID); err != nil {
		return err
	}
	_, _ = f.Load(ctx, true)
	return nil
}

// ConfirmAll confirms every pending vote and returns how many were pending.
// Nothing is sent when no vote is pending.
func (f *ConfirmationFlow) ConfirmAll(ctx context.Context) (int, error) {
	f.op.Lock()
	defer f.op.Unlock()

	target, err := f.writable()
	if err != nil {
		return 0, err
	}
	board, err := f.ensureLoaded(ctx)
	if err != nil {
		return 0, err
	}

	pending := board.Pending
	if len(pending) == 0 {
		return 0, nil
	}

	switch f.strategy {
	case ConfirmAllSequential:
		for i, vote := range pending {
			if err := f.votes.ConfirmVote(ctx, target.Link, vote.Voter.ID); err != nil {
				_, _ = f.Load(ctx, true)
				return i, err
			}
		}
	default:
		if err := f.votes.ConfirmAllVotes(ctx, target.Link); err != nil {
			return 0, err
		}
	}

	_, _ = f.Load(ctx, true)
	return len(pending), nil
}

// Finalize records the outcome for the bound project. After it succeeds the
// flow rejects every further mutation with domain.ErrFinalized.
func (f *ConfirmationFlow) Finalize(ctx context.Context, outcome domain.Outcome) (domain.FinalSummary, error) {
	f.op.Lock()
	defer f.op.Unlock()

	status, err := outcome.ProjectStatus()
	if err != nil {
		return domain.FinalSummary{}, err
	}
	target, err := f.writable()
	if err != nil {
		return domain.FinalSummary{}, err
	}

	board, err := f.Load(ctx, false)
	if err != nil {
		return domain.FinalSummary{}, err
	}

	if err := f.projects.UpdateProjectStatus(ctx, target.Session.ID, target.Project.ID, status); err != nil {
		return domain.FinalSummary{}, err
	}

	summary := domain.SummarizeFinal(outcome, board.Tally)
	f.mu.Lock()
	f.finalized = &summary
	f.mu.Unlock()
	f.logger.Info("project finalized",
		zap.String("project", string(target.Project.ID)),
		zap.String("outcome", string(outcome)),
	)
	return summary, nil
}

// HandleEvent silently reloads the board for events of the bound session.
func (f *ConfirmationFlow) HandleEvent(ctx context.Context, event domain.SessionEvent) {
	if !event.Type.Known() {
		return
	}
	target, ok := f.Target()
	if !ok || target.Session.ID != event.SessionID {
		return
	}
	_, _ = f.Load(ctx, true)
}

func (f *ConfirmationFlow) writable() (ConfirmationTarget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.target == nil {
		return ConfirmationTarget{}, domain.ErrNoProjectInVoting
	}
	if f.finalized != nil {
		return ConfirmationTarget{}, domain.ErrFinalized
	}
	return *f.target, nil
}

func (f *ConfirmationFlow) ensureLoaded(ctx context.Context) (domain.ConfirmationBoard, error) {
	f.mu.Lock()
	loaded, board := f.loaded, f.board
	f.mu.Unlock()
	if loaded {
		return board, nil
	}
	board, err := f.Load(ctx, false)
	if err != nil {
		return domain.ConfirmationBoard{}, fmt.Errorf("load votes: %w", err)
	}
	return board, nil
}

// IsFinalized reports whether Finalize already succeeded.
func (f *ConfirmationFlow) IsFinalized() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finalized != nil
}
