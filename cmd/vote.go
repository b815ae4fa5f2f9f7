package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	statusview "github.com/camaradigital/camara-cli/internal/adapters/render/status"
	"github.com/camaradigital/camara-cli/internal/application"
	"github.com/camaradigital/camara-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newVoteCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vote",
		Aliases: []string{"votar"},
		Short:   "Vote on the project under voting",
	}

	cmd.AddCommand(
		newVoteStatusCmd(app),
		newVoteCastCmd(app),
		newVoteWatchCmd(app),
	)

	return cmd
}

// syncVoting resolves the active session and walks the voting flow to its
// first settled state. A missing session is a state, not an error.
func (a *app) syncVoting(ctx context.Context, flow *application.VotingFlow) (application.VotingSnapshot, error) {
	active := a.resolver.Refresh(ctx)
	if active.Err != nil {
		return application.VotingSnapshot{}, active.Err
	}
	return flow.Sync(ctx, active.Session), nil
}

func newVoteStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the project under voting and whether you already voted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flow := app.votingFlow(nil)
			defer flow.Close()

			snapshot, err := app.syncVoting(cmd.Context(), flow)
			if err != nil {
				return err
			}
			output, err := statusview.RenderVoting(snapshot, statusview.RenderOptions{Now: app.now()})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newVoteCastCmd(app *app) *cobra.Command {
	var (
		rawChoice string
		assumeYes bool
	)

	cmd := &cobra.Command{
		Use:   "cast",
		Short: "Cast your vote: approve, reject or abstain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

			flow := app.votingFlow(nil)
			defer flow.Close()

			snapshot, err := app.syncVoting(cmd.Context(), flow)
			if err != nil {
				return err
			}
			switch snapshot.State {
			case application.VotingNoActiveSession:
				return domain.ErrNoActiveSession
			case application.VotingNoProjectInVoting:
				return domain.ErrNoProjectInVoting
			case application.VotingAlreadyVoted:
				return domain.ErrAlreadyVoted
			}

			if rawChoice, err = prompt.askIfEmpty(rawChoice, "Voto (aprovar/rejeitar/abster)"); err != nil {
				return err
			}
			choice, err := domain.ParseVoteChoice(rawChoice)
			if err != nil {
				return err
			}

			confirm := func(project domain.Project, choice domain.VoteChoice) bool {
				if assumeYes {
					return true
				}
				return prompt.confirm(fmt.Sprintf("Confirmar voto %q em %q?", choice.Label(), project.Title))
			}
			result, err := flow.Submit(cmd.Context(), choice, confirm)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Voto registrado: %s em %q\n", result.Choice.Label(), result.Project.Title); err != nil {
				return err
			}
			if result.PresidentNext {
				_, err = fmt.Fprintln(out, "Próximo passo: confirme os votos com `camara confirm list`.")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&rawChoice, "choice", "c", "", "approve, reject or abstain (prompted when omitted)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newVoteWatchCmd(app *app) *cobra.Command {
	var (
		maxAttempts  uint
		sessionCheck time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the session live; the presiding officer also sees the votes to confirm",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.watch(cmd, maxAttempts, sessionCheck)
		},
	}

	cmd.Flags().UintVar(&maxAttempts, "max-attempts", 0, "Failed connection attempts before giving up (0 retries forever)")
	cmd.Flags().DurationVar(&sessionCheck, "session-check", application.DefaultSessionCheck, "How often to confirm the session is still in progress")

	return cmd
}

func (a *app) watch(cmd *cobra.Command, maxAttempts uint, sessionCheck time.Duration) error {
	session, err := a.resolver.Require(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	program := tea.NewProgram(
		statusview.NewWatchModel(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	flow := a.votingFlow(func(snapshot application.VotingSnapshot) {
		program.Send(statusview.VotingMsg(snapshot))
	})
	defer flow.Close()
	handlers := []application.EventHandler{flow.HandleEvent}

	var board *application.ConfirmationFlow
	if a.creds.User.President {
		board = a.confirmationFlow(func(b domain.ConfirmationBoard) {
			target, _ := board.Target()
			program.Send(statusview.BoardMsg{Target: target, Board: b})
		})
		// Runs after the voting flow, which has just refreshed the resolver.
		handlers = append(handlers, func(ctx context.Context, event domain.SessionEvent) {
			if _, bound := board.Target(); !bound || event.Type == domain.EventVotingOpened {
				if active := a.resolver.Snapshot(); active.Follows(session.ID) {
					a.bindBoard(ctx, board, *active.Session)
				}
				return
			}
			board.HandleEvent(ctx, event)
		})
	}

	feed, err := a.eventFeed(func(state domain.ConnState) {
		program.Send(statusview.ConnMsg(state))
	}, maxAttempts)
	if err != nil {
		return err
	}
	refresher := application.NewLiveRefresher(feed, a.logger, handlers...)

	var (
		wg    sync.WaitGroup
		ended bool
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		flow.Sync(ctx, &session)
		if board != nil {
			a.bindBoard(ctx, board, session)
		}
		err := a.follow(ctx, session.ID, refresher, sessionCheck)
		if errors.Is(err, domain.ErrSessionEnded) {
			ended = true
			flow.Sync(ctx, a.resolver.Snapshot().Session)
			err = nil
		}
		program.Send(statusview.StopMsg{Err: err})
	}()

	final, runErr := program.Run()
	cancel()
	wg.Wait()

	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			return nil
		}
		return runErr
	}
	if ended {
		fmt.Fprintf(cmd.OutOrStdout(), "A sessão %q não está mais em andamento.\n", session.Name)
	}
	if model, ok := final.(statusview.WatchModel); ok {
		return model.Err()
	}
	return nil
}

// follow keeps the realtime feed open until ctx ends, the feed gives up or
// sessionID stops being the session in progress.
func (a *app) follow(ctx context.Context, sessionID domain.SessionID, refresher *application.LiveRefresher, every time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return refresher.Run(gctx, sessionID)
	})
	g.Go(func() error {
		return a.resolver.Watch(gctx, sessionID, every, nil)
	})
	return g.Wait()
}

// bindBoard points the board at the project now in voting and loads it.
func (a *app) bindBoard(ctx context.Context, board *application.ConfirmationFlow, session domain.Session) {
	if _, err := board.Bind(ctx, session); err != nil {
		a.logger.Debug("no project to confirm yet", zap.Error(err))
		return
	}
	if _, err := board.Load(ctx, false); err != nil {
		a.logger.Debug("load confirmation board", zap.String("session", string(session.ID)), zap.Error(err))
	}
}
