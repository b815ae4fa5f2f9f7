package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	statusview "github.com/camaradigital/camara-cli/internal/adapters/render/status"
	"github.com/camaradigital/camara-cli/internal/application"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errOutcomeRequired = errors.New("choose exactly one of --approve or --reject")

func newConfirmCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "confirm",
		Aliases: []string{"confirmar"},
		Short:   "Confirm votes and record the result (presiding officer)",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// cobra runs only the nearest PersistentPreRunE.
			if err := cmd.Root().PersistentPreRunE(cmd, nil); err != nil {
				return err
			}
			return app.requirePresident()
		},
	}

	cmd.AddCommand(
		newConfirmListCmd(app),
		newConfirmVoteCmd(app),
		newConfirmAllCmd(app),
		newConfirmFinalizeCmd(app),
	)

	return cmd
}

// boundConfirmation binds a fresh confirmation flow to the project now in
// voting in the active session.
func (a *app) boundConfirmation(ctx context.Context) (*application.ConfirmationFlow, application.ConfirmationTarget, error) {
	session, err := a.resolver.Require(ctx)
	if err != nil {
		return nil, application.ConfirmationTarget{}, err
	}
	flow := a.confirmationFlow(nil)
	target, err := flow.Bind(ctx, session)
	if err != nil {
		return nil, application.ConfirmationTarget{}, err
	}
	return flow, target, nil
}

func newConfirmListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show pending and confirmed votes with the current tally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flow, target, err := app.boundConfirmation(cmd.Context())
			if err != nil {
				return err
			}
			board, err := flow.Load(cmd.Context(), false)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), boardJSON(target, board))
			}
			return printBoard(cmd, target, board)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of the board")

	return cmd
}

func newConfirmVoteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <voter-id>",
		Short: "Confirm one member's vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, target, err := app.boundConfirmation(cmd.Context())
			if err != nil {
				return err
			}
			if err := flow.ConfirmVote(cmd.Context(), domain.VoterID(strings.TrimSpace(args[0]))); err != nil {
				return err
			}
			return printBoard(cmd, target, flow.Board())
		},
	}
}

func newConfirmAllCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Confirm every pending vote",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flow, target, err := app.boundConfirmation(cmd.Context())
			if err != nil {
				return err
			}
			confirmed, err := flow.ConfirmAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("%d voto(s) confirmado(s) antes da falha: %w", confirmed, err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d voto(s) confirmado(s).\n", confirmed); err != nil {
				return err
			}
			return printBoard(cmd, target, flow.Board())
		},
	}
}

func newConfirmFinalizeCmd(app *app) *cobra.Command {
	var approve, reject, assumeYes bool

	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Record the project as approved or rejected (irreversible)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if approve == reject {
				return errOutcomeRequired
			}
			outcome := domain.OutcomeApproved
			if reject {
				outcome = domain.OutcomeRejected
			}

			flow, target, err := app.boundConfirmation(cmd.Context())
			if err != nil {
				return err
			}

			status, err := outcome.ProjectStatus()
			if err != nil {
				return err
			}
			if !assumeYes {
				prompt := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
				question := fmt.Sprintf("Registrar %q como %s? Esta ação não pode ser desfeita.", target.Project.Title, status.Label())
				if !prompt.confirm(question) {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "Nada foi alterado.")
					return err
				}
			}

			summary, err := flow.Finalize(cmd.Context(), outcome)
			if err != nil {
				return err
			}
			output, err := statusview.RenderFinalSummary(target.Project, summary)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "Record the project as approved")
	cmd.Flags().BoolVar(&reject, "reject", false, "Record the project as rejected")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.MarkFlagsMutuallyExclusive("approve", "reject")

	return cmd
}

func printBoard(cmd *cobra.Command, target application.ConfirmationTarget, board domain.ConfirmationBoard) error {
	output, err := statusview.RenderBoard(target, board)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

type voteJSON struct {
	ID        string `json:"id"`
	VoterID   string `json:"voter_id"`
	VoterName string `json:"voter_name"`
	Value     string `json:"value"`
	Confirmed bool   `json:"confirmed"`
}

type tallyJSON struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Abstain int `json:"abstain"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

type boardOutputJSON struct {
	SessionID string     `json:"session_id"`
	ProjectID string     `json:"project_id"`
	Project   string     `json:"project"`
	Pending   []voteJSON `json:"pending"`
	Confirmed []voteJSON `json:"confirmed"`
	Tally     tallyJSON  `json:"tally"`
}

func boardJSON(target application.ConfirmationTarget, board domain.ConfirmationBoard) boardOutputJSON {
	return boardOutputJSON{
		SessionID: string(target.Session.ID),
		ProjectID: string(target.Project.ID),
		Project:   target.Project.Title,
		Pending:   votesJSON(board.Pending),
		Confirmed: votesJSON(board.Confirmed),
		Tally: tallyJSON{
			Yes:     board.Tally.Yes,
			No:      board.Tally.No,
			Abstain: board.Tally.Abstain,
			Absent:  board.Tally.Absent,
			Total:   board.Tally.Total,
		},
	}
}

func votesJSON(votes []domain.Vote) []voteJSON {
	out := make([]voteJSON, 0, len(votes))
	for _, v := range votes {
		out = append(out, voteJSON{
			ID:        string(v.ID),
			VoterID:   string(v.Voter.ID),
			VoterName: v.Voter.Name,
			Value:     string(v.Value),
			Confirmed: v.Confirmed,
		})
	}
	return out
}
