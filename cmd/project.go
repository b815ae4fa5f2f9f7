package cmd

import (
	"context"
	"fmt"
	"strings"

	statusview "github.com/camaradigital/camara-cli/internal/adapters/render/status"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projeto"},
		Short:   "Browse the projects of a session",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectSendToVotingCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *app) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the projects of a session (the active one by default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessionOrActive(cmd.Context(), sessionID)
			if err != nil {
				return err
			}

			var projects []domain.Project
			fetch := func(ctx context.Context, _ func(int)) error {
				projects, err = app.directory.ListProjects(ctx, session.ID)
				return err
			}
			if err := statusview.Fetch(cmd.Context(), cmd.ErrOrStderr(), "Carregando projetos...", fetch); err != nil {
				return err
			}

			output, err := statusview.RenderProjects(session, projects)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session id (defaults to the session in progress)")

	return cmd
}

func newProjectSendToVotingCmd(app *app) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "send-to-voting <project-id>",
		Short: "Put a presented project under voting (presiding officer)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePresident(); err != nil {
				return err
			}
			session, err := app.sessionOrActive(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			projectID := domain.ProjectID(strings.TrimSpace(args[0]))
			if err := app.directory.SendToVoting(cmd.Context(), session.ID, projectID); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Projeto %s em votação.\n", projectID)
			return err
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session id (defaults to the session in progress)")

	return cmd
}

// sessionOrActive returns the session named by id, or the one in progress
// when id is blank. Only the id is known for an explicit session.
func (a *app) sessionOrActive(ctx context.Context, id string) (domain.Session, error) {
	if id = strings.TrimSpace(id); id != "" {
		return domain.Session{ID: domain.SessionID(id)}, nil
	}
	return a.resolver.Require(ctx)
}
