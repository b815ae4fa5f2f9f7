package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	// sessionAnnotation marks commands that run without a signed-in,
	// password-current user.
	sessionAnnotation = "camara/session"
	sessionOptional   = "optional"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Erro:", userMessage(err))
	}
	return err
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "camara",
		Short:         "Câmara Digital CLI: sessions, voting and vote confirmation",
		Long:          "camara lets council members sign in, follow the session in progress and vote on the project under voting; the presiding officer also manages sessions, confirms votes and records the final result.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if verbose {
			app.level.SetLevel(zap.DebugLevel)
		}
		return app.gate(cmd)
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPasswordCmd(app),
		newAuthCmd(app),
		newSessionCmd(app),
		newProjectCmd(app),
		newVoteCmd(app),
		newConfirmCmd(app),
	)

	return rootCmd
}

// gate loads the signed-in user and blocks everything but the annotated
// commands while a password change is pending.
func (a *app) gate(cmd *cobra.Command) error {
	if cmd.Annotations[sessionAnnotation] == sessionOptional {
		return nil
	}
	creds, err := a.auth.RequireSession(cmd.Context())
	if err != nil {
		return err
	}
	a.creds = creds
	return nil
}
