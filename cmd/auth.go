package cmd

import (
	"fmt"

	statusview "github.com/camaradigital/camara-cli/internal/adapters/render/status"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var userName, password string

	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Sign in with your chamber user name and password",
		Annotations: map[string]string{sessionAnnotation: sessionOptional},
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			var err error
			if userName, err = prompt.askIfEmpty(userName, "Usuário"); err != nil {
				return err
			}
			if password, err = prompt.secretIfEmpty(password, "Senha"); err != nil {
				return err
			}

			creds, err := app.auth.Login(cmd.Context(), domain.LoginRequest{UserName: userName, Password: password})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Bem-vindo(a), %s (%s)\n", creds.User.Name, creds.User.Role()); err != nil {
				return err
			}
			if creds.Chamber.Name != "" {
				if _, err := fmt.Fprintln(out, creds.Chamber.Name); err != nil {
					return err
				}
			}
			if creds.PasswordResetRequired {
				_, err = fmt.Fprintln(out, "Troca de senha obrigatória: execute `camara password change` antes de continuar.")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&userName, "user", "u", "", "User name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "Remove the stored profile and access token",
		Annotations: map[string]string{sessionAnnotation: sessionOptional},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada neste dispositivo.")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user, role and chamber",
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := statusview.RenderIdentity(app.creds, statusview.RenderOptions{Now: app.now()})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newPasswordCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Manage your password",
	}

	cmd.AddCommand(newPasswordChangeCmd(app))

	return cmd
}

func newPasswordChangeCmd(app *app) *cobra.Command {
	var current, next, confirmation string

	cmd := &cobra.Command{
		Use:         "change",
		Short:       "Change your password (required after the first sign-in)",
		Long:        "Change your password. The new password needs at least 6 characters with upper and lower case letters, a digit and a special character.",
		Annotations: map[string]string{sessionAnnotation: sessionOptional},
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			var err error
			if current, err = prompt.secretIfEmpty(current, "Senha atual"); err != nil {
				return err
			}
			if next, err = prompt.secretIfEmpty(next, "Nova senha"); err != nil {
				return err
			}
			if confirmation, err = prompt.secretIfEmpty(confirmation, "Confirme a nova senha"); err != nil {
				return err
			}

			if err := app.auth.ChangePassword(cmd.Context(), domain.ChangePasswordRequest{
				CurrentPassword: current,
				NewPassword:     next,
				Confirmation:    confirmation,
			}); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Senha alterada com sucesso.")
			return err
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current password")
	cmd.Flags().StringVar(&next, "new", "", "New password")
	cmd.Flags().StringVar(&confirmation, "confirm", "", "New password again")

	return cmd
}

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored access token",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Exchange the stored token for a fresh one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := app.auth.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Token renovado; expira em %s\n", creds.ExpiresAt.Local().Format("02/01/2006 15:04"))
			return err
		},
	})

	return cmd
}
