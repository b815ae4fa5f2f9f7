package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	statusview "github.com/camaradigital/camara-cli/internal/adapters/render/status"
	"github.com/camaradigital/camara-cli/internal/application"
	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/spf13/cobra"
)

var dateLayouts = []string{"2006-01-02", "02/01/2006"}

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"sessao"},
		Short:   "Browse and manage chamber sessions",
	}

	cmd.AddCommand(
		newSessionActiveCmd(app),
		newSessionListCmd(app),
		newSessionOpenCmd(app),
		newSessionCloseCmd(app),
	)

	return cmd
}

func newSessionActiveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "Show the session in progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			active := app.resolver.Refresh(cmd.Context())
			if active.Err != nil {
				return active.Err
			}
			output, err := statusview.RenderActiveSession(active)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

type sessionListOptions struct {
	name   string
	date   string
	status string
	limit  int
	offset int
	all    bool
	json   bool
}

func newSessionListCmd(app *app) *cobra.Command {
	var opts sessionListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest pages first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := opts.filter()
			if err != nil {
				return err
			}

			var (
				sessions []domain.Session
				hasMore  bool
			)
			fetch := func(ctx context.Context, progress func(int)) error {
				if !opts.all {
					page, err := app.directory.ListSessions(ctx, filter, domain.PageRequest{Limit: opts.limit, Offset: opts.offset})
					if err != nil {
						return err
					}
					sessions, hasMore = page.Sessions, page.HasMore
					return nil
				}
				pager := app.directory.NewPager(filter, opts.limit)
				for pager.HasMore() {
					if _, err := pager.Next(ctx); err != nil {
						return err
					}
					progress(pager.Offset())
				}
				sessions = pager.Sessions()
				return nil
			}
			if err := statusview.Fetch(cmd.Context(), cmd.ErrOrStderr(), "Carregando sessões...", fetch); err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), sessionsJSON(sessions, hasMore))
			}
			output, err := statusview.RenderSessions(sessions, hasMore)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Filter by name, ignoring accents and case")
	cmd.Flags().StringVar(&opts.date, "date", "", "Filter by date (2006-01-02 or 02/01/2006)")
	cmd.Flags().StringVar(&opts.status, "status", "", "Filter by status (scheduled, in_progress, closed, cancelled)")
	cmd.Flags().IntVar(&opts.limit, "limit", application.DefaultPageSize, "Page size")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Sessions to skip")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Fetch every page")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print JSON instead of the table")

	return cmd
}

func (o sessionListOptions) filter() (domain.SessionFilter, error) {
	filter := domain.SessionFilter{Name: strings.TrimSpace(o.name)}
	if raw := strings.TrimSpace(o.date); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			return domain.SessionFilter{}, err
		}
		filter.Date = date
	}
	if raw := strings.TrimSpace(o.status); raw != "" {
		status, err := domain.ParseSessionStatus(raw)
		if err != nil {
			return domain.SessionFilter{}, err
		}
		filter.Status = &status
	}
	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use 2006-01-02 or 02/01/2006)", raw)
}

func newSessionOpenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <session-id>",
		Short: "Open a scheduled session (presiding officer)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePresident(); err != nil {
				return err
			}
			id := domain.SessionID(strings.TrimSpace(args[0]))
			if err := app.directory.OpenSession(cmd.Context(), id); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Sessão %s aberta.\n", id)
			return err
		},
	}
}

func newSessionCloseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "close <session-id>",
		Short: "Close the session in progress (presiding officer)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePresident(); err != nil {
				return err
			}
			id := domain.SessionID(strings.TrimSpace(args[0]))
			if err := app.directory.CloseSession(cmd.Context(), id); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Sessão %s encerrada.\n", id)
			return err
		},
	}
}

type sessionJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Date        string `json:"date,omitempty"`
}

type sessionListJSON struct {
	Sessions []sessionJSON `json:"sessions"`
	HasMore  bool          `json:"has_more"`
}

func sessionsJSON(sessions []domain.Session, hasMore bool) sessionListJSON {
	out := sessionListJSON{Sessions: make([]sessionJSON, 0, len(sessions)), HasMore: hasMore}
	for _, s := range sessions {
		item := sessionJSON{
			ID:          string(s.ID),
			Name:        s.Name,
			Description: s.Description,
			Status:      s.Status.Label(),
		}
		if !domain.IsPlaceholderDate(s.Date) {
			item.Date = s.Date.Format("2006-01-02")
		}
		out.Sessions = append(out.Sessions, item)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
