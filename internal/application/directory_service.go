package application

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultPageSize = 20
	scanPageSize    = 100
	maxScanPages    = 50
)

// DirectoryService lists sessions and projects and applies the status gates
// before any mutation reaches the backend.
type DirectoryService struct {
	sessions ports.SessionGateway
	projects ports.ProjectGateway
	logger   *zap.Logger
}

func NewDirectoryService(sessions ports.SessionGateway, projects ports.ProjectGateway, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{sessions: sessions, projects: projects, logger: logger}
}

// ListSessions returns one page of sessions. A name filter is matched here,
// ignoring accents and case, over the unfiltered agenda because the backend
// compares names literally; Offset and Limit then count matches.
func (s *DirectoryService) ListSessions(ctx context.Context, filter domain.SessionFilter, page domain.PageRequest) (domain.SessionPage, error) {
	if page.Limit <= 0 {
		page.Limit = DefaultPageSize
	}
	if foldText(filter.Name) == "" {
		return s.sessions.ListSessions(ctx, filter, page)
	}
	return s.searchSessions(ctx, filter, page)
}

func (s *DirectoryService) searchSessions(ctx context.Context, filter domain.SessionFilter, page domain.PageRequest) (domain.SessionPage, error) {
	needle := foldText(filter.Name)
	remote := filter
	remote.Name = ""

	matches, err := s.scanSessions(ctx, remote, func(session domain.Session) bool {
		return strings.Contains(foldText(session.Name), needle)
	}, page.Offset+page.Limit+1)
	if err != nil {
		return domain.SessionPage{}, err
	}

	result := domain.SessionPage{Offset: page.Offset}
	if page.Offset >= len(matches) {
		return result, nil
	}
	matches = matches[page.Offset:]
	if len(matches) > page.Limit {
		matches = matches[:page.Limit]
		result.HasMore = true
	}
	result.Sessions = matches
	return result, nil
}

func (s *DirectoryService) NewPager(filter domain.SessionFilter, limit int) *Pager {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return &Pager{service: s, filter: filter, limit: limit, hasMore: true}
}

func (s *DirectoryService) OpenSession(ctx context.Context, id domain.SessionID) error {
	all, err := s.allSessions(ctx)
	if err != nil {
		return err
	}
	target, ok := domain.FindSession(all, id)
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	active, err := s.sessions.GetActiveSession(ctx)
	if err == nil && !domain.IsEmptySession(active) {
		if _, listed := domain.FindSession(all, active.ID); !listed {
			all = append(all, active)
		}
	}

	if err := domain.CanOpenSession(target, all); err != nil {
		return err
	}
	return s.sessions.OpenSession(ctx, id)
}

func (s *DirectoryService) CloseSession(ctx context.Context, id domain.SessionID) error {
	all, err := s.allSessions(ctx)
	if err != nil {
		return err
	}
	target, ok := domain.FindSession(all, id)
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	if err := domain.CanCloseSession(target); err != nil {
		return err
	}
	return s.sessions.CloseSession(ctx, id)
}

func (s *DirectoryService) ListProjects(ctx context.Context, sessionID domain.SessionID) ([]domain.Project, error) {
	projects, err := s.projects.ListProjectsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if domain.IsEmptyProject(p) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *DirectoryService) SendToVoting(ctx context.Context, sessionID domain.SessionID, projectID domain.ProjectID) error {
	projects, err := s.ListProjects(ctx, sessionID)
	if err != nil {
		return err
	}
	target, ok := domain.FindProject(projects, projectID)
	if !ok {
		return fmt.Errorf("project %s in session %s: %w", projectID, sessionID, domain.ErrNotFound)
	}
	if err := domain.CanSendToVoting(target, projects); err != nil {
		return err
	}
	return s.projects.UpdateProjectStatus(ctx, sessionID, projectID, domain.ProjectInVoting)
}

// allSessions walks every page; the gates need the whole chamber agenda.
func (s *DirectoryService) allSessions(ctx context.Context) ([]domain.Session, error) {
	return s.scanSessions(ctx, domain.SessionFilter{}, nil, 0)
}

// scanSessions walks backend pages keeping the sessions keep accepts (all
// when nil) and stops once it holds want of them. A want of zero scans
// everything.
func (s *DirectoryService) scanSessions(ctx context.Context, filter domain.SessionFilter, keep func(domain.Session) bool, want int) ([]domain.Session, error) {
	var kept []domain.Session
	page := domain.PageRequest{Limit: scanPageSize}
	for i := 0; i < maxScanPages; i++ {
		result, err := s.sessions.ListSessions(ctx, filter, page)
		if err != nil {
			return nil, err
		}
		for _, session := range result.Sessions {
			if keep == nil || keep(session) {
				kept = append(kept, session)
			}
		}
		if want > 0 && len(kept) >= want {
			return kept, nil
		}
		if !result.HasMore || len(result.Sessions) == 0 {
			return kept, nil
		}
		page.Offset += len(result.Sessions)
	}
	s.logger.Warn("session scan truncated", zap.Int("sessions", len(kept)))
	return kept, nil
}

// Pager drives "load more" over the session list.
type Pager struct {
	service  *DirectoryService
	filter   domain.SessionFilter
	limit    int
	offset   int
	hasMore  bool
	sessions []domain.Session
}

// Next fetches the following page and returns only its sessions. It returns
// an empty slice once the backend reported no more pages.
func (p *Pager) Next(ctx context.Context) ([]domain.Session, error) {
	if !p.hasMore {
		return nil, nil
	}
	result, err := p.service.ListSessions(ctx, p.filter, domain.PageRequest{Limit: p.limit, Offset: p.offset})
	if err != nil {
		return nil, err
	}

	p.offset += len(result.Sessions)
	p.hasMore = result.HasMore && len(result.Sessions) > 0
	p.sessions = append(p.sessions, result.Sessions...)
	return result.Sessions, nil
}

func (p *Pager) HasMore() bool { return p.hasMore }

func (p *Pager) Offset() int { return p.offset }

func (p *Pager) Sessions() []domain.Session {
	return append([]domain.Session(nil), p.sessions...)
}

// Reset starts over, e.g. after a pull-to-refresh or a filter change.
func (p *Pager) Reset(filter domain.SessionFilter) {
	p.filter = filter
	p.offset = 0
	p.hasMore = true
	p.sessions = nil
}

// foldText strips diacritics and case so "Sessao" matches "Sessão".
func foldText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
