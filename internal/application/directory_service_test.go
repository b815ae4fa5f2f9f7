package application

import (
	"context"
	"testing"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) (*DirectoryService, *mocks.MockSessionGateway, *mocks.MockProjectGateway) {
	t.Helper()
	sessions := mocks.NewMockSessionGateway(t)
	projects := mocks.NewMockProjectGateway(t)
	return NewDirectoryService(sessions, projects, nil), sessions, projects
}

func session(id string, name string, status domain.SessionStatus) domain.Session {
	return domain.Session{
		ID:     domain.SessionID(id),
		Name:   name,
		Status: status,
		Date:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func project(id string, status domain.ProjectStatus) domain.Project {
	return domain.Project{ID: domain.ProjectID(id), Title: "Projeto " + id, Status: status}
}

func TestDirectoryListSessionsMatchesNameIgnoringAccents(t *testing.T) {
	t.Parallel()

	directory, sessions, _ := newDirectory(t)
	scheduled := domain.SessionScheduled
	filter := domain.SessionFilter{Name: "sessao ordinaria", Status: &scheduled}
	// The backend compares names literally, so the name stays local.
	remote := domain.SessionFilter{Status: &scheduled}
	sessions.EXPECT().ListSessions(mockAnyContext(), remote, domain.PageRequest{Limit: scanPageSize}).Return(domain.SessionPage{
		Sessions: []domain.Session{
			session("s-1", "Sessão Ordinária 01", domain.SessionScheduled),
			session("s-2", "Sessão Extraordinária", domain.SessionScheduled),
			session("s-3", "SESSÃO ORDINÁRIA 02", domain.SessionScheduled),
		},
	}, nil).Once()

	page, err := directory.ListSessions(context.Background(), filter, domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Sessions, 2)
	assert.Equal(t, domain.SessionID("s-1"), page.Sessions[0].ID)
	assert.Equal(t, domain.SessionID("s-3"), page.Sessions[1].ID)
	assert.False(t, page.HasMore)
}

func TestDirectoryPagerCountsNameMatches(t *testing.T) {
	t.Parallel()

	directory, sessions, _ := newDirectory(t)
	sessions.EXPECT().ListSessions(mockAnyContext(), domain.SessionFilter{}, domain.PageRequest{Limit: scanPageSize}).Return(domain.SessionPage{
		Sessions: []domain.Session{
			session("s-1", "Sessão Solene", domain.SessionClosed),
			session("s-2", "Audiência Pública", domain.SessionClosed),
			session("s-3", "Sessao solene de posse", domain.SessionScheduled),
		},
		HasMore: true,
	}, nil).Twice()
	sessions.EXPECT().ListSessions(mockAnyContext(), domain.SessionFilter{}, domain.PageRequest{Limit: scanPageSize, Offset: 3}).Return(domain.SessionPage{
		Sessions: []domain.Session{session("s-4", "Sessão Ordinária", domain.SessionScheduled)},
	}, nil).Once()

	pager := directory.NewPager(domain.SessionFilter{Name: "SOLENE"}, 1)

	first, err := pager.Next(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, domain.SessionID("s-1"), first[0].ID)
	assert.True(t, pager.HasMore())
	assert.Equal(t, 1, pager.Offset())

	second, err := pager.Next(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, domain.SessionID("s-3"), second[0].ID)
	assert.False(t, pager.HasMore())
	assert.Len(t, pager.Sessions(), 2)
}

func TestDirectoryPagerTracksOffsetAndHasMore(t *testing.T) {
	t.Parallel()

	directory, sessions, _ := newDirectory(t)
	filter := domain.SessionFilter{}
	sessions.EXPECT().ListSessions(mockAnyContext(), filter, domain.PageRequest{Limit: 2, Offset: 0}).Return(domain.SessionPage{
		Sessions: []domain.Session{session("s-1", "A", domain.SessionClosed), session("s-2", "B", domain.SessionClosed)},
		HasMore:  true,
	}, nil).Once()
	sessions.EXPECT().ListSessions(mockAnyContext(), filter, domain.PageRequest{Limit: 2, Offset: 2}).Return(domain.SessionPage{
		Sessions: []domain.Session{session("s-3", "C", domain.SessionScheduled)},
		HasMore:  false,
	}, nil).Once()

	pager := directory.NewPager(filter, 2)

	first, err := pager.Next(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.True(t, pager.HasMore())
	assert.Equal(t, 2, pager.Offset())

	second, err := pager.Next(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.False(t, pager.HasMore())
	assert.Len(t, pager.Sessions(), 3)

	third, err := pager.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, third)

	pager.Reset(domain.SessionFilter{Name: "x"})
	assert.True(t, pager.HasMore())
	assert.Zero(t, pager.Offset())
	assert.Empty(t, pager.Sessions())
}

func TestDirectoryOpenSessionGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		agenda   []domain.Session
		active   domain.Session
		target   string
		wantErr  error
		wantOpen bool
	}{
		{
			name:     "scheduled with nothing in progress",
			agenda:   []domain.Session{session("s-1", "A", domain.SessionScheduled), session("s-2", "B", domain.SessionClosed)},
			active:   domain.Session{ID: "00000000-0000-0000-0000-000000000000"},
			target:   "s-1",
			wantOpen: true,
		},
		{
			name:    "another session in progress",
			agenda:  []domain.Session{session("s-1", "A", domain.SessionScheduled), session("s-2", "B", domain.SessionInProgress)},
			active:  session("s-2", "B", domain.SessionInProgress),
			target:  "s-1",
			wantErr: domain.ErrSessionConflict,
		},
		{
			name:    "in progress session only reported by active endpoint",
			agenda:  []domain.Session{session("s-1", "A", domain.SessionScheduled)},
			active:  session("s-9", "Z", domain.SessionInProgress),
			target:  "s-1",
			wantErr: domain.ErrSessionConflict,
		},
		{
			name:    "closed session",
			agenda:  []domain.Session{session("s-1", "A", domain.SessionClosed)},
			active:  domain.Session{ID: "00000000-0000-0000-0000-000000000000"},
			target:  "s-1",
			wantErr: domain.ErrSessionConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			directory, sessions, _ := newDirectory(t)
			sessions.EXPECT().ListSessions(mockAnyContext(), domain.SessionFilter{}, domain.PageRequest{Limit: scanPageSize}).
				Return(domain.SessionPage{Sessions: tc.agenda}, nil).Once()
			sessions.EXPECT().GetActiveSession(mockAnyContext()).Return(tc.active, nil).Once()
			if tc.wantOpen {
				sessions.EXPECT().OpenSession(mockAnyContext(), domain.SessionID(tc.target)).Return(nil).Once()
			}

			err := directory.OpenSession(context.Background(), domain.SessionID(tc.target))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDirectoryOpenSessionUnknownID(t *testing.T) {
	t.Parallel()

	directory, sessions, _ := newDirectory(t)
	sessions.EXPECT().ListSessions(mockAnyContext(), domain.SessionFilter{}, domain.PageRequest{Limit: scanPageSize}).
		Return(domain.SessionPage{}, nil).Once()

	err := directory.OpenSession(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryCloseSessionRequiresInProgress(t *testing.T) {
	t.Parallel()

	directory, sessions, _ := newDirectory(t)
	agenda := domain.SessionPage{Sessions: []domain.Session{
		session("s-1", "A", domain.SessionInProgress),
		session("s-2", "B", domain.SessionScheduled),
	}}
	sessions.EXPECT().ListSessions(mockAnyContext(), domain.SessionFilter{}, domain.PageRequest{Limit: scanPageSize}).Return(agenda, nil).Twice()
	sessions.EXPECT().CloseSession(mockAnyContext(), domain.SessionID("s-1")).Return(nil).Once()

	require.NoError(t, directory.CloseSession(context.Background(), "s-1"))
	assert.ErrorIs(t, directory.CloseSession(context.Background(), "s-2"), domain.ErrSessionConflict)
}

func TestDirectorySendToVotingGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		projects []domain.Project
		target   string
		wantErr  error
	}{
		{
			name:     "presented with no sibling in voting",
			projects: []domain.Project{project("p-1", domain.ProjectPresented), project("p-2", domain.ProjectApproved)},
			target:   "p-1",
		},
		{
			name:     "sibling already in voting",
			projects: []domain.Project{project("p-1", domain.ProjectPresented), project("p-2", domain.ProjectInVoting)},
			target:   "p-1",
			wantErr:  domain.ErrProjectConflict,
		},
		{
			name:     "already decided",
			projects: []domain.Project{project("p-1", domain.ProjectRejected)},
			target:   "p-1",
			wantErr:  domain.ErrProjectConflict,
		},
		{
			name:     "unknown project",
			projects: []domain.Project{project("p-1", domain.ProjectPresented)},
			target:   "p-404",
			wantErr:  domain.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			directory, _, projects := newDirectory(t)
			projects.EXPECT().ListProjectsBySession(mockAnyContext(), sessionID).Return(tc.projects, nil).Once()
			if tc.wantErr == nil {
				projects.EXPECT().UpdateProjectStatus(mockAnyContext(), sessionID, domain.ProjectID(tc.target), domain.ProjectInVoting).Return(nil).Once()
			}

			err := directory.SendToVoting(context.Background(), sessionID, domain.ProjectID(tc.target))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDirectoryListProjectsDropsSentinels(t *testing.T) {
	t.Parallel()

	directory, _, projects := newDirectory(t)
	projects.EXPECT().ListProjectsBySession(mockAnyContext(), sessionID).Return([]domain.Project{
		project("00000000-0000-0000-0000-000000000000", domain.ProjectPresented),
		project("p-1", domain.ProjectPresented),
	}, nil).Once()

	got, err := directory.ListProjects(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ProjectID("p-1"), got[0].ID)
}

func TestFoldTextStripsAccentsAndCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sessao extraordinaria", foldText("  Sessão EXTRAORDINÁRIA "))
	assert.Equal(t, "", foldText("   "))
}
