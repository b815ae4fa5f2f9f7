package ports

import (
	"context"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
)

type AuthGateway interface {
	SignIn(ctx context.Context, req domain.LoginRequest) (domain.Credentials, error)
	RefreshToken(ctx context.Context) (token string, expiresAt time.Time, err error)
	ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error
}

type SessionGateway interface {
	// GetActiveSession may return an empty sentinel session instead of an error.
	GetActiveSession(ctx context.Context) (domain.Session, error)
	ListSessions(ctx context.Context, filter domain.SessionFilter, page domain.PageRequest) (domain.SessionPage, error)
	OpenSession(ctx context.Context, id domain.SessionID) error
	CloseSession(ctx context.Context, id domain.SessionID) error
}

type ProjectGateway interface {
	ListProjectsBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Project, error)
	// GetProjectInVoting may return a project carrying the nil UUID when none is in voting.
	GetProjectInVoting(ctx context.Context, sessionID domain.SessionID) (domain.Project, error)
	UpdateProjectStatus(ctx context.Context, sessionID domain.SessionID, projectID domain.ProjectID, status domain.ProjectStatus) error
}

type VoteGateway interface {
	CastVote(ctx context.Context, projectID domain.ProjectID, sessionID domain.SessionID, value domain.VoteValue) error
	HasVoted(ctx context.Context, link domain.SessionProjectID) (bool, error)
	GetSessionProjectID(ctx context.Context, projectID domain.ProjectID, sessionID domain.SessionID) (domain.SessionProjectID, error)
	GetPendingTally(ctx context.Context, link domain.SessionProjectID) (domain.VoteTally, error)
	GetConfirmedTally(ctx context.Context, projectID domain.ProjectID, sessionID domain.SessionID) (domain.VoteTally, error)
	ConfirmVote(ctx context.Context, link domain.SessionProjectID, voterID domain.VoterID) error
	ConfirmAllVotes(ctx context.Context, link domain.SessionProjectID) error
}
