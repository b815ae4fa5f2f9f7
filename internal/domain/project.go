package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProjectID string

// SessionProjectID is the backend-assigned link between one project and one session.
type SessionProjectID string

// ProjectStatus values match the integers the backend serializes.
type ProjectStatus int

const (
	ProjectPresented ProjectStatus = 0
	ProjectInVoting  ProjectStatus = 1
	ProjectApproved  ProjectStatus = 2
	ProjectRejected  ProjectStatus = 3
	ProjectCancelled ProjectStatus = 4
)

func (s ProjectStatus) Label() string {
	switch s {
	case ProjectPresented:
		return "Apresentado"
	case ProjectInVoting:
		return "Em Votação"
	case ProjectApproved:
		return "Aprovado"
	case ProjectRejected:
		return "Rejeitado"
	case ProjectCancelled:
		return "Cancelado"
	default:
		return "Desconhecido"
	}
}

// WireName is the string the status-update endpoint expects.
// "Reprovado" was accepted by older backends for ProjectRejected and is no longer sent.
func (s ProjectStatus) WireName() (string, error) {
	switch s {
	case ProjectInVoting:
		return "EmVotacao", nil
	case ProjectApproved:
		return "Aprovado", nil
	case ProjectRejected:
		return "Rejeitado", nil
	default:
		return "", fmt.Errorf("project status %q cannot be requested by the client", s.Label())
	}
}

// ParseProjectStatus accepts the wire integer, the update-endpoint name or the label.
func ParseProjectStatus(raw string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "apresentado", "presented":
		return ProjectPresented, nil
	case "1", "emvotacao", "em votação", "em votacao", "in_voting":
		return ProjectInVoting, nil
	case "2", "aprovado", "approved":
		return ProjectApproved, nil
	case "3", "rejeitado", "reprovado", "rejected":
		return ProjectRejected, nil
	case "4", "cancelado", "cancelled":
		return ProjectCancelled, nil
	default:
		return 0, fmt.Errorf("unsupported project status %q", raw)
	}
}

type Project struct {
	ID          ProjectID
	Title       string
	Description string
	Status      ProjectStatus
	Approved    bool
	AuthorID    string
	AuthorName  string
	CreatedAt   time.Time
}

func (p Project) InVoting() bool {
	return p.Status == ProjectInVoting
}
