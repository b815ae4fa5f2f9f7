package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
)

var _ ports.ProjectGateway = (*Client)(nil)

func (c *Client) ListProjectsBySession(ctx context.Context, sessionID domain.SessionID) ([]domain.Project, error) {
	var dtos []projectDTO
	if err := c.get(ctx, "/Sessao/list-projetos-by-sessao", url.Values{"id": {string(sessionID)}}, &dtos); err != nil {
		return nil, fmt.Errorf("list projects of session %s: %w", sessionID, err)
	}

	projects := make([]domain.Project, 0, len(dtos))
	for _, dto := range dtos {
		projects = append(projects, dto.toDomain())
	}
	return projects, nil
}

func (c *Client) GetProjectInVoting(ctx context.Context, sessionID domain.SessionID) (domain.Project, error) {
	var dto *projectDTO
	if err := c.get(ctx, "/Projeto/read-by-status-em-votacao", url.Values{"sessaoId": {string(sessionID)}}, &dto); err != nil {
		return domain.Project{}, fmt.Errorf("get project in voting: %w", err)
	}
	if dto == nil {
		return domain.Project{}, nil
	}
	return dto.toDomain(), nil
}

func (c *Client) UpdateProjectStatus(ctx context.Context, sessionID domain.SessionID, projectID domain.ProjectID, status domain.ProjectStatus) error {
	wireName, err := status.WireName()
	if err != nil {
		return err
	}
	if err := c.put(ctx, "/Projeto/update-projeto-status-by-current-vereador", updateProjectStatusDTO{
		SessionID: string(sessionID),
		ProjectID: string(projectID),
		Status:    wireName,
	}, nil); err != nil {
		return fmt.Errorf("update project %s status: %w", projectID, err)
	}
	return nil
}
