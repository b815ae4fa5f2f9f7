package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
)

var _ ports.VoteGateway = (*Client)(nil)

func (c *Client) CastVote(ctx context.Context, projectID domain.ProjectID, sessionID domain.SessionID, value domain.VoteValue) error {
	if !value.Valid() {
		return fmt.Errorf("unsupported vote value %q", value)
	}
	if err := c.put(ctx, "/Projeto/votar-no-projeto", castVoteDTO{
		ProjectID: string(projectID),
		SessionID: string(sessionID),
		Value:     string(value),
	}, nil); err != nil {
		return fmt.Errorf("cast vote: %w", err)
	}
	return nil
}

func (c *Client) HasVoted(ctx context.Context, link domain.SessionProjectID) (bool, error) {
	var voted bool
	if err := c.get(ctx, "/Voto/vereador-already-vote-in-this-projeto", url.Values{"sessaoProjetoId": {string(link)}}, &voted); err != nil {
		return false, fmt.Errorf("check existing vote: %w", err)
	}
	return voted, nil
}

func (c *Client) GetSessionProjectID(ctx context.Context, projectID domain.ProjectID, sessionID domain.SessionID) (domain.SessionProjectID, error) {
	var id string
	if err := c.get(ctx, "/SessaoProjeto/read-by-projeto-and-sessao", url.Values{
		"projetoId": {string(projectID)},
		"sessaoId":  {string(sessionID)},
	}, &id); err != nil {
		return "", fmt.Errorf("resolve session-project link: %w", err)
	}
	return domain.SessionProjectID(strings.TrimSpace(id)), nil
}

func (c *Client) GetPendingTally(ctx context.Context, link domain.SessionProjectID) (domain.VoteTally, error) {
	var dto tallyDTO
	if err := c.get(ctx, "/SessaoProjeto/list-vereadores-by-votos-in-sessao-projeto", url.Values{"id": {string(link)}}, &dto); err != nil {
		return domain.VoteTally{}, fmt.Errorf("get pending votes: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) GetConfirmedTally(ctx context.Context, projectID domain.ProjectID, sessionID domain.SessionID) (domain.VoteTally, error) {
	var dto tallyDTO
	if err := c.get(ctx, "/SessaoProjeto/list-votos-confirmados", url.Values{
		"projetoId": {string(projectID)},
		"sessaoId":  {string(sessionID)},
	}, &dto); err != nil {
		return domain.VoteTally{}, fmt.Errorf("get confirmed votes: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) ConfirmVote(ctx context.Context, link domain.SessionProjectID, voterID domain.VoterID) error {
	if err := c.put(ctx, "/Voto/confirmar-voto", confirmVoteDTO{
		SessionProjectID: string(link),
		VoterID:          string(voterID),
	}, nil); err != nil {
		return fmt.Errorf("confirm vote of %s: %w", voterID, err)
	}
	return nil
}

// ConfirmAllVotes sends the link id as a bare JSON string body.
func (c *Client) ConfirmAllVotes(ctx context.Context, link domain.SessionProjectID) error {
	if err := c.put(ctx, "/Voto/confirmar-todos-voto", string(link), nil); err != nil {
		return fmt.Errorf("confirm all votes: %w", err)
	}
	return nil
}
