package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
)

var _ ports.SessionGateway = (*Client)(nil)

func (c *Client) GetActiveSession(ctx context.Context) (domain.Session, error) {
	var dto *sessionDTO
	if err := c.get(ctx, "/sessao/get-sessao-em-andamento", nil, &dto); err != nil {
		return domain.Session{}, fmt.Errorf("get active session: %w", err)
	}
	if dto == nil {
		return domain.Session{}, nil
	}
	return dto.toDomain(), nil
}

func (c *Client) ListSessions(ctx context.Context, filter domain.SessionFilter, page domain.PageRequest) (domain.SessionPage, error) {
	query := url.Values{}
	if page.Limit > 0 {
		query.Set("limit", strconv.Itoa(page.Limit))
	}
	if page.Offset > 0 {
		query.Set("offset", strconv.Itoa(page.Offset))
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		query.Set("nome", name)
	}
	if date := formatDate(filter.Date); date != "" {
		query.Set("data", date)
	}
	if filter.Status != nil {
		query.Set("status", strconv.Itoa(int(*filter.Status)))
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/sessao/list-by-camara", query, &raw); err != nil {
		return domain.SessionPage{}, fmt.Errorf("list sessions: %w", err)
	}

	items, hasMore, err := decodeSessionPage(raw, page.Limit)
	if err != nil {
		return domain.SessionPage{}, fmt.Errorf("list sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(items))
	for _, item := range items {
		sessions = append(sessions, item.toDomain())
	}

	return domain.SessionPage{Sessions: sessions, Offset: page.Offset, HasMore: hasMore}, nil
}

// decodeSessionPage accepts the paged envelope and the bare array older
// backends return. For a bare array a full page implies more may follow.
func decodeSessionPage(raw json.RawMessage, limit int) ([]sessionDTO, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false, nil
	}

	if trimmed[0] == '[' {
		var items []sessionDTO
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, false, fmt.Errorf("decode session list: %w", err)
		}
		return items, limit > 0 && len(items) >= limit, nil
	}

	var envelope sessionPageDTO
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, false, fmt.Errorf("decode session page: %w", err)
	}
	return envelope.Items, envelope.HasMore, nil
}

func (c *Client) OpenSession(ctx context.Context, id domain.SessionID) error {
	if err := c.put(ctx, "/sessao/abrir-sessao", idDTO{ID: string(id)}, nil); err != nil {
		return fmt.Errorf("open session %s: %w", id, err)
	}
	return nil
}

func (c *Client) CloseSession(ctx context.Context, id domain.SessionID) error {
	if err := c.put(ctx, "/sessao/encerrar-sessao", idDTO{ID: string(id)}, nil); err != nil {
		return fmt.Errorf("close session %s: %w", id, err)
	}
	return nil
}
