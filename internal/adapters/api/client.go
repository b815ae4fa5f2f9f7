package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"go.uber.org/zap"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 10 * time.Second
	userAgent             = "camara-cli"

	messageConnRefused = "API não está rodando. Verifique se o servidor está ativo."
	messageTimeout     = "Timeout - API demorou muito para responder."
)

// notFoundCodes are the structured codes the backend uses for missing resources.
var notFoundCodes = map[string]struct{}{
	"NOT_FOUND":                {},
	"SESSAO_NAO_ENCONTRADA":    {},
	"PROJETO_NAO_ENCONTRADO":   {},
	"SESSAO_PROJETO_NOT_FOUND": {},
}

// TokenSource returns the bearer token for the next request; an empty token
// sends the request unauthenticated.
type TokenSource func(ctx context.Context) (string, error)

type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Token          TokenSource
	OnUnauthorized func(ctx context.Context)
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

// Client talks to the Câmara Digital REST API. It implements the gateway
// ports for auth, sessions, projects and votes.
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	token          TokenSource
	onUnauthorized func(ctx context.Context)
	requestTimeout time.Duration
	logger         *zap.Logger
}

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("api base url is required")
	}
	parsed, err := url.Parse(strings.TrimRight(opts.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL:        parsed,
		httpClient:     httpClient,
		token:          opts.Token,
		onUnauthorized: opts.OnUnauthorized,
		requestTimeout: timeout,
		logger:         logger,
	}, nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return fmt.Errorf("load access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return networkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return networkError(err)
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := httpError(resp.StatusCode, raw)
		if apiErr.Kind == domain.ErrorKindUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	resolved := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		resolved.RawQuery = query.Encode()
	}
	return resolved.String(), nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.requestTimeout)
}

func networkError(err error) *domain.APIError {
	message := domain.MessageNetwork
	var netErr net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		message = messageConnRefused
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		message = messageTimeout
	}
	return &domain.APIError{Kind: domain.ErrorKindNetwork, Message: message, Err: err}
}

func httpError(status int, raw []byte) *domain.APIError {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	message := strings.TrimSpace(body.Message)
	if message == "" {
		message = strings.TrimSpace(body.Error)
	}
	if message == "" {
		message = domain.MessageFallback
	}

	kind := domain.ErrorKindHTTP
	code := strings.ToUpper(strings.TrimSpace(body.Code))
	switch {
	case status == http.StatusUnauthorized:
		kind = domain.ErrorKindUnauthorized
	case status == http.StatusNotFound:
		kind = domain.ErrorKindNotFound
	default:
		if _, ok := notFoundCodes[code]; ok {
			kind = domain.ErrorKindNotFound
		}
	}

	return &domain.APIError{Kind: kind, Status: status, Code: code, Message: message}
}
