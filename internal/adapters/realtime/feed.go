// Package realtime keeps a websocket subscription to a session's event group
// on the voting hub.
package realtime

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

const (
	defaultDialTimeout = 10 * time.Second
	defaultStableAfter = 30 * time.Second
)

var ErrFeedFailed = errors.New("realtime feed gave up reconnecting")

type Options struct {
	// URL is the hub endpoint, e.g. wss://api.example/hubs/votacao.
	URL   string
	Token func(ctx context.Context) (string, error)
	// Delays overrides DefaultDelays.
	Delays []time.Duration
	// MaxAttempts bounds consecutive failed connection attempts; zero retries forever.
	MaxAttempts uint
	DialTimeout time.Duration
	// StableAfter is how long a silent connection must stay up before the
	// reconnect schedule starts over. Any frame from the hub counts as stable.
	StableAfter time.Duration
	OnState     func(domain.ConnState)
	Clock       ports.Clock
	Logger      *zap.Logger
}

// Feed implements ports.EventFeed over the websocket hub.
type Feed struct {
	endpoint    *url.URL
	origin      string
	token       func(ctx context.Context) (string, error)
	delays      []time.Duration
	maxAttempts uint
	dialTimeout time.Duration
	stableAfter time.Duration
	onState     func(domain.ConnState)
	clock       ports.Clock
	logger      *zap.Logger

	mu    sync.Mutex
	state domain.ConnState
}

var _ ports.EventFeed = (*Feed)(nil)

func New(opts Options) (*Feed, error) {
	endpoint, err := url.Parse(strings.TrimSpace(opts.URL))
	if err != nil {
		return nil, fmt.Errorf("parse realtime url: %w", err)
	}
	origin := ""
	switch endpoint.Scheme {
	case "ws":
		origin = "http://" + endpoint.Host
	case "wss":
		origin = "https://" + endpoint.Host
	default:
		return nil, errors.New("realtime url must use ws or wss")
	}
	if endpoint.Host == "" {
		return nil, errors.New("realtime url host is required")
	}

	dialTimeout := opts.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	stableAfter := opts.StableAfter
	if stableAfter <= 0 {
		stableAfter = defaultStableAfter
	}
	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Feed{
		endpoint:    endpoint,
		origin:      origin,
		token:       opts.Token,
		delays:      opts.Delays,
		maxAttempts: opts.MaxAttempts,
		dialTimeout: dialTimeout,
		stableAfter: stableAfter,
		onState:     opts.OnState,
		clock:       clock,
		logger:      logger,
		state:       domain.ConnDisconnected,
	}, nil
}

func (f *Feed) State() domain.ConnState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Feed) setState(state domain.ConnState) {
	f.mu.Lock()
	changed := f.state != state
	f.state = state
	f.mu.Unlock()

	if !changed {
		return
	}
	f.logger.Debug("realtime state", zap.String("state", string(state)))
	if f.onState != nil {
		f.onState(state)
	}
}

// Run connects, joins the session group and forwards known events to sink
// until ctx is done. Every (re)connection joins the group again. The reconnect
// schedule only starts over once a connection has proved stable.
func (f *Feed) Run(ctx context.Context, sessionID domain.SessionID, sink func(domain.SessionEvent)) error {
	if domain.IsNilID(string(sessionID)) {
		return domain.ErrNoActiveSession
	}

	sched := newSchedule(f.delays)
	var wait time.Duration

	f.setState(domain.ConnConnecting)
	for {
		conn, err := f.connect(ctx, sessionID, sched, wait)
		if err != nil {
			if ctx.Err() != nil {
				f.setState(domain.ConnDisconnected)
				return nil
			}
			f.setState(domain.ConnFailed)
			return fmt.Errorf("%w: %w", ErrFeedFailed, err)
		}

		f.setState(domain.ConnConnected)
		connectedAt := f.clock.Now()
		frames, err := f.consume(ctx, conn, sessionID, sink)
		if ctx.Err() != nil {
			f.setState(domain.ConnDisconnected)
			return nil
		}

		wait = 0
		if frames > 0 || f.clock.Now().Sub(connectedAt) >= f.stableAfter {
			sched.Reset()
		} else {
			wait = sched.NextBackOff()
		}
		f.logger.Info("realtime connection lost",
			zap.String("session", string(sessionID)),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)
		f.setState(domain.ConnReconnecting)
	}
}

// connect waits out wait and then dials until the join frame is sent,
// continuing sched from where the previous connection left it.
func (f *Feed) connect(ctx context.Context, sessionID domain.SessionID, sched *schedule, wait time.Duration) (*websocket.Conn, error) {
	if wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(resumable{sched}),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			f.logger.Warn("realtime connect failed", zap.Error(err), zap.Duration("retry_in", next))
			f.setState(domain.ConnReconnecting)
		}),
	}
	if f.maxAttempts > 0 {
		retryOpts = append(retryOpts, backoff.WithMaxTries(f.maxAttempts))
	}

	return backoff.Retry(ctx, func() (*websocket.Conn, error) {
		conn, err := f.dial(ctx)
		if err != nil {
			return nil, err
		}
		if err := websocket.JSON.Send(conn, clientFrame{Type: "join", Group: string(sessionID)}); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("join session group: %w", err)
		}
		return conn, nil
	}, retryOpts...)
}

func (f *Feed) dial(ctx context.Context) (*websocket.Conn, error) {
	token := ""
	if f.token != nil {
		var err error
		if token, err = f.token(ctx); err != nil {
			return nil, backoff.Permanent(fmt.Errorf("load access token: %w", err))
		}
	}

	endpoint := *f.endpoint
	if token != "" {
		query := endpoint.Query()
		query.Set("access_token", token)
		endpoint.RawQuery = query.Encode()
	}

	cfg, err := websocket.NewConfig(endpoint.String(), f.origin)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build websocket config: %w", err))
	}
	if token != "" {
		cfg.Header.Set("Authorization", "Bearer "+token)
	}

	raw, err := f.openConn(ctx, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("dial realtime hub: %w", err)
	}
	_ = raw.SetDeadline(time.Now().Add(f.dialTimeout))
	conn, err := websocket.NewClient(cfg, raw)
	if err != nil {
		_ = raw.Close()
		if !errors.Is(err, websocket.ErrBadStatus) {
			return nil, fmt.Errorf("realtime handshake: %w", err)
		}
		status := raw.status()
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			// Retrying with the same token cannot help.
			return nil, backoff.Permanent(fmt.Errorf("%w: hub refused handshake with status %d", domain.ErrUnauthorized, status))
		}
		return nil, fmt.Errorf("hub refused handshake with status %d: %w", status, err)
	}
	_ = raw.SetDeadline(time.Time{})
	return conn, nil
}

func (f *Feed) openConn(ctx context.Context, location *url.URL) (*handshakeConn, error) {
	port := location.Port()
	if port == "" {
		port = "80"
		if location.Scheme == "wss" {
			port = "443"
		}
	}
	addr := net.JoinHostPort(location.Hostname(), port)

	dialer := &net.Dialer{Timeout: f.dialTimeout}
	var (
		conn net.Conn
		err  error
	)
	if location.Scheme == "wss" {
		conn, err = (&tls.Dialer{NetDialer: dialer}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, err
	}
	return &handshakeConn{Conn: conn}, nil
}

// consume forwards events until the connection ends and reports how many
// frames the hub sent on it.
func (f *Feed) consume(ctx context.Context, conn *websocket.Conn, sessionID domain.SessionID, sink func(domain.SessionEvent)) (int, error) {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		_ = conn.Close()
	}()

	frames := 0
	for {
		var frame serverFrame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			return frames, err
		}
		frames++
		event, ok := f.toEvent(frame, sessionID)
		if !ok {
			continue
		}
		sink(event)
	}
}

func (f *Feed) toEvent(frame serverFrame, sessionID domain.SessionID) (domain.SessionEvent, bool) {
	if frame.Type != "event" {
		return domain.SessionEvent{}, false
	}
	eventType := domain.EventType(frame.Event)
	if !eventType.Known() {
		f.logger.Debug("ignoring realtime event", zap.String("event", frame.Event))
		return domain.SessionEvent{}, false
	}

	event := domain.SessionEvent{
		Type:       eventType,
		SessionID:  sessionID,
		ProjectID:  domain.ProjectID(frame.Payload.ProjectID),
		ReceivedAt: f.clock.Now(),
	}
	if frame.Payload.SessionID != "" {
		event.SessionID = domain.SessionID(frame.Payload.SessionID)
	}
	if event.SessionID != sessionID {
		return domain.SessionEvent{}, false
	}
	return event, true
}
