package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"go.uber.org/zap"
)

// ActiveSession is what the resolver last learned. Session is nil when no
// session is in progress; Err is set only for failures other than "none".
type ActiveSession struct {
	Session     *domain.Session
	Loading     bool
	Err         error
	RefreshedAt time.Time
}

// Follows reports whether id is still the session in progress.
func (a ActiveSession) Follows(id domain.SessionID) bool {
	return a.Session != nil && a.Session.ID == id && a.Session.InProgress()
}

// DefaultSessionCheck is how often Watch asks the backend for the session in
// progress. Closing a session publishes no realtime event.
const DefaultSessionCheck = 15 * time.Second

type SessionResolver struct {
	sessions ports.SessionGateway
	clock    ports.Clock
	logger   *zap.Logger

	mu       sync.RWMutex
	snapshot ActiveSession
}

func NewSessionResolver(sessions ports.SessionGateway, clock ports.Clock, logger *zap.Logger) *SessionResolver {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionResolver{sessions: sessions, clock: clock, logger: logger}
}

// Refresh asks the backend for the session in progress. Empty sentinels and
// not-found answers both resolve to "no active session".
func (r *SessionResolver) Refresh(ctx context.Context) ActiveSession {
	r.mu.Lock()
	r.snapshot.Loading = true
	r.mu.Unlock()

	next := ActiveSession{}
	session, err := r.sessions.GetActiveSession(ctx)
	switch {
	case err == nil && !domain.IsEmptySession(session):
		next.Session = &session
	case err == nil:
		r.logger.Debug("active session endpoint returned an empty sentinel")
	case errors.Is(err, domain.ErrNotFound):
		r.logger.Debug("no session in progress", zap.Error(err))
	default:
		r.logger.Debug("resolve active session", zap.Error(err))
		next.Err = err
	}
	next.RefreshedAt = r.clock.Now()

	r.mu.Lock()
	r.snapshot = next
	r.mu.Unlock()
	return next
}

func (r *SessionResolver) Snapshot() ActiveSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Require refreshes and fails with domain.ErrNoActiveSession when nothing is
// in progress.
func (r *SessionResolver) Require(ctx context.Context) (domain.Session, error) {
	snapshot := r.Refresh(ctx)
	if snapshot.Err != nil {
		return domain.Session{}, snapshot.Err
	}
	if snapshot.Session == nil {
		return domain.Session{}, domain.ErrNoActiveSession
	}
	return *snapshot.Session, nil
}

// Watch refreshes every interval and returns domain.ErrSessionEnded once id
// is no longer the session in progress. It returns nil when ctx ends; failed
// refreshes are retried on the next tick.
func (r *SessionResolver) Watch(ctx context.Context, id domain.SessionID, every time.Duration, ticker TickerFunc) error {
	if every <= 0 {
		every = DefaultSessionCheck
	}
	if ticker == nil {
		ticker = systemTicker
	}
	ticks, stop := ticker(every)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
		}

		active := r.Refresh(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if active.Err != nil {
			r.logger.Debug("session check failed", zap.String("session", string(id)), zap.Error(active.Err))
			continue
		}
		if !active.Follows(id) {
			return fmt.Errorf("session %s: %w", id, domain.ErrSessionEnded)
		}
	}
}
