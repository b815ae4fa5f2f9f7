package application

import (
	"context"
	"sync"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EventHandler reacts to one session event. Handlers run one at a time.
type EventHandler func(ctx context.Context, event domain.SessionEvent)

// LiveRefresher subscribes to a session's event feed and hands events to
// handlers. Events arriving while a handler runs are coalesced per type, so a
// burst of confirmations triggers one reload and no event type is dropped.
type LiveRefresher struct {
	feed     ports.EventFeed
	handlers []EventHandler
	logger   *zap.Logger

	mu      sync.Mutex
	pending map[domain.EventType]domain.SessionEvent
	order   []domain.EventType
	signal  chan struct{}
}

func NewLiveRefresher(feed ports.EventFeed, logger *zap.Logger, handlers ...EventHandler) *LiveRefresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiveRefresher{
		feed:     feed,
		handlers: handlers,
		logger:   logger,
		pending:  make(map[domain.EventType]domain.SessionEvent),
		signal:   make(chan struct{}, 1),
	}
}

// Run blocks until ctx is done or the feed gives up.
func (r *LiveRefresher) Run(ctx context.Context, sessionID domain.SessionID) error {
	if domain.IsNilID(string(sessionID)) {
		return domain.ErrNoActiveSession
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := r.feed.Run(gctx, sessionID, r.enqueue)
		if err != nil {
			return err
		}
		// A clean feed exit means ctx ended; errgroup cancels the worker.
		return context.Cause(gctx)
	})
	g.Go(func() error {
		r.drain(gctx)
		return nil
	})

	err := g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (r *LiveRefresher) enqueue(event domain.SessionEvent) {
	r.mu.Lock()
	if _, queued := r.pending[event.Type]; !queued {
		r.order = append(r.order, event.Type)
	}
	r.pending[event.Type] = event
	r.mu.Unlock()

	select {
	case r.signal <- struct{}{}:
	default:
	}
}

func (r *LiveRefresher) take() []domain.SessionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]domain.SessionEvent, 0, len(r.order))
	for _, eventType := range r.order {
		events = append(events, r.pending[eventType])
		delete(r.pending, eventType)
	}
	r.order = r.order[:0]
	return events
}

func (r *LiveRefresher) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.signal:
		}
		for _, event := range r.take() {
			r.logger.Debug("session event",
				zap.String("event", string(event.Type)),
				zap.String("session", string(event.SessionID)),
			)
			for _, handle := range r.handlers {
				handle(ctx, event)
			}
		}
	}
}
