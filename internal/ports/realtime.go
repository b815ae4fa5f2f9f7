package ports

import (
	"context"

	"github.com/camaradigital/camara-cli/internal/domain"
)

// EventFeed delivers session events until ctx is done. Implementations own
// reconnection; Run returns nil on cancellation and an error once the feed
// gives up.
type EventFeed interface {
	Run(ctx context.Context, sessionID domain.SessionID, sink func(domain.SessionEvent)) error
}
