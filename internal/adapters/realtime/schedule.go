package realtime

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

// DefaultDelays is the wait before each reconnect attempt after the first,
// which runs immediately. The last delay repeats.
var DefaultDelays = []time.Duration{2 * time.Second, 10 * time.Second, 30 * time.Second}

// schedule is a fixed backoff.BackOff that walks delays and then holds the
// last one.
type schedule struct {
	delays []time.Duration
	next   int
}

var _ backoff.BackOff = (*schedule)(nil)

func newSchedule(delays []time.Duration) *schedule {
	if len(delays) == 0 {
		delays = DefaultDelays
	}
	return &schedule{delays: delays}
}

func (s *schedule) NextBackOff() time.Duration {
	delay := s.delays[len(s.delays)-1]
	if s.next < len(s.delays) {
		delay = s.delays[s.next]
		s.next++
	}
	return delay
}

func (s *schedule) Reset() {
	s.next = 0
}

// resumable lets backoff.Retry walk a schedule without starting it over;
// Retry resets its BackOff on entry.
type resumable struct {
	*schedule
}

func (resumable) Reset() {}
