package application

import (
	"sync"
	"time"
)

const (
	VotingWindow  = 60 * time.Second
	countdownTick = time.Second
)

// TickerFunc returns a tick channel and the function that stops it.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func systemTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Countdown is the voting reminder. Reaching zero only stops it; it never
// blocks a vote.
type Countdown struct {
	total  time.Duration
	step   time.Duration
	ticker TickerFunc
	onTick func(remaining time.Duration)

	mu        sync.Mutex
	remaining time.Duration
	stop      chan struct{}
	done      chan struct{}
}

// NewCountdown builds a stopped countdown. onTick runs on the countdown's
// goroutine and must not call Stop or Start.
func NewCountdown(total, step time.Duration, ticker TickerFunc, onTick func(time.Duration)) *Countdown {
	if ticker == nil {
		ticker = systemTicker
	}
	return &Countdown{total: total, step: step, ticker: ticker, onTick: onTick}
}

// Start (re)starts from the full window.
func (c *Countdown) Start() {
	c.Stop()

	stop := make(chan struct{})
	done := make(chan struct{})
	c.mu.Lock()
	c.remaining = c.total
	c.stop = stop
	c.done = done
	c.mu.Unlock()

	ticks, stopTicker := c.ticker(c.step)
	go func() {
		defer close(done)
		defer stopTicker()
		for {
			select {
			case <-stop:
				return
			case <-ticks:
				remaining := c.advance()
				if c.onTick != nil {
					c.onTick(remaining)
				}
				if remaining == 0 {
					return
				}
			}
		}
	}()
}

func (c *Countdown) advance() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining -= c.step
	if c.remaining < 0 {
		c.remaining = 0
	}
	return c.remaining
}

// Stop halts the countdown and waits for its goroutine. Safe to call when stopped.
func (c *Countdown) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}
