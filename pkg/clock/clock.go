// Package clock abstracts timers and delays so that simulated latency can
// be driven synchronously in tests instead of waiting on real timers.
package clock

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Clock provides the time operations used by the dialogue engine and the
// simulated catalog/image services.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep blocks for the given duration or until the context is done.
	Sleep(ctx context.Context, d time.Duration) error

	// AfterFunc schedules f to run after the given duration.
	AfterFunc(d time.Duration, f func())
}

type realClock struct{}

// New returns a Clock backed by the system timer.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (realClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Fake is a manually advanced clock for tests. Sleep returns immediately,
// collapsing simulated latency; AfterFunc callbacks are queued and run by
// Advance in the order they become due, ties broken by scheduling order.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	at  time.Time
	seq int
	f   func()
}

// NewFake returns a Fake clock starting at the given time.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fake) Sleep(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

func (c *Fake) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.timers = append(c.timers, &fakeTimer{at: c.now.Add(d), seq: c.seq, f: f})
}

// Advance moves the clock forward and runs every callback that becomes due.
// Callbacks run on the calling goroutine without the clock lock held, so
// they may schedule further timers.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now

	var due []*fakeTimer
	var rest []*fakeTimer
	for _, t := range c.timers {
		if !t.at.After(now) {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	c.timers = rest
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	for _, t := range due {
		t.f()
	}
}

// Pending reports how many scheduled callbacks have not yet fired.
func (c *Fake) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
