// Package inflight keeps at most one live widget call per key. Starting a
// new call cancels the previous one, and a finished call can tell whether a
// newer call superseded it before it publishes its result.
package inflight

import (
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrSuperseded marks a call whose result must be discarded.
var ErrSuperseded = errors.New("inflight: superseded by a newer request")

const defaultSize = 4096

type slot struct {
	gen    uint64
	cancel context.CancelFunc
}

// Tracker maps widget keys to their live call. Keys are dropped when their
// call is done. The number of keys is bounded; evicting a key cancels its
// live call.
type Tracker struct {
	mu    sync.Mutex
	slots *lru.Cache[string, *slot]
}

func New(size int) (*Tracker, error) {
	if size <= 0 {
		size = defaultSize
	}
	cache, err := lru.NewWithEvict[string, *slot](size, func(_ string, s *slot) {
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
	})
	if err != nil {
		return nil, err
	}
	return &Tracker{slots: cache}, nil
}

// Call is one generation of a key.
type Call struct {
	t      *Tracker
	key    string
	slot   *slot
	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// Begin starts a new generation for key and cancels the one before it.
func (t *Tracker) Begin(parent context.Context, key string) *Call {
	ctx, cancel := context.WithCancel(parent)

	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.slots.Get(key)
	if !ok {
		s = &slot{}
		t.slots.Add(key, s)
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	s.cancel = cancel
	return &Call{t: t, key: key, slot: s, gen: s.gen, ctx: ctx, cancel: cancel}
}

// Context is canceled when the call is superseded, evicted or done.
func (c *Call) Context() context.Context { return c.ctx }

// Generation is the call's position among the overlapping calls of its
// key, starting at 1.
func (c *Call) Generation() uint64 { return c.gen }

// Current reports whether the call is live and no newer call has started
// for the key.
func (c *Call) Current() bool {
	c.t.mu.Lock()
	defer c.t.mu.Unlock()
	return c.currentLocked()
}

func (c *Call) currentLocked() bool {
	s, ok := c.t.slots.Peek(c.key)
	return ok && s == c.slot && s.gen == c.gen
}

// Err returns ErrSuperseded when the call is no longer current.
func (c *Call) Err() error {
	if !c.Current() {
		return ErrSuperseded
	}
	return nil
}

// Done releases the call and, when it is still current, forgets its key.
// It is safe to call more than once.
func (c *Call) Done() {
	c.t.mu.Lock()
	if c.currentLocked() {
		c.slot.cancel = nil
		c.t.slots.Remove(c.key)
	}
	c.t.mu.Unlock()
	c.cancel()
}

// Len returns the number of tracked keys.
func (t *Tracker) Len() int {
	return t.slots.Len()
}
