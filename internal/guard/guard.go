package guard

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyRequests is surfaced verbatim to the caller; the state machine
// never retries on it.
var ErrTooManyRequests = errors.New("too many requests")

// Guard throttles verification entry points per caller key and route. Allow
// either lets the call through or returns ErrTooManyRequests before any state
// is mutated.
type Guard interface {
	Allow(ctx context.Context, key, route string) error
}

type memoryWindow struct {
	count   int
	resetAt time.Time
}

// MemoryGuard is a fixed-window counter held in process memory. It serves
// single-instance deployments and tests; multi-instance deployments want the
// Redis guard so all replicas share the same counters.
type MemoryGuard struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	limit   int
	window  time.Duration
}

func NewMemoryGuard(limit int, window time.Duration) *MemoryGuard {
	return &MemoryGuard{
		windows: make(map[string]*memoryWindow),
		limit:   limit,
		window:  window,
	}
}

func (g *MemoryGuard) Allow(ctx context.Context, key, route string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	k := route + ":" + key

	w, ok := g.windows[k]
	if !ok || now.After(w.resetAt) {
		g.windows[k] = &memoryWindow{count: 1, resetAt: now.Add(g.window)}
		return nil
	}

	w.count++
	if w.count > g.limit {
		return ErrTooManyRequests
	}

	return nil
}
