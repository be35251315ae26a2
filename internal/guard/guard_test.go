package guard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryGuard_LimitPerKeyAndRoute(t *testing.T) {
	g := NewMemoryGuard(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.NoError(t, g.Allow(ctx, "1.2.3.4", "login"))
	}
	assert.ErrorIs(t, g.Allow(ctx, "1.2.3.4", "login"), ErrTooManyRequests)

	// Other callers and other routes keep their own counters.
	assert.NoError(t, g.Allow(ctx, "5.6.7.8", "login"))
	assert.NoError(t, g.Allow(ctx, "1.2.3.4", "register"))
}

func TestMemoryGuard_WindowReset(t *testing.T) {
	g := NewMemoryGuard(1, 20*time.Millisecond)
	ctx := context.Background()

	assert.NoError(t, g.Allow(ctx, "1.2.3.4", "login"))
	assert.ErrorIs(t, g.Allow(ctx, "1.2.3.4", "login"), ErrTooManyRequests)

	time.Sleep(30 * time.Millisecond)
	assert.NoError(t, g.Allow(ctx, "1.2.3.4", "login"), "counter resets after the window")
}

func TestMemoryGuard_ConcurrentCallers(t *testing.T) {
	const limit = 50
	g := NewMemoryGuard(limit, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- g.Allow(ctx, "1.2.3.4", "verify")
		}()
	}
	wg.Wait()
	close(results)

	var allowed, denied int
	for err := range results {
		if err == nil {
			allowed++
		} else {
			denied++
		}
	}
	assert.Equal(t, limit, allowed)
	assert.Equal(t, 50, denied)
}
