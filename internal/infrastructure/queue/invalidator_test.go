package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/matchpoint/dating-api/internal/core/ports"
)

type recordingCache struct {
	mu          sync.Mutex
	invalidated []string
	done        chan string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{done: make(chan string, 64)}
}

func (c *recordingCache) Get(ctx context.Context, userID string) ([]ports.MatchCandidate, bool, error) {
	return nil, false, nil
}

func (c *recordingCache) Set(ctx context.Context, userID string, candidates []ports.MatchCandidate) error {
	return nil
}

func (c *recordingCache) Invalidate(ctx context.Context, userIDs ...string) error {
	c.mu.Lock()
	c.invalidated = append(c.invalidated, userIDs...)
	c.mu.Unlock()
	for _, id := range userIDs {
		c.done <- id
	}
	return nil
}

func waitFor(t *testing.T, cache *recordingCache, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-cache.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for invalidation %d of %d", i+1, n)
		}
	}
}

func TestInvalidator_DeliversAllEnqueued(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cache := newRecordingCache()
	inv := NewInvalidator(4, cache, zerolog.Nop())
	inv.Start(ctx)

	inv.Enqueue("u1", "u2", "u3")
	waitFor(t, cache, 3)

	cache.mu.Lock()
	defer cache.mu.Unlock()
	seen := map[string]int{}
	for _, id := range cache.invalidated {
		seen[id]++
	}
	for _, id := range []string{"u1", "u2", "u3"} {
		if seen[id] != 1 {
			t.Fatalf("user %s invalidated %d times, want 1", id, seen[id])
		}
	}
}

// The same user always lands on the same worker so its invalidations
// cannot reorder.
func TestInvalidator_StableSharding(t *testing.T) {
	inv := NewInvalidator(4, newRecordingCache(), zerolog.Nop())

	for _, id := range []string{"u1", "abcdef0123456789", "x"} {
		first := inv.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := inv.shardIndex(id); got != first {
				t.Fatalf("shard for %s changed: %d then %d", id, first, got)
			}
		}
	}
}

func TestInvalidator_DefaultWorkerCount(t *testing.T) {
	inv := NewInvalidator(0, newRecordingCache(), zerolog.Nop())
	if len(inv.workers) != defaultWorkers {
		t.Fatalf("worker count = %d, want %d", len(inv.workers), defaultWorkers)
	}
}

func TestInvalidator_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cache := newRecordingCache()
	inv := NewInvalidator(1, cache, zerolog.Nop())
	inv.Start(ctx)

	inv.Enqueue("u1")
	waitFor(t, cache, 1)
	cancel()
	// Give the worker time to observe cancellation and exit.
	time.Sleep(50 * time.Millisecond)

	// Workers drain nothing further once stopped; the enqueue itself still
	// succeeds because channels are buffered.
	inv.Enqueue("u2")
	select {
	case <-cache.done:
		t.Fatalf("worker processed an item after cancellation")
	case <-time.After(100 * time.Millisecond):
	}
}
