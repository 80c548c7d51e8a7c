package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/matchpoint/dating-api/internal/api/metrics"
	"github.com/matchpoint/dating-api/internal/core/service"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Invalidator fans match-cache invalidations out to a fixed set of workers,
// sharded by user ID so invalidations for the same user stay ordered. Rating
// submissions enqueue here instead of deleting cache keys on the request path.
type Invalidator struct {
	workers []chan string
	cache   service.MatchCache
	log     zerolog.Logger
}

// NewInvalidator creates an Invalidator with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewInvalidator(numWorkers int, cache service.MatchCache, log zerolog.Logger) *Invalidator {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	inv := &Invalidator{
		workers: make([]chan string, numWorkers),
		cache:   cache,
		log:     log,
	}
	for i := range inv.workers {
		inv.workers[i] = make(chan string, channelBuffer)
	}
	return inv
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (inv *Invalidator) Start(ctx context.Context) {
	for i, ch := range inv.workers {
		go inv.runWorker(ctx, i, ch)
	}
}

// Enqueue schedules the given users' cached match lists for deletion.
// Non-blocking up to channelBuffer capacity per worker.
func (inv *Invalidator) Enqueue(userIDs ...string) {
	for _, id := range userIDs {
		w := inv.shardIndex(id)
		inv.workers[w] <- id
		metrics.CacheInvalidationQueueDepth.WithLabelValues(strconv.Itoa(w)).Set(float64(len(inv.workers[w])))
	}
}

// shardIndex maps a user ID deterministically to a worker index.
func (inv *Invalidator) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(inv.workers)
}

func (inv *Invalidator) runWorker(ctx context.Context, id int, ch <-chan string) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case userID, ok := <-ch:
			if !ok {
				return
			}
			if err := inv.cache.Invalidate(ctx, userID); err != nil {
				inv.log.Warn().Err(err).
					Str("user_id", userID).
					Int("worker_id", id).
					Msg("cache invalidation failed")
			}
			metrics.CacheInvalidationQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		}
	}
}
