// Package refresh re-runs cached queries after their tags are invalidated,
// so a destination subscribed to a listing sees a refilled cache instead of
// waiting for the next user-triggered read.
package refresh

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

type subscription struct {
	key     string
	session string
	tags    []string
	run     func(context.Context)
}

// Refresher routes refresh jobs to a fixed set of workers using consistent
// hashing on the cache key, so re-runs of the same query never race each
// other and the later response wins.
type Refresher struct {
	mu      sync.Mutex
	subs    map[string]subscription
	workers []chan subscription
	log     zerolog.Logger
}

// New creates a Refresher with numWorkers sharded workers. If
// numWorkers <= 0, defaultWorkers is used.
func New(numWorkers int, log zerolog.Logger) *Refresher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Refresher{
		subs:    make(map[string]subscription),
		workers: make([]chan subscription, numWorkers),
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan subscription, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Subscribe registers (or replaces) the refresh job for a cache key.
func (r *Refresher) Subscribe(key, session string, tags []string, run func(context.Context)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[key] = subscription{key: key, session: session, tags: tags, run: run}
}

// DropSession forgets every subscription a session registered. Called at
// sign-out together with the cache purge.
func (r *Refresher) DropSession(session string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, sub := range r.subs {
		if sub.session == session {
			delete(r.subs, key)
		}
	}
}

// Invalidated enqueues a refresh for every subscription producing any of
// the given tags. Enqueueing is non-blocking; when a worker's queue is full
// the refresh is skipped and the next read repopulates the cache instead.
func (r *Refresher) Invalidated(tags []string) {
	r.mu.Lock()
	var due []subscription
	for _, sub := range r.subs {
		if matchesAny(sub.tags, tags) {
			due = append(due, sub)
		}
	}
	r.mu.Unlock()

	for _, sub := range due {
		select {
		case r.workers[r.shardIndex(sub.key)] <- sub:
		default:
			r.log.Debug().Str("key", sub.key).Msg("refresh queue full, skipping warm")
		}
	}
}

func matchesAny(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (r *Refresher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Refresher) runWorker(ctx context.Context, id int, ch <-chan subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case sub, ok := <-ch:
			if !ok {
				return
			}
			r.log.Trace().Str("key", sub.key).Int("worker_id", id).Msg("refreshing cache entry")
			sub.run(ctx)
		}
	}
}
