package persist

import (
	"context"
	"sync"

	"go-storefront-api/internal/kvstore"

	"go.uber.org/zap"
)

// Writer serializes snapshot writes to a single store key. Only the
// newest pending snapshot is kept; a snapshot superseded before its write
// starts is dropped. This keeps the durable snapshot monotonic with the
// in-memory state without ever blocking the dispatcher.
type Writer struct {
	store  kvstore.Store
	key    string
	logger *zap.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending *string
	running bool
}

func NewWriter(store kvstore.Store, key string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Writer{
		store:  store,
		key:    key,
		logger: logger,
	}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// Enqueue records snapshot as the newest pending value and returns
// immediately. Write failures are logged and swallowed.
func (w *Writer) Enqueue(snapshot string) {
	w.mu.Lock()
	w.pending = &snapshot
	if !w.running {
		w.running = true
		go w.drain()
	}
	w.mu.Unlock()
}

func (w *Writer) drain() {
	for {
		w.mu.Lock()
		next := w.pending
		w.pending = nil
		if next == nil {
			w.running = false
			w.cond.Broadcast()
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()

		if err := w.store.Set(context.Background(), w.key, *next); err != nil {
			w.logger.Warn("snapshot write failed",
				zap.String("key", w.key),
				zap.Error(err),
			)
		}
	}
}

// Flush blocks until every enqueued snapshot has been written or dropped.
func (w *Writer) Flush() {
	w.mu.Lock()
	for w.running || w.pending != nil {
		w.cond.Wait()
	}
	w.mu.Unlock()
}
