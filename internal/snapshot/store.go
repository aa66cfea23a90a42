package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/pkg/logger"
)

// DefaultTTL is how long a loaded batch stays valid.
const DefaultTTL = 24 * time.Hour

// Store caches the current batch with a validity window and coalesces
// concurrent loads: while one load is in flight every other caller waits
// for that same load instead of issuing another. A failed load caches
// nothing - callers retry the whole batch, there is no partial state.
type Store struct {
	source Source
	ttl    time.Duration
	logger *logger.Logger

	mu       sync.Mutex
	batch    *contracts.Batch
	loadedAt time.Time
	pending  chan struct{} // non-nil while a load is in flight
	loadErr  error
}

// NewStore wraps a source with caching and load coalescing. A
// non-positive ttl falls back to DefaultTTL.
func NewStore(source Source, ttl time.Duration, log *logger.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		source: source,
		ttl:    ttl,
		logger: log,
	}
}

// Get returns the cached batch when still valid, otherwise loads one.
// Concurrent callers during a load all receive the result of the single
// in-flight load.
func (s *Store) Get(ctx context.Context) (*contracts.Batch, error) {
	for {
		s.mu.Lock()

		if s.batch != nil && time.Since(s.loadedAt) < s.ttl {
			batch := s.batch
			s.mu.Unlock()
			return batch, nil
		}

		if s.pending != nil {
			// Someone else is loading; share their result.
			done := s.pending
			s.mu.Unlock()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-done:
			}
			s.mu.Lock()
			batch, err := s.batch, s.loadErr
			valid := batch != nil && time.Since(s.loadedAt) < s.ttl
			s.mu.Unlock()
			if err != nil {
				return nil, err
			}
			if valid {
				return batch, nil
			}
			// Cache expired between the load and our wakeup; go again.
			continue
		}

		done := make(chan struct{})
		s.pending = done
		s.mu.Unlock()

		batch, err := s.source.Load(ctx)

		s.mu.Lock()
		s.pending = nil
		s.loadErr = err
		if err == nil {
			s.batch = batch
			s.loadedAt = time.Now()
		}
		s.mu.Unlock()
		close(done)

		if err != nil {
			s.logger.WithError(err).Error("Snapshot load failed")
			return nil, err
		}

		s.logger.WithFields(map[string]interface{}{
			"records": batch.Count(),
			"ttl":     s.ttl,
		}).Debug("Snapshot batch cached")

		return batch, nil
	}
}

// Refresh invalidates the cache and loads a fresh batch.
func (s *Store) Refresh(ctx context.Context) (*contracts.Batch, error) {
	s.Invalidate()
	return s.Get(ctx)
}

// Invalidate drops the cached batch without loading a new one.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.batch = nil
	s.loadedAt = time.Time{}
	s.mu.Unlock()
}

// Age returns how old the cached batch is, or false when nothing is
// cached.
func (s *Store) Age() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.batch == nil {
		return 0, false
	}
	return time.Since(s.loadedAt), true
}
