// Package memory provides the default in-process nonce store.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/xraph/sigil/clock"
	"github.com/xraph/sigil/nonce"
)

// compile-time interface check.
var _ nonce.Store = (*Store)(nil)

// Default bounds. MaxEntries caps tracked nonces; PruneEvery is the number
// of CheckAndStore calls between expiry sweeps.
const (
	DefaultMaxEntries = 16384
	DefaultPruneEvery = 128
)

// Config bounds the store.
type Config struct {
	// MaxEntries is the hard capacity ceiling. If a sweep cannot bring the
	// store back under it, the store is cleared entirely. Zero means
	// DefaultMaxEntries.
	MaxEntries int

	// PruneEvery is how many CheckAndStore calls pass between expiry
	// sweeps. Zero means DefaultPruneEvery.
	PruneEvery int

	// Clock supplies the current time. Nil means the system clock.
	Clock clock.Clock

	// OnClear, if set, is invoked once per overflow clear. The call
	// happens under the store lock, so it must be cheap and must not call
	// back into the store.
	OnClear func()
}

// Store tracks accepted nonces in a bounded map guarded by one mutex.
//
// Memory stays bounded under sustained attack traffic two ways: expired
// entries are swept every PruneEvery calls (a counter, not a timer, so
// there is no background goroutine), and if the map still exceeds
// MaxEntries after a sweep it is cleared outright. The clear reopens the
// replay window for in-flight nonces; that trade is accepted in exchange
// for never rejecting traffic on capacity and never growing without bound.
type Store struct {
	mu       sync.Mutex
	entries  map[string]time.Time // nonce -> expiry instant
	attempts int
	closed   bool

	maxEntries int
	pruneEvery int
	clock      clock.Clock
	logger     *slog.Logger
	onClear    func()
}

// New creates a bounded in-memory nonce store.
func New(cfg Config, logger *slog.Logger) *Store {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.PruneEvery <= 0 {
		cfg.PruneEvery = DefaultPruneEvery
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		entries:    make(map[string]time.Time),
		maxEntries: cfg.MaxEntries,
		pruneEvery: cfg.PruneEvery,
		clock:      cfg.Clock,
		logger:     logger,
		onClear:    cfg.OnClear,
	}
}

// CheckAndStore records n unless it is already present with a still-valid
// expiry. The lookup and insert happen under one lock, so two concurrent
// calls with the same nonce admit exactly one.
func (s *Store) CheckAndStore(_ context.Context, n string, expiresAt time.Time) (bool, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, nonce.ErrClosed
	}

	s.attempts++
	if s.attempts >= s.pruneEvery {
		s.attempts = 0
		s.pruneLocked(now)
	}

	if exp, ok := s.entries[n]; ok && exp.After(now) {
		return false, nil
	}
	s.entries[n] = expiresAt

	if len(s.entries) > s.maxEntries {
		s.pruneLocked(now)
		if len(s.entries) > s.maxEntries {
			s.logger.Warn("nonce store over capacity, clearing",
				"entries", len(s.entries),
				"max_entries", s.maxEntries)
			s.entries = make(map[string]time.Time)
			s.entries[n] = expiresAt
			if s.onClear != nil {
				s.onClear()
			}
		}
	}

	return true, nil
}

// Len returns the number of tracked nonces, expired entries included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close marks the store as closed and drops all entries.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.entries = nil
	return nil
}

// pruneLocked drops expired entries. Caller must hold mu.
func (s *Store) pruneLocked(now time.Time) {
	for n, exp := range s.entries {
		if !exp.After(now) {
			delete(s.entries, n)
		}
	}
}
