// Package redis provides a Redis-backed nonce store for deployments where
// verification runs on more than one process behind a load balancer. The
// replay window is shared across instances; nonce keys carry TTLs and
// expire server-side, so no pruning is needed.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xraph/sigil/clock"
	"github.com/xraph/sigil/nonce"
)

// compile-time interface check.
var _ nonce.Store = (*Store)(nil)

// keyPrefix namespaces nonce keys in a shared Redis.
const keyPrefix = "sigil:nonce:"

// Store implements nonce.Store on a Redis client.
type Store struct {
	rdb   goredis.UniversalClient
	clock clock.Clock
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to turn expiry instants into key TTLs.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// New creates a Redis-backed nonce store on an existing client. The caller
// owns the client; Close does not close it.
func New(client goredis.UniversalClient, opts ...Option) *Store {
	s := &Store{
		rdb:   client,
		clock: clock.System{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckAndStore records n unless a still-live key for it exists. SET NX
// makes the check-and-insert a single atomic Redis operation, so two
// instances racing on the same nonce admit exactly one request.
func (s *Store) CheckAndStore(ctx context.Context, n string, expiresAt time.Time) (bool, error) {
	ttl := expiresAt.Sub(s.clock.Now())
	if ttl <= 0 {
		// Already past its window; a record would expire immediately.
		return true, nil
	}
	return s.rdb.SetNX(ctx, keyPrefix+n, 1, ttl).Result()
}

// Ping checks Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Close is a no-op; the Redis client is owned by the caller.
func (s *Store) Close() error {
	return nil
}
