package sigil

import (
	"time"

	"github.com/xraph/sigil/nonce/memory"
)

// Config holds the tunable parameters shared by Signer and Verifier.
type Config struct {
	// MaxAge is the freshness window on each side of the verifier's clock.
	// A request is rejected when its signed timestamp is more than MaxAge
	// in the past (stale) or more than MaxAge in the future (clock
	// manipulation). It also bounds how long an accepted nonce is tracked.
	MaxAge time.Duration

	// PruneEvery is how many verification attempts pass between expiry
	// sweeps of the default in-memory nonce store.
	PruneEvery int

	// MaxTrackedNonces is the capacity ceiling of the default in-memory
	// nonce store. Both bounds are ignored when a custom store is supplied
	// with WithNonceStore.
	MaxTrackedNonces int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAge:           60 * time.Second,
		PruneEvery:       memory.DefaultPruneEvery,
		MaxTrackedNonces: memory.DefaultMaxEntries,
	}
}
