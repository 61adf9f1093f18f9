// Package nonce defines replay-tracking stores and nonce minting.
//
// A nonce is accepted at most once within its freshness window. Stores
// record nonces that have already passed cryptographic verification; the
// verifier consults the store last, so garbage requests never consume
// store capacity.
package nonce

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrClosed is returned when a store operation is attempted after the store
// has been closed.
var ErrClosed = errors.New("sigil: nonce store is closed")

// Store tracks accepted nonces until they expire.
//
// Implementations must be safe for concurrent use: two verifications
// presenting the same nonce must never both be accepted, regardless of
// interleaving.
type Store interface {
	// CheckAndStore atomically records the nonce unless it is already
	// present with a still-valid expiry. It returns true if the nonce was
	// fresh and is now recorded, false if it was already seen. expiresAt
	// derives from the signed timestamp plus the freshness window, not
	// from the verifier's observation time.
	CheckAndStore(ctx context.Context, nonce string, expiresAt time.Time) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}

// New mints a fresh random nonce in UUID string form. Every signed request
// gets its own nonce; a retry is a new signed request.
func New() string {
	return uuid.NewString()
}
