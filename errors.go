package sigil

import "errors"

// Sentinel errors returned by Sigil constructors and options.
var (
	// ErrInvalidMaxAge is returned when the freshness window is shorter
	// than one second. The protocol carries whole-second timestamps, so a
	// sub-second window would truncate to no window at all.
	ErrInvalidMaxAge = errors.New("sigil: max age must be at least one second")

	// ErrNilClock is returned when a nil clock is supplied.
	ErrNilClock = errors.New("sigil: clock must not be nil")

	// ErrNilNonceStore is returned when a nil nonce store is supplied.
	ErrNilNonceStore = errors.New("sigil: nonce store must not be nil")
)

// Reason categorizes a rejected verification for logs, metrics, and traces.
// Reasons never cross the API boundary: Verify collapses every failure to a
// single boolean so callers cannot leak which check failed to the peer.
type Reason string

// Rejection reason categories.
const (
	ReasonMissingHeader        Reason = "missing_header"
	ReasonMalformedSignature   Reason = "malformed_signature"
	ReasonMalformedTimestamp   Reason = "malformed_timestamp"
	ReasonTimestampOutOfWindow Reason = "timestamp_out_of_window"
	ReasonSignatureMismatch    Reason = "signature_mismatch"
	ReasonReplayedNonce        Reason = "replayed_nonce"
	ReasonStoreError           Reason = "nonce_store_error"
)
