package sigil

import (
	"strconv"

	"github.com/xraph/sigil/clock"
	"github.com/xraph/sigil/observability"
	"github.com/xraph/sigil/signature"
)

// Signer builds the authentication headers for outbound requests. It holds
// no mutable state and is safe for concurrent use.
type Signer struct {
	secret   []byte
	clock    clock.Clock
	newNonce func() string
	metrics  *observability.Metrics
}

// NewSigner creates a Signer for the given pre-shared secret. An empty
// secret means authentication is not configured for this endpoint: the
// Signer is disabled and Sign returns a zero Envelope, so unsigned requests
// behave exactly as they did before the protocol existed.
func NewSigner(secret string, opts ...Option) (*Signer, error) {
	s := defaultSettings()
	if err := s.apply(opts); err != nil {
		return nil, err
	}
	return &Signer{
		secret:   []byte(secret),
		clock:    s.clock,
		newNonce: s.newNonce,
		metrics:  s.metrics,
	}, nil
}

// Enabled reports whether a secret is configured.
func (s *Signer) Enabled() bool {
	return len(s.secret) > 0
}

// Sign produces the envelope for one outbound request: the current time in
// Unix seconds, a fresh nonce, and the HMAC-SHA256 digest over the
// canonical payload. Every call mints a new nonce; a retried request is a
// new signed request. On a disabled Signer the returned envelope is zero.
func (s *Signer) Sign(body []byte) Envelope {
	if !s.Enabled() {
		return Envelope{}
	}

	ts := strconv.FormatInt(s.clock.Now().Unix(), 10)
	n := s.newNonce()

	if s.metrics != nil {
		s.metrics.RecordSignature()
	}

	return Envelope{
		Timestamp: ts,
		Nonce:     n,
		Signature: signature.Sign(s.secret, ts, n, body),
	}
}
