package sigil

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/xraph/sigil/clock"
	"github.com/xraph/sigil/nonce"
	"github.com/xraph/sigil/nonce/memory"
	"github.com/xraph/sigil/observability"
	"github.com/xraph/sigil/signature"
)

// Verifier validates the authentication headers on inbound requests. It is
// safe for concurrent use; the nonce store is the only shared mutable state
// and synchronizes internally.
type Verifier struct {
	secret   []byte
	maxAge   time.Duration
	clock    clock.Clock
	store    nonce.Store
	ownStore bool
	logger   *slog.Logger
	metrics  *observability.Metrics
	tracer   *observability.Tracer
}

// NewVerifier creates a Verifier for the given pre-shared secret. An empty
// secret means authentication is not configured for this endpoint: the
// Verifier is disabled and accepts every request.
//
// Without WithNonceStore, the Verifier creates a bounded in-memory store
// and owns it; Close releases it. A store supplied by the caller is left
// open on Close.
func NewVerifier(secret string, opts ...Option) (*Verifier, error) {
	s := defaultSettings()
	if err := s.apply(opts); err != nil {
		return nil, err
	}

	v := &Verifier{
		secret:  []byte(secret),
		maxAge:  s.config.MaxAge,
		clock:   s.clock,
		store:   s.store,
		logger:  s.logger,
		metrics: s.metrics,
		tracer:  s.tracer,
	}
	if v.store == nil {
		cfg := memory.Config{
			MaxEntries: s.config.MaxTrackedNonces,
			PruneEvery: s.config.PruneEvery,
			Clock:      s.clock,
		}
		if s.metrics != nil {
			cfg.OnClear = s.metrics.RecordStoreClear
		}
		v.store = memory.New(cfg, s.logger)
		v.ownStore = true
	}
	return v, nil
}

// Enabled reports whether a secret is configured.
func (v *Verifier) Enabled() bool {
	return len(v.secret) > 0
}

// Close releases the nonce store if this Verifier created it.
func (v *Verifier) Close() error {
	if !v.ownStore {
		return nil
	}
	return v.store.Close()
}

// Verify checks the authentication headers against the raw request body.
// Every failure collapses to false at this boundary; the reason category
// goes to logs, metrics, and traces only, never to the peer.
//
// On a disabled Verifier every request is accepted.
func (v *Verifier) Verify(ctx context.Context, h http.Header, body []byte) bool {
	if !v.Enabled() {
		return true
	}

	var span trace.Span
	if v.tracer != nil {
		ctx, span = v.tracer.StartVerifySpan(ctx)
	}

	reason := v.verify(ctx, h, body)
	accepted := reason == ""

	if span != nil {
		v.tracer.EndVerifySpan(span, accepted, string(reason))
	}
	if accepted {
		if v.metrics != nil {
			v.metrics.RecordVerification("accepted")
		}
		return true
	}
	if v.metrics != nil {
		v.metrics.RecordVerification(string(reason))
	}
	v.logger.Debug("request verification failed", "reason", string(reason))
	return false
}

// verify runs the ordered checks. The first failing check short-circuits.
// The nonce store is consulted only after the signature has passed, so an
// unauthenticated attacker cannot fill it with garbage nonces.
func (v *Verifier) verify(ctx context.Context, h http.Header, body []byte) Reason {
	// 1. Presence. Header lookup is case-insensitive.
	ts := strings.TrimSpace(h.Get(HeaderTimestamp))
	n := strings.TrimSpace(h.Get(HeaderNonce))
	sig := strings.TrimSpace(h.Get(HeaderSignature))
	if ts == "" || n == "" || sig == "" {
		return ReasonMissingHeader
	}

	// 2. Normalize the signature for comparison only. The timestamp and
	// nonce are used as trimmed but otherwise untouched; they are part of
	// what was signed.
	sig = strings.ToLower(sig)

	// 3. Cheap format check before any HMAC work.
	if !signature.ValidFormat(sig) {
		return ReasonMalformedSignature
	}

	// 4. Timestamp must be a decimal integer.
	tsVal, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return ReasonMalformedTimestamp
	}

	// 5. Freshness window, the same bound on both sides of now. Strictly
	// greater-than: a timestamp exactly maxAge old is still fresh.
	now := v.clock.Now().Unix()
	maxAge := int64(v.maxAge / time.Second)
	if tsVal > now+maxAge || now-tsVal > maxAge {
		return ReasonTimestampOutOfWindow
	}

	// 6, 7. Recompute over the exact transmitted bytes and compare in
	// constant time.
	expected := signature.Sign(v.secret, ts, n, body)
	if !signature.Equal(sig, expected) {
		return ReasonSignatureMismatch
	}

	// 8. Replay check, only after cryptographic validation. The replay
	// window is anchored to the signed timestamp, not the server clock.
	// The extra second keeps the record alive through the whole of the
	// window's last second: a request signed exactly maxAge ago is still
	// fresh at any sub-second instant of that second, so its record must
	// not expire until the second after.
	fresh, err := v.store.CheckAndStore(ctx, n, time.Unix(tsVal+maxAge+1, 0))
	if err != nil {
		// Fail closed: without the store we cannot rule out a replay.
		v.logger.Error("nonce store unavailable", "error", err)
		return ReasonStoreError
	}
	if !fresh {
		return ReasonReplayedNonce
	}

	return ""
}
