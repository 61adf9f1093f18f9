package sigil

import (
	"log/slog"
	"time"

	"github.com/xraph/sigil/clock"
	"github.com/xraph/sigil/nonce"
	"github.com/xraph/sigil/observability"
)

// settings collects everything options can configure before a Signer or
// Verifier is wired up.
type settings struct {
	config   Config
	clock    clock.Clock
	store    nonce.Store
	newNonce func() string
	logger   *slog.Logger
	metrics  *observability.Metrics
	tracer   *observability.Tracer
}

func defaultSettings() settings {
	return settings{
		config:   DefaultConfig(),
		clock:    clock.System{},
		newNonce: nonce.New,
		logger:   slog.Default(),
	}
}

func (s *settings) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	return nil
}

// Option configures a Signer or Verifier. Options that only concern
// verification (nonce store, freshness window) are accepted and ignored by
// NewSigner.
type Option func(*settings) error

// WithMaxAge sets the freshness window on each side of the verifier's
// clock. Timestamps have whole-second resolution, so the window must be at
// least one second.
func WithMaxAge(d time.Duration) Option {
	return func(s *settings) error {
		if d < time.Second {
			return ErrInvalidMaxAge
		}
		s.config.MaxAge = d
		return nil
	}
}

// WithClock sets the time source. Tests use clock.NewManual to pin or skew
// the current time.
func WithClock(c clock.Clock) Option {
	return func(s *settings) error {
		if c == nil {
			return ErrNilClock
		}
		s.clock = c
		return nil
	}
}

// WithNonceStore sets the replay-tracking backend. The caller owns the
// store's lifecycle; Verifier.Close will not close it. Without this option
// the Verifier creates and owns a bounded in-memory store.
func WithNonceStore(st nonce.Store) Option {
	return func(s *settings) error {
		if st == nil {
			return ErrNilNonceStore
		}
		s.store = st
		return nil
	}
}

// WithPruneEvery sets the sweep cadence of the default in-memory store.
func WithPruneEvery(n int) Option {
	return func(s *settings) error {
		s.config.PruneEvery = n
		return nil
	}
}

// WithMaxTrackedNonces sets the capacity ceiling of the default in-memory store.
func WithMaxTrackedNonces(n int) Option {
	return func(s *settings) error {
		s.config.MaxTrackedNonces = n
		return nil
	}
}

// WithNonceSource sets the nonce mint used by the Signer. The default mints
// a random UUID per call; tests substitute a deterministic source.
func WithNonceSource(fn func() string) Option {
	return func(s *settings) error {
		s.newNonce = fn
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metric instruments to record signing and
// verification outcomes on.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *settings) error {
		s.metrics = m
		return nil
	}
}

// WithTracer enables an OpenTelemetry span per verification.
func WithTracer(t *observability.Tracer) Option {
	return func(s *settings) error {
		s.tracer = t
		return nil
	}
}
