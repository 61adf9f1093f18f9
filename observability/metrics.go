package observability

import (
	gu "github.com/xraph/go-utils/metrics"
)

// Metrics holds metric instruments for Sigil, backed by any go-utils
// MetricFactory (e.g. the forge-managed metrics system via fapp.Metrics()).
type Metrics struct {
	SignaturesIssued   gu.Counter
	VerificationsTotal gu.Counter
	NonceStoreClears   gu.Counter
}

// NewMetrics creates Sigil metric instruments using the supplied factory.
// Pass fapp.Metrics() from a forge extension, or metrics.NewMetricsCollector()
// for standalone usage.
func NewMetrics(factory gu.MetricFactory) *Metrics {
	return &Metrics{
		SignaturesIssued:   factory.Counter("sigil_signatures_issued_total"),
		VerificationsTotal: factory.Counter("sigil_verifications_total"),
		NonceStoreClears:   factory.Counter("sigil_nonce_store_clears_total"),
	}
}

// RecordSignature records one issued signature.
func (m *Metrics) RecordSignature() {
	m.SignaturesIssued.Inc()
}

// RecordVerification records a verification outcome. result is "accepted"
// or a rejection reason category.
func (m *Metrics) RecordVerification(result string) {
	m.VerificationsTotal.WithLabels(map[string]string{"result": result}).Inc()
}

// RecordStoreClear records one overflow clear of the nonce store.
func (m *Metrics) RecordStoreClear() {
	m.NonceStoreClears.Inc()
}
