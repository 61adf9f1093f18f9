package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/xraph/sigil"

// Tracer provides OpenTelemetry tracing for Sigil.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a new Sigil tracer.
func NewTracer() *Tracer {
	return &Tracer{
		tracer: otel.Tracer(tracerName),
	}
}

// StartVerifySpan starts a new span for one verification.
func (t *Tracer) StartVerifySpan(ctx context.Context) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "sigil.verify")
}

// EndVerifySpan ends a verification span with its outcome. reason is empty
// for accepted requests.
func (t *Tracer) EndVerifySpan(span trace.Span, accepted bool, reason string) {
	span.SetAttributes(attribute.Bool("sigil.accepted", accepted))
	if reason != "" {
		span.SetAttributes(attribute.String("sigil.reject_reason", reason))
	}
	span.End()
}
