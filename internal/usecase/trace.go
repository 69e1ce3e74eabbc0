package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("sports-league/internal/usecase")

// startUsecaseSpan opens a child span for a service call. Calls without a
// traced parent, tests and loader batches among them, get the no-op span
// already in ctx.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if name == "" || !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endUsecaseSpan ends span after classifying err. Not-found and invalid input
// are client outcomes and only tagged; anything else fails the span. Use it
// with a named error result: defer func() { endUsecaseSpan(span, err) }().
func endUsecaseSpan(span trace.Span, err error) {
	switch {
	case err == nil:
	case crerr.Is(err, ErrNotFound):
		span.SetAttributes(attribute.String("error.kind", "not_found"))
	case crerr.Is(err, ErrInvalidInput):
		span.SetAttributes(attribute.String("error.kind", "invalid_input"))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func teamIDAttr(id string) attribute.KeyValue   { return attribute.String("team.id", id) }
func playerIDAttr(id string) attribute.KeyValue { return attribute.String("player.id", id) }
func matchIDAttr(id string) attribute.KeyValue  { return attribute.String("match.id", id) }
