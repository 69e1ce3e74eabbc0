package httpapi

import (
	"context"

	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("sports-league/internal/interfaces/httpapi")

// startHandlerSpan opens a child of the otelhttp server span. Routes left out
// of tracing have no parent; they keep the no-op span already in ctx.
func startHandlerSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// annotateOperation tags span with the operation kind and name. The query is
// only parsed when the span is recording.
func annotateOperation(span trace.Span, req gqlapi.Request) {
	if !span.IsRecording() {
		return
	}
	kind := "query"
	if isMutation(req) {
		kind = "mutation"
	}
	span.SetAttributes(attribute.String("graphql.operation.type", kind))
	if req.OperationName != "" {
		span.SetAttributes(attribute.String("graphql.operation.name", req.OperationName))
	}
}
