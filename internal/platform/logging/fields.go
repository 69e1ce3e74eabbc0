package logging

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// traceFields links a line to the active span when there is one.
func traceFields(ctx context.Context) []zap.Field {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	}
}

// zapFields pairs up alternating keys and values. A non-string key becomes
// "arg" and a trailing key without a value is logged as null.
func zapFields(args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(args)+1)/2+2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}
		if i+1 >= len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}

		switch value := args[i+1].(type) {
		case error:
			out = append(out, zap.NamedError(key, value))
		case string:
			out = append(out, zap.String(key, value))
		default:
			out = append(out, zap.Any(key, value))
		}
	}
	return out
}
