package httpapi

import "context"

type contextKey string

const requestIDContextKey contextKey = "request_id"

const requestIDHeader = "X-Request-ID"

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
