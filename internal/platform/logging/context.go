package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// NewContext stores a request-scoped logger, usually one carrying the
// request id, for FromContext to pick up further down the call chain.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request-scoped logger or fallback when none is set.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*Logger); ok && logger != nil {
			return logger
		}
	}
	if fallback != nil {
		return fallback
	}
	return Default()
}

// WithFields returns ctx carrying the scoped logger extended by args.
func WithFields(ctx context.Context, fallback *Logger, args ...any) context.Context {
	return NewContext(ctx, FromContext(ctx, fallback).With(args...))
}

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.DebugLevel, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.InfoLevel, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.WarnLevel, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.ErrorLevel, msg, args)
}

func (l *Logger) log(ctx context.Context, level zapcore.Level, msg string, args []any) {
	logger := l
	if logger == nil || logger.zap == nil {
		logger = Default()
	}
	ce := logger.zap.Check(level, msg)
	if ce == nil {
		return
	}
	fields := zapFields(args)
	if ctx != nil {
		fields = append(fields, traceFields(ctx)...)
	}
	ce.Write(fields...)
}
