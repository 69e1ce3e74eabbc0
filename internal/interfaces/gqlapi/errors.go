package gqlapi

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"github.com/riskibarqy/sports-league/internal/usecase"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeBadUserInput     = "BAD_USER_INPUT"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
	CodeValidationFailed = "GRAPHQL_VALIDATION_FAILED"

	maskedMessage = "internal server error"
)

// errorCode classifies a resolver error. Errors without a resolver cause
// come from parsing or validating the document.
func errorCode(qe *gqlerrors.QueryError) string {
	err := qe.ResolverError
	switch {
	case err == nil:
		return CodeValidationFailed
	case crerr.Is(err, usecase.ErrNotFound):
		return CodeNotFound
	case crerr.Is(err, usecase.ErrInvalidInput):
		return CodeBadUserInput
	default:
		return CodeInternal
	}
}

func (s *Service) presentErrors(ctx context.Context, errs []*gqlerrors.QueryError) {
	logger := logging.FromContext(ctx, s.logger)
	for _, qe := range errs {
		if qe == nil {
			continue
		}
		code := errorCode(qe)
		if qe.Extensions == nil {
			qe.Extensions = map[string]any{}
		}
		qe.Extensions["code"] = code

		if code == CodeInternal {
			logger.ErrorContext(ctx, "graphql resolver failed",
				"path", qe.Path,
				"error", qe.ResolverError,
			)
			if !s.exposeDetails {
				qe.Message = maskedMessage
			}
		}
		if s.exposeDetails && qe.ResolverError != nil {
			qe.Extensions["stacktrace"] = stacktrace(qe.ResolverError)
		}
	}
}

func stacktrace(err error) []string {
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimRight(line, " \t"); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// panicLogger routes resolver panics to the service logger and turns them
// into internal errors.
type panicLogger struct {
	logger *logging.Logger
}

func (p panicLogger) LogPanic(ctx context.Context, value any) {
	logging.FromContext(ctx, p.logger).ErrorContext(ctx, "graphql resolver panicked", "panic", fmt.Sprint(value))
}

func (p panicLogger) MakePanicError(_ context.Context, value any) *gqlerrors.QueryError {
	err := crerr.Mark(crerr.Newf("panic occurred: %v", value), usecase.ErrInternal)
	return &gqlerrors.QueryError{
		Err:           err,
		Message:       err.Error(),
		ResolverError: err,
	}
}
