package usecase

import (
	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrNotFound     = crerr.New("resource not found")
	ErrInternal     = crerr.New("internal error")
)

// User-facing messages shared with the GraphQL layer, which reports the same
// lookups when it resolves through its loaders.
const (
	MsgTeamNotFound   = "Team not found"
	MsgPlayerNotFound = "Player not found"
	MsgMatchNotFound  = "Match not found"
)

// NotFoundf builds an error marked as ErrNotFound. The message is returned to
// clients verbatim.
func NotFoundf(format string, args ...any) error {
	return crerr.Mark(crerr.NewWithDepthf(1, format, args...), ErrNotFound)
}

// InvalidInputf builds an error marked as ErrInvalidInput. The message is
// returned to clients verbatim.
func InvalidInputf(format string, args ...any) error {
	return crerr.Mark(crerr.NewWithDepthf(1, format, args...), ErrInvalidInput)
}

// internalf wraps a storage failure so it is reported as ErrInternal while
// keeping the cause for logs.
func internalf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(crerr.WrapWithDepthf(1, err, format, args...), ErrInternal)
}
