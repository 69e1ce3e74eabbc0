package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"github.com/riskibarqy/sports-league/internal/usecase"
)

// Transport-level failures (bad JSON, wrong method, oversized body) use the
// envelope below. GraphQL results, including resolver errors, are written as
// plain GraphQL responses.
const (
	googleAPIVersion = "2.0"
	errorDomain      = "sports-league"
	internalMessage  = "internal server error"
)

var (
	errMethodNotAllowed = crerr.New("method not allowed")
	errPayloadTooLarge  = crerr.New("payload too large")
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var internalError = mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

// errorRules are checked in order; the first marked sentinel wins.
var errorRules = []struct {
	target error
	mapped mappedError
}{
	{usecase.ErrInvalidInput, mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{http.StatusNotFound, "notFound", "NOT_FOUND"}},
	{errMethodNotAllowed, mappedError{http.StatusMethodNotAllowed, "methodNotAllowed", "FAILED_PRECONDITION"}},
	{errPayloadTooLarge, mappedError{http.StatusRequestEntityTooLarge, "payloadTooLarge", "OUT_OF_RANGE"}},
}

func mapError(err error) mappedError {
	for _, rule := range errorRules {
		if crerr.Is(err, rule.target) {
			return rule.mapped
		}
	}
	return internalError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

// writeError answers with the envelope for err. Unmapped errors are logged
// and replaced by a generic message.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	message := err.Error()
	if mapped == internalError {
		logging.FromContext(ctx, nil).ErrorContext(ctx, "request failed", "error", err)
		message = internalMessage
	}
	writeErrorEnvelope(w, mapped, message)
}

func writeInternalError(w http.ResponseWriter) {
	writeErrorEnvelope(w, internalError, internalMessage)
}

func writeErrorEnvelope(w http.ResponseWriter, mapped mappedError, message string) {
	writeJSON(w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{{
				Domain:  errorDomain,
				Reason:  mapped.Reason,
				Message: message,
			}},
		},
	})
}
