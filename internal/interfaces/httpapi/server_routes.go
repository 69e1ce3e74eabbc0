package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sports-league/internal/platform/metrics"
)

const (
	graphQLPath = "/graphql"
	healthzPath = "/healthz"
	metricsPath = "/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsEnabled bool) {
	mux.HandleFunc("GET "+healthzPath, handler.Healthz)
	if metricsEnabled {
		mux.Handle("GET "+metricsPath, metrics.Handler())
	}
}

// registerGraphQLRoutes accepts every method so unsupported ones get the
// JSON error envelope instead of the mux's plain-text 405.
func registerGraphQLRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc(graphQLPath, handler.GraphQL)
}
