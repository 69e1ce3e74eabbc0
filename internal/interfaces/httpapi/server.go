package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.MetricsEnabled)
	registerGraphQLRoutes(mux, handler)

	var next http.Handler = recoverPanic(logger, mux)
	next = CORS(cfg.CORSAllowedOrigins, next)
	if cfg.MetricsEnabled {
		next = RequestMetrics(next)
	}
	next = RequestLogging(logger, next)
	next = RequestID(logger, next)
	return RequestTracing(next)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := r.Context()
				logging.FromContext(ctx, logger).ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
