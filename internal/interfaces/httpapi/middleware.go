package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"github.com/riskibarqy/sports-league/internal/platform/metrics"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one, and
// attaches a logger carrying it to the request context.
func RequestID(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := withRequestID(r.Context(), id)
		ctx = logging.NewContext(ctx, logger.With("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		sw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		ctx := r.Context()
		logger.InfoContext(ctx, "http request",
			"request_id", requestIDFromContext(ctx),
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

func RequestMetrics(next http.Handler) http.Handler {
	return metrics.Middleware(next)
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "sports-league-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(shouldTraceRequest),
	)
}

// shouldTraceRequest leaves out probes, scrapes and CORS preflights so traces
// only cover GraphQL traffic.
func shouldTraceRequest(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return false
	}
	switch strings.TrimSuffix(r.URL.Path, "/") {
	case healthzPath, metricsPath:
		return false
	default:
		return true
	}
}

func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if candidate := strings.TrimSpace(origin); candidate != "" {
			origins = append(origins, candidate)
		}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         600,
	}).Handler(next)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
