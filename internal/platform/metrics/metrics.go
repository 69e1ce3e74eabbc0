// Package metrics provides Prometheus instrumentation for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sports_league_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sports_league_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})

	// GraphQLOperationsTotal counts executed operations by name and outcome.
	GraphQLOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sports_league_graphql_operations_total",
		Help: "Total GraphQL operations executed",
	}, []string{"operation", "outcome"})

	// GraphQLOperationDuration tracks operation execution time.
	GraphQLOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sports_league_graphql_operation_duration_seconds",
		Help:    "GraphQL operation duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// LoaderBatchSize is the number of distinct keys per loader batch.
	LoaderBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sports_league_loader_batch_size",
		Help:    "Number of keys resolved per loader batch",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
	}, []string{"loader"})

	// LoaderBatchesTotal counts loader batches dispatched.
	LoaderBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sports_league_loader_batches_total",
		Help: "Total loader batches dispatched",
	}, []string{"loader"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns an HTTP middleware that records request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := r.URL.Path
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// ObserveOperation records one GraphQL operation.
func ObserveOperation(operation string, failed bool, elapsed time.Duration) {
	if operation == "" {
		operation = "anonymous"
	}
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	GraphQLOperationsTotal.WithLabelValues(operation, outcome).Inc()
	GraphQLOperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveBatch records one loader batch of size keys.
func ObserveBatch(loader string, size int) {
	LoaderBatchesTotal.WithLabelValues(loader).Inc()
	LoaderBatchSize.WithLabelValues(loader).Observe(float64(size))
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
