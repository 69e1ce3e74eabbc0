package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_RecordsStatus(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/metrics-test", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test", "418"))
	if got != 1 {
		t.Fatalf("expected 1 request recorded, got %v", got)
	}
}

func TestObserveBatch(t *testing.T) {
	ObserveBatch("team-test", 3)
	ObserveBatch("team-test", 1)

	if got := testutil.ToFloat64(LoaderBatchesTotal.WithLabelValues("team-test")); got != 2 {
		t.Fatalf("expected 2 batches, got %v", got)
	}
}

func TestHandler_ExposesOperationMetric(t *testing.T) {
	ObserveOperation("", true, 0)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `sports_league_graphql_operations_total{operation="anonymous",outcome="error"} 1`) {
		t.Fatalf("operation metric missing from exposition:\n%s", body)
	}
}
