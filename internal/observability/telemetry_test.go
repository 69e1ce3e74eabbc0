package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/sports-league/internal/config"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	telemetry, err := Start(config.Config{ServiceName: "sports-league-api", AppEnv: config.EnvDev}, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if telemetry.pprof != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown telemetry: %v", err)
	}
}

func TestStartTracing_EmptyDSN(t *testing.T) {
	shutdown, err := startTracing(config.Config{UptraceEnabled: true, UptraceDSN: "  "}, logging.NewNop())
	if err != nil {
		t.Fatalf("start tracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown tracing: %v", err)
	}
}

func TestStartProfiling_Disabled(t *testing.T) {
	stop, err := startProfiling(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("start profiling: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop profiling: %v", err)
	}
}

func TestPprofMux_ServesNamedProfiles(t *testing.T) {
	mux := pprofMux()

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/goroutine?debug=1", "/debug/pprof/mutex?debug=1"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestShutdown_NilTelemetry(t *testing.T) {
	var telemetry *Telemetry
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil telemetry shutdown to be a no-op, got %v", err)
	}
}
