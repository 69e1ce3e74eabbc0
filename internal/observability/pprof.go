package observability

import (
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/sports-league/internal/config"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

// namedProfiles are served by pprof.Handler next to the index.
var namedProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, name := range namedProfiles {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}
	return mux
}

// startPprof serves the profiling endpoints on their own listener so they
// are never reachable through the public API address.
func startPprof(cfg config.Config, logger *logging.Logger) *http.Server {
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil
	}

	srv := &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           pprofMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("pprof server starting", "addr", cfg.PprofAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return srv
}
