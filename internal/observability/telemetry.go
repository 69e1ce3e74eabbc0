// Package observability wires tracing, continuous profiling and the pprof
// endpoint for the API process.
package observability

import (
	"context"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-league/internal/config"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

// Telemetry owns every observability resource started for the process.
type Telemetry struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiling   func() error
	pprof           *http.Server
}

// Start brings up the exporters enabled in cfg. Disabled components are
// skipped and cost nothing at shutdown.
func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}

	t := &Telemetry{logger: logger}

	shutdownTracing, err := startTracing(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "start tracing")
	}
	t.shutdownTracing = shutdownTracing

	stopProfiling, err := startProfiling(cfg, logger)
	if err != nil {
		_ = t.Shutdown(context.Background())
		return nil, crerr.Wrap(err, "start profiling")
	}
	t.stopProfiling = stopProfiling

	t.pprof = startPprof(cfg, logger)
	return t, nil
}

// Shutdown stops pprof, then the profiler, then flushes pending spans. All
// steps run even when an earlier one fails.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs error
	if t.pprof != nil {
		if err := t.pprof.Shutdown(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pprof"))
		} else {
			t.logger.Info("pprof server stopped")
		}
	}
	if t.stopProfiling != nil {
		if err := t.stopProfiling(); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pyroscope"))
		}
	}
	if t.shutdownTracing != nil {
		if err := t.shutdownTracing(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "flush traces"))
		}
	}
	return errs
}
