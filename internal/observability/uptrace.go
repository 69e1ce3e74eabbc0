package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/sports-league/internal/config"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

func noopShutdown(context.Context) error { return nil }

// startTracing installs the Uptrace exporter as the global OpenTelemetry
// provider, which otelhttp, the GraphQL tracer and the usecase spans all
// report through.
func startTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if !cfg.UptraceEnabled {
		logger.Info("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return noopShutdown, nil
	}

	dsn := strings.TrimSpace(cfg.UptraceDSN)
	if dsn == "" {
		logger.Warn("tracing disabled", "reason", "UPTRACE_DSN empty")
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(
			attribute.String("api.protocol", "graphql"),
			attribute.Int("graphql.max_depth", cfg.GraphQLMaxDepth),
			attribute.Int("graphql.max_parallelism", cfg.GraphQLMaxParallelism),
		),
	)

	logger.Info("tracing enabled",
		"exporter", "uptrace",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)
	return uptrace.Shutdown, nil
}
