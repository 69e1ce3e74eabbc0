// Package gqlapi exposes the use cases as a GraphQL schema.
package gqlapi

import (
	"context"
	_ "embed"
	"time"

	crerr "github.com/cockroachdb/errors"
	graphql "github.com/graph-gophers/graphql-go"
	otelgraphql "github.com/graph-gophers/graphql-go/trace/otel"
	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi/dataloaders"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"github.com/riskibarqy/sports-league/internal/platform/metrics"
	"github.com/riskibarqy/sports-league/internal/usecase"
)

//go:embed schema.graphql
var schemaSDL string

// SchemaSDL returns the schema definition served by the API.
func SchemaSDL() string {
	return schemaSDL
}

// Services are the use cases the resolvers delegate to.
type Services struct {
	Teams      *usecase.TeamService
	Players    *usecase.PlayerService
	Matches    *usecase.MatchService
	Statistics *usecase.StatisticsService
	Transfers  *usecase.TransferService
}

type Config struct {
	MaxParallelism int
	MaxDepth       int
	// ExposeErrorDetails adds stack traces to error extensions and keeps
	// internal error messages.
	ExposeErrorDetails bool
}

// Request is one GraphQL operation as sent by clients.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type Service struct {
	schema        *graphql.Schema
	loaders       *dataloaders.Factory
	logger        *logging.Logger
	exposeDetails bool
}

func NewService(services Services, loaders *dataloaders.Factory, cfg Config, logger *logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.Default()
	}

	opts := []graphql.SchemaOpt{
		graphql.Tracer(otelgraphql.DefaultTracer()),
		graphql.Logger(panicLogger{logger: logger}),
		graphql.PanicHandler(panicLogger{logger: logger}),
	}
	if cfg.MaxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(cfg.MaxParallelism))
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
	}

	root := &Resolver{services: services, loaders: loaders}
	schema, err := graphql.ParseSchema(schemaSDL, root, opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "parse graphql schema")
	}

	return &Service{
		schema:        schema,
		loaders:       loaders,
		logger:        logger,
		exposeDetails: cfg.ExposeErrorDetails,
	}, nil
}

// Exec runs one operation with a loader set of its own and returns the
// response with client-facing errors.
func (s *Service) Exec(ctx context.Context, req Request) *graphql.Response {
	ctx = dataloaders.NewContext(ctx, s.loaders.New())
	if req.OperationName != "" {
		ctx = logging.WithFields(ctx, s.logger, "graphql_operation", req.OperationName)
	}

	start := time.Now()
	resp := s.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	metrics.ObserveOperation(req.OperationName, len(resp.Errors) > 0, time.Since(start))

	s.presentErrors(ctx, resp.Errors)
	return resp
}
