package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-league/internal/config"
	"github.com/riskibarqy/sports-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi"
	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi/dataloaders"
	"github.com/riskibarqy/sports-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"github.com/riskibarqy/sports-league/internal/usecase"
)

// Server is the HTTP server plus the resources it owns.
type Server struct {
	*http.Server
	handler *httpapi.Handler
}

// Shutdown stops accepting requests and releases the batch workers once
// in-flight requests have finished.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Server.Shutdown(ctx)
	s.handler.Close()
	return err
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store := memory.NewSeededStore()
	clock := clockwork.NewRealClock()

	services := gqlapi.Services{
		Teams: usecase.NewTeamService(
			store,
			store.Teams(),
			store.Players(),
			store.Matches(),
			store.TeamStats(),
			clock,
			logger,
		),
		Players: usecase.NewPlayerService(
			store,
			store.Teams(),
			store.Players(),
			store.PlayerStats(),
			store.Matches(),
			store.Events(),
			logger,
		),
		Matches: usecase.NewMatchService(
			store,
			store.Teams(),
			store.Players(),
			store.Matches(),
			store.Events(),
			store.TeamStats(),
			store.PlayerStats(),
			logger,
		),
		Statistics: usecase.NewStatisticsService(store.PlayerStats(), store.TeamStats()),
		Transfers:  usecase.NewTransferService(store, store.Teams(), store.Players(), clock, logger),
	}

	loaders := dataloaders.NewFactory(dataloaders.Repositories{
		Teams:       store.Teams(),
		Players:     store.Players(),
		Matches:     store.Matches(),
		PlayerStats: store.PlayerStats(),
		TeamStats:   store.TeamStats(),
	}, dataloaders.Config{
		Wait:     cfg.DataLoaderWait,
		MaxBatch: cfg.DataLoaderMaxBatch,
	})

	graphqlService, err := gqlapi.NewService(services, loaders, gqlapi.Config{
		MaxParallelism:     cfg.GraphQLMaxParallelism,
		MaxDepth:           cfg.GraphQLMaxDepth,
		ExposeErrorDetails: cfg.ExposeErrorDetails,
	}, logger)
	if err != nil {
		return nil, err
	}

	handler, err := httpapi.NewHandler(graphqlService, httpapi.HandlerConfig{
		BatchWorkers: cfg.GraphQLBatchWorkers,
		BatchMaxSize: cfg.GraphQLBatchMaxSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsEnabled:     cfg.MetricsEnabled,
	})

	return &Server{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		handler: handler,
	}, nil
}
