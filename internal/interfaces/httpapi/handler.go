package httpapi

import (
	"context"
	"net/http"
	"sync"

	crerr "github.com/cockroachdb/errors"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultBatchWorkers = 8
	defaultBatchMaxSize = 20
)

type HandlerConfig struct {
	// BatchWorkers bounds how many operations of one batched request run
	// at the same time across all requests.
	BatchWorkers int
	BatchMaxSize int
}

type Handler struct {
	graphql      *gqlapi.Service
	pool         *ants.Pool
	batchMaxSize int
	logger       *logging.Logger
}

func NewHandler(service *gqlapi.Service, cfg HandlerConfig, logger *logging.Logger) (*Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = defaultBatchWorkers
	}
	if cfg.BatchMaxSize <= 0 {
		cfg.BatchMaxSize = defaultBatchMaxSize
	}

	pool, err := ants.NewPool(cfg.BatchWorkers)
	if err != nil {
		return nil, crerr.Wrap(err, "create batch worker pool")
	}

	return &Handler{
		graphql:      service,
		pool:         pool,
		batchMaxSize: cfg.BatchMaxSize,
		logger:       logger,
	}, nil
}

// Close releases the batch worker pool.
func (h *Handler) Close() {
	h.pool.Release()
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GraphQL(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "httpapi.Handler.GraphQL")
	defer span.End()

	var (
		payload graphQLPayload
		err     error
	)
	switch r.Method {
	case http.MethodPost:
		payload, err = decodeGraphQLBody(r.Body)
	case http.MethodGet:
		payload, err = decodeGraphQLQuery(r.URL.Query())
	default:
		err = crerr.Mark(crerr.Newf("method %s is not supported, use GET or POST", r.Method), errMethodNotAllowed)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if !payload.batch {
		req := payload.requests[0]
		if r.Method == http.MethodGet && isMutation(req) {
			writeError(ctx, w, crerr.Mark(crerr.New("mutations must be sent with POST"), errMethodNotAllowed))
			return
		}
		annotateOperation(span, req)
		writeJSON(w, http.StatusOK, h.graphql.Exec(ctx, req))
		return
	}

	span.SetAttributes(attribute.Int("graphql.batch.size", len(payload.requests)))

	if len(payload.requests) > h.batchMaxSize {
		writeError(ctx, w, invalidInputf("batch of %d operations exceeds the limit of %d", len(payload.requests), h.batchMaxSize))
		return
	}

	responses := make([]*graphql.Response, len(payload.requests))
	var workers sync.WaitGroup
	for i, req := range payload.requests {
		workers.Add(1)
		if err := h.pool.Submit(func() {
			defer workers.Done()
			responses[i] = h.execBatched(ctx, req, i)
		}); err != nil {
			workers.Done()
			logging.FromContext(ctx, h.logger).WarnContext(ctx, "batch pool rejected operation, running inline", "error", err)
			responses[i] = h.execBatched(ctx, req, i)
		}
	}
	workers.Wait()

	writeJSON(w, http.StatusOK, responses)
}

// execBatched runs one entry of a batched request under its own span.
func (h *Handler) execBatched(ctx context.Context, req gqlapi.Request, index int) *graphql.Response {
	ctx, span := startHandlerSpan(ctx, "httpapi.Handler.GraphQL.operation", attribute.Int("graphql.batch.index", index))
	defer span.End()

	annotateOperation(span, req)
	return h.graphql.Exec(ctx, req)
}
