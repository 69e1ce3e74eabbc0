// Package dataloaders batches id lookups made while resolving a single
// GraphQL operation. A Loaders value must never outlive its operation.
package dataloaders

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
	"github.com/riskibarqy/sports-league/internal/platform/metrics"
	"github.com/sourcegraph/conc/iter"
)

const (
	defaultWait     = 2 * time.Millisecond
	defaultMaxBatch = 100
)

// Repositories are the lookups the loaders batch over.
type Repositories struct {
	Teams       team.Repository
	Players     player.Repository
	Matches     match.Repository
	PlayerStats playerstats.Repository
	TeamStats   teamstats.Repository
}

type Config struct {
	// Wait is how long a loader collects keys before dispatching a batch.
	Wait time.Duration
	// MaxBatch caps the number of keys per batch.
	MaxBatch int
}

// Loaders holds one loader per collection. A nil value means not found;
// the statistics loaders never return nil and substitute a zeroed row.
type Loaders struct {
	Team        *dataloader.Loader[string, *team.Team]
	Player      *dataloader.Loader[string, *player.Player]
	Match       *dataloader.Loader[string, *match.Match]
	PlayerStats *dataloader.Loader[string, *playerstats.Statistics]
	TeamStats   *dataloader.Loader[string, *teamstats.Statistics]
}

// Factory builds a fresh Loaders value per operation.
type Factory struct {
	repos Repositories
	cfg   Config
}

func NewFactory(repos Repositories, cfg Config) *Factory {
	if cfg.Wait <= 0 {
		cfg.Wait = defaultWait
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = defaultMaxBatch
	}
	return &Factory{repos: repos, cfg: cfg}
}

func (f *Factory) New() *Loaders {
	return &Loaders{
		Team:   newLoader(f.cfg, "team", f.repos.Teams.GetByID),
		Player: newLoader(f.cfg, "player", f.repos.Players.GetByID),
		Match:  newLoader(f.cfg, "match", f.repos.Matches.GetByID),
		PlayerStats: newLoader(f.cfg, "player_statistics", zeroFilled(
			f.repos.PlayerStats.GetByPlayerID, playerstats.Zero,
		)),
		TeamStats: newLoader(f.cfg, "team_statistics", zeroFilled(
			f.repos.TeamStats.GetByTeamID, teamstats.Zero,
		)),
	}
}

// Reset empties every cache. Mutations call it after they commit because a
// write may touch records of several collections.
func (l *Loaders) Reset() {
	l.Team.ClearAll()
	l.Player.ClearAll()
	l.Match.ClearAll()
	l.PlayerStats.ClearAll()
	l.TeamStats.ClearAll()
}

func newLoader[V any](cfg Config, name string, lookup func(context.Context, string) (V, bool, error)) *dataloader.Loader[string, *V] {
	return dataloader.NewBatchedLoader(
		batchFunc(name, lookup),
		dataloader.WithWait[string, *V](cfg.Wait),
		dataloader.WithBatchCapacity[string, *V](cfg.MaxBatch),
	)
}

// batchFunc resolves every key of a batch with one lookup each. Results are
// aligned with keys and a missing record yields a nil value, not an error.
func batchFunc[V any](name string, lookup func(context.Context, string) (V, bool, error)) dataloader.BatchFunc[string, *V] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*V] {
		metrics.ObserveBatch(name, len(keys))

		return iter.Map(keys, func(key *string) *dataloader.Result[*V] {
			item, exists, err := lookup(ctx, *key)
			if err != nil {
				return &dataloader.Result[*V]{Error: err}
			}
			if !exists {
				return &dataloader.Result[*V]{}
			}
			return &dataloader.Result[*V]{Data: &item}
		})
	}
}

func zeroFilled[V any](
	lookup func(context.Context, string) (V, bool, error),
	zero func(id string) V,
) func(context.Context, string) (V, bool, error) {
	return func(ctx context.Context, id string) (V, bool, error) {
		item, exists, err := lookup(ctx, id)
		if err != nil {
			return item, false, err
		}
		if !exists {
			return zero(id), true, nil
		}
		return item, true, nil
	}
}

type ctxKey struct{}

func NewContext(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, ctxKey{}, loaders)
}

// FromContext returns the loaders attached to the operation context.
func FromContext(ctx context.Context) (*Loaders, bool) {
	loaders, ok := ctx.Value(ctxKey{}).(*Loaders)
	return loaders, ok && loaders != nil
}

// Load fetches one record through loader. A nil result means not found.
func Load[V any](ctx context.Context, loader *dataloader.Loader[string, *V], id string) (*V, error) {
	return loader.Load(ctx, id)()
}

// LoadMany fetches records aligned with ids. Missing records are nil.
func LoadMany[V any](ctx context.Context, loader *dataloader.Loader[string, *V], ids []string) ([]*V, error) {
	items, errs := loader.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Refresh drops the cached value for id and primes the loader with value,
// so later loads in the same operation see the committed record.
func Refresh[V any](ctx context.Context, loader *dataloader.Loader[string, *V], id string, value V) {
	loader.Clear(ctx, id).Prime(ctx, id, &value)
}

// Forget drops the cached value for id.
func Forget[V any](ctx context.Context, loader *dataloader.Loader[string, *V], id string) {
	loader.Clear(ctx, id)
}
