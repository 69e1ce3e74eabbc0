package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
)

type PlayerStatsRepository struct {
	store *Store
}

func (r *PlayerStatsRepository) List(ctx context.Context) ([]playerstats.Statistics, error) {
	defer r.store.rlock(ctx)()

	return r.store.playerStats.all(), nil
}

func (r *PlayerStatsRepository) GetByPlayerID(ctx context.Context, playerID string) (playerstats.Statistics, bool, error) {
	defer r.store.rlock(ctx)()

	item, ok := r.store.playerStats.find(playerID)
	return item, ok, nil
}

func (r *PlayerStatsRepository) Insert(ctx context.Context, item playerstats.Statistics) error {
	defer r.store.lock(ctx)()

	if _, exists := r.store.playerStats.find(item.PlayerID); exists {
		return fmt.Errorf("player statistics already exist: player=%s", item.PlayerID)
	}
	r.store.playerStats.add(item)
	return nil
}

func (r *PlayerStatsRepository) Update(ctx context.Context, playerID string, mutate func(*playerstats.Statistics)) (playerstats.Statistics, bool, error) {
	defer r.store.lock(ctx)()

	item, ok := r.store.playerStats.update(playerID, func(s *playerstats.Statistics) {
		mutate(s)
		s.PlayerID = playerID
	})
	return item, ok, nil
}

func (r *PlayerStatsRepository) Delete(ctx context.Context, playerID string) (bool, error) {
	defer r.store.lock(ctx)()

	_, ok := r.store.playerStats.remove(playerID)
	return ok, nil
}

type TeamStatsRepository struct {
	store *Store
}

func (r *TeamStatsRepository) List(ctx context.Context) ([]teamstats.Statistics, error) {
	defer r.store.rlock(ctx)()

	return r.store.teamStats.all(), nil
}

func (r *TeamStatsRepository) GetByTeamID(ctx context.Context, teamID string) (teamstats.Statistics, bool, error) {
	defer r.store.rlock(ctx)()

	item, ok := r.store.teamStats.find(teamID)
	return item, ok, nil
}

func (r *TeamStatsRepository) Insert(ctx context.Context, item teamstats.Statistics) error {
	defer r.store.lock(ctx)()

	if _, exists := r.store.teamStats.find(item.TeamID); exists {
		return fmt.Errorf("team statistics already exist: team=%s", item.TeamID)
	}
	r.store.teamStats.add(item)
	return nil
}

func (r *TeamStatsRepository) Update(ctx context.Context, teamID string, mutate func(*teamstats.Statistics)) (teamstats.Statistics, bool, error) {
	defer r.store.lock(ctx)()

	item, ok := r.store.teamStats.update(teamID, func(s *teamstats.Statistics) {
		mutate(s)
		s.TeamID = teamID
	})
	return item, ok, nil
}

func (r *TeamStatsRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	defer r.store.lock(ctx)()

	_, ok := r.store.teamStats.remove(teamID)
	return ok, nil
}
