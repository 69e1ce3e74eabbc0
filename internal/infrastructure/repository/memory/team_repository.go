package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-league/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	defer r.store.rlock(ctx)()

	return r.store.teams.all(), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	defer r.store.rlock(ctx)()

	item, ok := r.store.teams.find(teamID)
	return item, ok, nil
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) (team.Team, error) {
	defer r.store.lock(ctx)()

	id, err := r.store.teamIDs.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}
	item.ID = id
	r.store.teams.add(item)

	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, teamID string, mutate func(*team.Team)) (team.Team, bool, error) {
	defer r.store.lock(ctx)()

	item, ok := r.store.teams.update(teamID, func(t *team.Team) {
		mutate(t)
		t.ID = teamID
	})
	return item, ok, nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) (team.Team, bool, error) {
	defer r.store.lock(ctx)()

	item, ok := r.store.teams.remove(teamID)
	return item, ok, nil
}
