package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-league/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	defer r.store.rlock(ctx)()

	return r.store.players.all(), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	defer r.store.rlock(ctx)()

	item, ok := r.store.players.find(playerID)
	return item, ok, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) (player.Player, error) {
	defer r.store.lock(ctx)()

	id, err := r.store.playerIDs.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	item.ID = id
	r.store.players.add(item)

	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, playerID string, mutate func(*player.Player)) (player.Player, bool, error) {
	defer r.store.lock(ctx)()

	item, ok := r.store.players.update(playerID, func(p *player.Player) {
		mutate(p)
		p.ID = playerID
	})
	return item, ok, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) (player.Player, bool, error) {
	defer r.store.lock(ctx)()

	item, ok := r.store.players.remove(playerID)
	return item, ok, nil
}
