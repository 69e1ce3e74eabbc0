package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sports-league/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	defer r.store.rlock(ctx)()

	return r.store.matches.all(), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	defer r.store.rlock(ctx)()

	item, ok := r.store.matches.find(matchID)
	return item, ok, nil
}

func (r *MatchRepository) Insert(ctx context.Context, item match.Match) (match.Match, error) {
	defer r.store.lock(ctx)()

	id, err := r.store.matchIDs.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	item.ID = id
	r.store.matches.add(item)

	return item, nil
}

func (r *MatchRepository) Update(ctx context.Context, matchID string, mutate func(*match.Match)) (match.Match, bool, error) {
	defer r.store.lock(ctx)()

	item, ok := r.store.matches.update(matchID, func(m *match.Match) {
		mutate(m)
		m.ID = matchID
	})
	return item, ok, nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) (match.Match, bool, error) {
	defer r.store.lock(ctx)()

	item, ok := r.store.matches.remove(matchID)
	return item, ok, nil
}

type EventRepository struct {
	store *Store
}

func (r *EventRepository) List(ctx context.Context) ([]match.Event, error) {
	defer r.store.rlock(ctx)()

	return r.store.events.all(), nil
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID string) ([]match.Event, error) {
	defer r.store.rlock(ctx)()

	return r.store.events.filter(func(e match.Event) bool { return e.MatchID == matchID }), nil
}

func (r *EventRepository) Insert(ctx context.Context, item match.Event) (match.Event, error) {
	defer r.store.lock(ctx)()

	id, err := r.store.eventIDs.NewID()
	if err != nil {
		return match.Event{}, fmt.Errorf("generate match event id: %w", err)
	}
	item.ID = id
	r.store.events.add(item)

	return item, nil
}
