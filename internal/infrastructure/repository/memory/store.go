package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
	idgen "github.com/riskibarqy/sports-league/internal/platform/id"
)

// Fixture is the initial content of a Store.
type Fixture struct {
	Teams       []team.Team
	Players     []player.Player
	Matches     []match.Match
	Events      []match.Event
	PlayerStats []playerstats.Statistics
	TeamStats   []teamstats.Statistics
}

// Store owns every record of the service. All collections share one
// reader/writer lock so a transaction can span several of them.
//
// Stored values are treated as immutable: Match.Score is replaced, never
// written through, and team rosters are rebuilt on change.
type Store struct {
	mu sync.RWMutex

	teams       collection[team.Team]
	players     collection[player.Player]
	matches     collection[match.Match]
	events      collection[match.Event]
	playerStats collection[playerstats.Statistics]
	teamStats   collection[teamstats.Statistics]

	teamIDs   idgen.Generator
	playerIDs idgen.Generator
	matchIDs  idgen.Generator
	eventIDs  idgen.Generator
}

func NewStore(f Fixture) *Store {
	s := &Store{
		teams:       newCollection(func(t team.Team) string { return t.ID }, f.Teams),
		players:     newCollection(func(p player.Player) string { return p.ID }, f.Players),
		matches:     newCollection(func(m match.Match) string { return m.ID }, f.Matches),
		events:      newCollection(func(e match.Event) string { return e.ID }, f.Events),
		playerStats: newCollection(func(s playerstats.Statistics) string { return s.PlayerID }, f.PlayerStats),
		teamStats:   newCollection(func(s teamstats.Statistics) string { return s.TeamID }, f.TeamStats),
	}
	s.teamIDs = idgen.NewSequenceGeneratorAfter(keys(s.teams))
	s.playerIDs = idgen.NewSequenceGeneratorAfter(keys(s.players))
	s.matchIDs = idgen.NewSequenceGeneratorAfter(keys(s.matches))
	s.eventIDs = idgen.NewSequenceGeneratorAfter(keys(s.events))
	return s
}

// NewSeededStore returns a store loaded with the demo fixture.
func NewSeededStore() *Store {
	return NewStore(SeedFixture())
}

func keys[T any](c collection[T]) []string {
	out := make([]string, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.key(item))
	}
	return out
}

func (s *Store) Teams() *TeamRepository {
	return &TeamRepository{store: s}
}

func (s *Store) Players() *PlayerRepository {
	return &PlayerRepository{store: s}
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{store: s}
}

func (s *Store) Events() *EventRepository {
	return &EventRepository{store: s}
}

func (s *Store) PlayerStats() *PlayerStatsRepository {
	return &PlayerStatsRepository{store: s}
}

func (s *Store) TeamStats() *TeamStatsRepository {
	return &TeamStatsRepository{store: s}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// WithinTx runs fn while holding the write lock. Repository calls made with
// the context passed to fn do not lock again. When fn fails or panics every
// collection is restored to its state before the transaction. Nested calls
// join the outer transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if rec := recover(); rec != nil {
			s.restore(snap)
			panic(rec)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Store) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	teams       collection[team.Team]
	players     collection[player.Player]
	matches     collection[match.Match]
	events      collection[match.Event]
	playerStats collection[playerstats.Statistics]
	teamStats   collection[teamstats.Statistics]
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		teams:       s.teams.clone(),
		players:     s.players.clone(),
		matches:     s.matches.clone(),
		events:      s.events.clone(),
		playerStats: s.playerStats.clone(),
		teamStats:   s.teamStats.clone(),
	}
}

func (s *Store) restore(snap snapshot) {
	s.teams = snap.teams
	s.players = snap.players
	s.matches = snap.matches
	s.events = snap.events
	s.playerStats = snap.playerStats
	s.teamStats = snap.teamStats
}
