package usecase

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

type testServices struct {
	store     *memory.Store
	clock     *clockwork.FakeClock
	teams     *TeamService
	players   *PlayerService
	matches   *MatchService
	stats     *StatisticsService
	transfers *TransferService
}

var testNow = time.Date(2026, time.March, 14, 15, 30, 0, 0, time.UTC)

func newTestServices(t *testing.T) testServices {
	t.Helper()

	store := memory.NewSeededStore()
	clock := clockwork.NewFakeClockAt(testNow)
	logger := logging.NewNop()

	return testServices{
		store:     store,
		clock:     clock,
		teams:     NewTeamService(store, store.Teams(), store.Players(), store.Matches(), store.TeamStats(), clock, logger),
		players:   NewPlayerService(store, store.Teams(), store.Players(), store.PlayerStats(), store.Matches(), store.Events(), logger),
		matches:   NewMatchService(store, store.Teams(), store.Players(), store.Matches(), store.Events(), store.TeamStats(), store.PlayerStats(), logger),
		stats:     NewStatisticsService(store.PlayerStats(), store.TeamStats()),
		transfers: NewTransferService(store, store.Teams(), store.Players(), clock, logger),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func playerIDs(items []player.Player) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
