package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
	"github.com/riskibarqy/sports-league/internal/infrastructure/repository/memory"
)

type stubPlayerStatsRepository struct {
	playerstats.Repository
	rows []playerstats.Statistics
}

func (s *stubPlayerStatsRepository) List(context.Context) ([]playerstats.Statistics, error) {
	out := make([]playerstats.Statistics, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func TestStatisticsService_TopScorersStableDescending(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerStatsRepository{rows: []playerstats.Statistics{
		{PlayerID: "a", Goals: 3},
		{PlayerID: "b", Goals: 1},
		{PlayerID: "c", Goals: 2},
		{PlayerID: "d", Goals: 0},
	}}
	service := NewStatisticsService(repo, nil)

	got, err := service.TopScorers(context.Background(), ptr(2))
	if err != nil {
		t.Fatalf("TopScorers error: %v", err)
	}
	if len(got) != 2 || got[0].PlayerID != "a" || got[1].PlayerID != "c" {
		t.Fatalf("unexpected top scorers: %+v", got)
	}
}

func TestStatisticsService_TopScorersTiesKeepStoreOrder(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerStatsRepository{rows: []playerstats.Statistics{
		{PlayerID: "a", Goals: 1},
		{PlayerID: "b", Goals: 2},
		{PlayerID: "c", Goals: 1},
		{PlayerID: "d", Goals: 2},
	}}
	service := NewStatisticsService(repo, nil)

	got, err := service.TopScorers(context.Background(), nil)
	if err != nil {
		t.Fatalf("TopScorers error: %v", err)
	}
	order := make([]string, 0, len(got))
	for _, row := range got {
		order = append(order, row.PlayerID)
	}
	want := []string{"b", "d", "a", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestStatisticsService_TopScorersRejectsNegativeLimit(t *testing.T) {
	t.Parallel()

	service := NewStatisticsService(&stubPlayerStatsRepository{}, nil)
	_, err := service.TopScorers(context.Background(), ptr(-1))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStatisticsService_SeedFixture(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)

	top, err := svc.stats.TopScorers(t.Context(), ptr(3))
	if err != nil {
		t.Fatalf("TopScorers error: %v", err)
	}
	if top[0].PlayerID != "1" || top[1].PlayerID != "3" || top[2].PlayerID != "2" {
		t.Fatalf("unexpected top scorers: %+v", top)
	}

	standings, err := svc.stats.Standings(t.Context())
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}
	if len(standings) != 3 || standings[0].TeamID != memory.TeamIDLions {
		t.Fatalf("unexpected standings: %+v", standings)
	}
}

func TestStatisticsService_MissingRowsAreZeroed(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)

	ps, err := svc.stats.PlayerStatistics(t.Context(), "404")
	if err != nil {
		t.Fatalf("PlayerStatistics error: %v", err)
	}
	if ps != playerstats.Zero("404") {
		t.Fatalf("expected zeroed player row, got %+v", ps)
	}

	ts, err := svc.stats.TeamStatistics(t.Context(), "404")
	if err != nil {
		t.Fatalf("TeamStatistics error: %v", err)
	}
	if ts != teamstats.Zero("404") {
		t.Fatalf("expected zeroed team row, got %+v", ts)
	}
}
