package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
)

type StatisticsService struct {
	playerStatsRepo playerstats.Repository
	teamStatsRepo   teamstats.Repository
}

func NewStatisticsService(playerStatsRepo playerstats.Repository, teamStatsRepo teamstats.Repository) *StatisticsService {
	return &StatisticsService{
		playerStatsRepo: playerStatsRepo,
		teamStatsRepo:   teamStatsRepo,
	}
}

// Standings returns every team statistics row in store order.
func (s *StatisticsService) Standings(ctx context.Context) ([]teamstats.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Standings")
	defer span.End()

	items, err := s.teamStatsRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list team statistics")
	}
	return items, nil
}

// TopScorers orders player statistics by goals, highest first. Ties keep
// store order. A nil limit returns every row.
func (s *StatisticsService) TopScorers(ctx context.Context, limit *int) ([]playerstats.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.TopScorers")
	defer span.End()

	if limit != nil && *limit < 0 {
		return nil, InvalidInputf("limit must not be negative")
	}

	items, err := s.playerStatsRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list player statistics")
	}
	slices.SortStableFunc(items, func(a, b playerstats.Statistics) int {
		return cmp.Compare(b.Goals, a.Goals)
	})
	return truncate(items, limit), nil
}

// PlayerStatistics returns the row of a player, or a zeroed row when none is
// stored.
func (s *StatisticsService) PlayerStatistics(ctx context.Context, playerID string) (playerstats.Statistics, error) {
	item, exists, err := s.playerStatsRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return playerstats.Statistics{}, internalf(err, "get player statistics")
	}
	if !exists {
		return playerstats.Zero(playerID), nil
	}
	return item, nil
}

// TeamStatistics returns the row of a team, or a zeroed row when none is
// stored.
func (s *StatisticsService) TeamStatistics(ctx context.Context, teamID string) (teamstats.Statistics, error) {
	item, exists, err := s.teamStatsRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		return teamstats.Statistics{}, internalf(err, "get team statistics")
	}
	if !exists {
		return teamstats.Zero(teamID), nil
	}
	return item, nil
}
