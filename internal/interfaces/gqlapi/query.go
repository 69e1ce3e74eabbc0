package gqlapi

import (
	"context"

	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/usecase"
)

func (r *Resolver) Teams(ctx context.Context) ([]*teamResolver, error) {
	items, err := r.services.Teams.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.teams(items), nil
}

func (r *Resolver) Team(ctx context.Context, args struct{ ID string }) (*teamResolver, error) {
	item, err := r.loadTeam(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, usecase.NotFoundf(usecase.MsgTeamNotFound)
	}
	return item, nil
}

type playersArgs struct {
	TeamID   *string
	Position *player.Position
}

func (r *Resolver) Players(ctx context.Context, args playersArgs) ([]*playerResolver, error) {
	filter := player.Filter{TeamID: optionalString(args.TeamID)}
	if args.Position != nil {
		filter.Position = *args.Position
	}
	items, err := r.services.Players.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return r.players(items), nil
}

func (r *Resolver) Player(ctx context.Context, args struct{ ID string }) (*playerResolver, error) {
	item, err := r.loadPlayer(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, usecase.NotFoundf(usecase.MsgPlayerNotFound)
	}
	return item, nil
}

type matchesArgs struct {
	TeamID   *string
	Status   *match.Status
	DateFrom *string
	DateTo   *string
	Limit    *int32
}

func (r *Resolver) Matches(ctx context.Context, args matchesArgs) ([]*matchResolver, error) {
	filter := match.Filter{
		TeamID:   optionalString(args.TeamID),
		DateFrom: optionalString(args.DateFrom),
		DateTo:   optionalString(args.DateTo),
	}
	if args.Status != nil {
		filter.Status = *args.Status
	}
	items, err := r.services.Matches.List(ctx, filter, optionalInt(args.Limit))
	if err != nil {
		return nil, err
	}
	return r.matches(items), nil
}

func (r *Resolver) Match(ctx context.Context, args struct{ ID string }) (*matchResolver, error) {
	item, err := r.loadMatch(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, usecase.NotFoundf(usecase.MsgMatchNotFound)
	}
	return item, nil
}

func (r *Resolver) Standings(ctx context.Context) ([]*teamStatisticsResolver, error) {
	items, err := r.services.Statistics.Standings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*teamStatisticsResolver, 0, len(items))
	for _, item := range items {
		out = append(out, &teamStatisticsResolver{root: r, stats: item})
	}
	return out, nil
}

func (r *Resolver) TopScorers(ctx context.Context, args struct{ Limit *int32 }) ([]*playerStatisticsResolver, error) {
	items, err := r.services.Statistics.TopScorers(ctx, optionalInt(args.Limit))
	if err != nil {
		return nil, err
	}
	out := make([]*playerStatisticsResolver, 0, len(items))
	for _, item := range items {
		out = append(out, &playerStatisticsResolver{root: r, stats: item})
	}
	return out, nil
}

func (r *Resolver) AfricanPlayers(ctx context.Context) ([]*playerResolver, error) {
	items, err := r.services.Players.ListAfrican(ctx)
	if err != nil {
		return nil, err
	}
	return r.players(items), nil
}
