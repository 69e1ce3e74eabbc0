package gqlapi

import (
	"context"

	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi/dataloaders"
	"github.com/riskibarqy/sports-league/internal/usecase"
	"github.com/shopspring/decimal"
)

// committed empties the operation's loader caches after a write so the
// payload selection reads the stored state.
func (r *Resolver) committed(ctx context.Context) *dataloaders.Loaders {
	loaders := r.loadersFor(ctx)
	loaders.Reset()
	return loaders
}

type transferPlayerArgs struct {
	PlayerID    string
	FromTeamID  string
	ToTeamID    string
	TransferFee float64
}

func (r *Resolver) TransferPlayer(ctx context.Context, args transferPlayerArgs) (*transferResultResolver, error) {
	receipt, err := r.services.Transfers.Transfer(ctx, usecase.TransferPlayerInput{
		PlayerID:    args.PlayerID,
		FromTeamID:  args.FromTeamID,
		ToTeamID:    args.ToTeamID,
		TransferFee: decimal.NewFromFloat(args.TransferFee),
	})
	if err != nil {
		return nil, err
	}

	loaders := r.committed(ctx)
	dataloaders.Refresh(ctx, loaders.Player, receipt.Player.ID, receipt.Player)
	dataloaders.Refresh(ctx, loaders.Team, receipt.FromTeam.ID, receipt.FromTeam)
	dataloaders.Refresh(ctx, loaders.Team, receipt.ToTeam.ID, receipt.ToTeam)
	return &transferResultResolver{root: r, receipt: receipt}, nil
}

type addPlayerToTeamInput struct {
	Name         string
	Nationality  string
	Age          int32
	Position     player.Position
	JerseyNumber int32
	TeamID       string
	MarketValue  *float64
}

func (r *Resolver) AddPlayerToTeam(ctx context.Context, args struct{ Input addPlayerToTeamInput }) (*playerResolver, error) {
	in := args.Input
	input := usecase.AddPlayerToTeamInput{
		Name:         in.Name,
		Age:          int(in.Age),
		Position:     in.Position,
		JerseyNumber: int(in.JerseyNumber),
		Nationality:  in.Nationality,
		TeamID:       in.TeamID,
	}
	if in.MarketValue != nil {
		value := decimal.NewFromFloat(*in.MarketValue)
		input.MarketValue = &value
	}

	created, err := r.services.Players.AddToTeam(ctx, input)
	if err != nil {
		return nil, err
	}
	return r.committedPlayer(ctx, created), nil
}

type createTeamInput struct {
	Name        string
	City        string
	FoundedYear int32
	Coach       string
}

func (r *Resolver) CreateTeam(ctx context.Context, args struct{ Input createTeamInput }) (*teamResolver, error) {
	created, err := r.services.Teams.Create(ctx, usecase.CreateTeamInput{
		Name:        args.Input.Name,
		City:        args.Input.City,
		FoundedYear: int(args.Input.FoundedYear),
		Coach:       args.Input.Coach,
	})
	if err != nil {
		return nil, err
	}

	dataloaders.Refresh(ctx, r.committed(ctx).Team, created.ID, created)
	return &teamResolver{root: r, team: created}, nil
}

type updateTeamInput struct {
	Name        *string
	City        *string
	FoundedYear *int32
	Coach       *string
}

type updateTeamArgs struct {
	ID    string
	Input updateTeamInput
}

func (r *Resolver) UpdateTeam(ctx context.Context, args updateTeamArgs) (*teamResolver, error) {
	updated, err := r.services.Teams.Update(ctx, args.ID, usecase.UpdateTeamInput{
		Name:        args.Input.Name,
		City:        args.Input.City,
		FoundedYear: optionalInt(args.Input.FoundedYear),
		Coach:       args.Input.Coach,
	})
	if err != nil {
		return nil, err
	}

	dataloaders.Refresh(ctx, r.committed(ctx).Team, updated.ID, updated)
	return &teamResolver{root: r, team: updated}, nil
}

func (r *Resolver) DeleteTeam(ctx context.Context, args struct{ ID string }) (*bool, error) {
	if err := r.services.Teams.Delete(ctx, args.ID); err != nil {
		return nil, err
	}
	r.committed(ctx)
	deleted := true
	return &deleted, nil
}

type createPlayerInput struct {
	Name         string
	Nationality  string
	Age          int32
	Position     player.Position
	JerseyNumber int32
	TeamID       string
}

func (r *Resolver) CreatePlayer(ctx context.Context, args struct{ Input createPlayerInput }) (*playerResolver, error) {
	in := args.Input
	created, err := r.services.Players.Create(ctx, usecase.CreatePlayerInput{
		Name:         in.Name,
		Age:          int(in.Age),
		Position:     in.Position,
		Nationality:  in.Nationality,
		JerseyNumber: int(in.JerseyNumber),
		TeamID:       in.TeamID,
	})
	if err != nil {
		return nil, err
	}
	return r.committedPlayer(ctx, created), nil
}

type updatePlayerInput struct {
	Name         *string
	Nationality  *string
	Age          *int32
	Position     *player.Position
	JerseyNumber *int32
	TeamID       *string
}

type updatePlayerArgs struct {
	ID    string
	Input updatePlayerInput
}

func (r *Resolver) UpdatePlayer(ctx context.Context, args updatePlayerArgs) (*playerResolver, error) {
	in := args.Input
	updated, err := r.services.Players.Update(ctx, args.ID, usecase.UpdatePlayerInput{
		Name:         in.Name,
		Age:          optionalInt(in.Age),
		Position:     in.Position,
		Nationality:  in.Nationality,
		JerseyNumber: optionalInt(in.JerseyNumber),
		TeamID:       in.TeamID,
	})
	if err != nil {
		return nil, err
	}
	return r.committedPlayer(ctx, updated), nil
}

func (r *Resolver) DeletePlayer(ctx context.Context, args struct{ ID string }) (*bool, error) {
	if err := r.services.Players.Delete(ctx, args.ID); err != nil {
		return nil, err
	}
	r.committed(ctx)
	deleted := true
	return &deleted, nil
}

func (r *Resolver) committedPlayer(ctx context.Context, item player.Player) *playerResolver {
	dataloaders.Refresh(ctx, r.committed(ctx).Player, item.ID, item)
	return &playerResolver{root: r, player: item}
}

type scheduleMatchInput struct {
	HomeTeamID string
	AwayTeamID string
	Date       string
	Location   string
}

func (r *Resolver) ScheduleMatch(ctx context.Context, args struct{ Input scheduleMatchInput }) (*matchResolver, error) {
	created, err := r.services.Matches.Schedule(ctx, usecase.ScheduleMatchInput{
		HomeTeamID: args.Input.HomeTeamID,
		AwayTeamID: args.Input.AwayTeamID,
		Date:       args.Input.Date,
		Location:   args.Input.Location,
	})
	if err != nil {
		return nil, err
	}
	return r.committedMatch(ctx, created), nil
}

type updateMatchScoreArgs struct {
	ID    string
	Input struct {
		Home int32
		Away int32
	}
}

func (r *Resolver) UpdateMatchScore(ctx context.Context, args updateMatchScoreArgs) (*matchResolver, error) {
	updated, err := r.services.Matches.UpdateScore(ctx, args.ID, usecase.UpdateMatchScoreInput{
		Home: int(args.Input.Home),
		Away: int(args.Input.Away),
	})
	if err != nil {
		return nil, err
	}
	return r.committedMatch(ctx, updated), nil
}

type addMatchEventArgs struct {
	ID    string
	Input struct {
		Type        match.EventType
		Minute      int32
		PlayerID    *string
		Description *string
	}
}

func (r *Resolver) AddMatchEvent(ctx context.Context, args addMatchEventArgs) (*matchResolver, error) {
	current, err := r.services.Matches.AddEvent(ctx, args.ID, usecase.AddMatchEventInput{
		Type:        args.Input.Type,
		Minute:      int(args.Input.Minute),
		PlayerID:    args.Input.PlayerID,
		Description: args.Input.Description,
	})
	if err != nil {
		return nil, err
	}
	return r.committedMatch(ctx, current), nil
}

type updateMatchStatusArgs struct {
	ID     string
	Status match.Status
}

func (r *Resolver) UpdateMatchStatus(ctx context.Context, args updateMatchStatusArgs) (*matchResolver, error) {
	updated, err := r.services.Matches.UpdateStatus(ctx, args.ID, args.Status)
	if err != nil {
		return nil, err
	}
	return r.committedMatch(ctx, updated), nil
}

func (r *Resolver) committedMatch(ctx context.Context, item match.Match) *matchResolver {
	dataloaders.Refresh(ctx, r.committed(ctx).Match, item.ID, item)
	return &matchResolver{root: r, match: item}
}
