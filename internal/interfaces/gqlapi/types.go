package gqlapi

import (
	"context"

	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
	"github.com/riskibarqy/sports-league/internal/interfaces/gqlapi/dataloaders"
	"github.com/riskibarqy/sports-league/internal/usecase"
)

const transferDateLayout = "2006-01-02T15:04:05.000Z"

func (r *Resolver) loadTeam(ctx context.Context, teamID string) (*teamResolver, error) {
	item, err := dataloaders.Load(ctx, r.loadersFor(ctx).Team, teamID)
	if err != nil || item == nil {
		return nil, err
	}
	return &teamResolver{root: r, team: *item}, nil
}

func (r *Resolver) loadPlayer(ctx context.Context, playerID string) (*playerResolver, error) {
	item, err := dataloaders.Load(ctx, r.loadersFor(ctx).Player, playerID)
	if err != nil || item == nil {
		return nil, err
	}
	return &playerResolver{root: r, player: *item}, nil
}

func (r *Resolver) loadMatch(ctx context.Context, matchID string) (*matchResolver, error) {
	item, err := dataloaders.Load(ctx, r.loadersFor(ctx).Match, matchID)
	if err != nil || item == nil {
		return nil, err
	}
	return &matchResolver{root: r, match: *item}, nil
}

func (r *Resolver) teams(items []team.Team) []*teamResolver {
	out := make([]*teamResolver, 0, len(items))
	for _, item := range items {
		out = append(out, &teamResolver{root: r, team: item})
	}
	return out
}

func (r *Resolver) players(items []player.Player) []*playerResolver {
	out := make([]*playerResolver, 0, len(items))
	for _, item := range items {
		out = append(out, &playerResolver{root: r, player: item})
	}
	return out
}

func (r *Resolver) matches(items []match.Match) []*matchResolver {
	out := make([]*matchResolver, 0, len(items))
	for _, item := range items {
		out = append(out, &matchResolver{root: r, match: item})
	}
	return out
}

type teamResolver struct {
	root *Resolver
	team team.Team
}

func (t *teamResolver) ID() string           { return t.team.ID }
func (t *teamResolver) Name() string         { return t.team.Name }
func (t *teamResolver) City() string         { return t.team.City }
func (t *teamResolver) FoundedYear() int32   { return int32(t.team.FoundedYear) }
func (t *teamResolver) Coach() string        { return t.team.Coach }
func (t *teamResolver) MarketValue() float64 { return t.team.MarketValue.InexactFloat64() }

// Squad resolves the roster through the player loader. Ids of deleted
// players are skipped.
func (t *teamResolver) Squad(ctx context.Context) ([]*playerResolver, error) {
	items, err := dataloaders.LoadMany(ctx, t.root.loadersFor(ctx).Player, t.team.Roster)
	if err != nil {
		return nil, err
	}
	out := make([]*playerResolver, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, &playerResolver{root: t.root, player: *item})
		}
	}
	return out, nil
}

func (t *teamResolver) Players(ctx context.Context) ([]*playerResolver, error) {
	items, err := t.root.services.Teams.Players(ctx, t.team.ID)
	if err != nil {
		return nil, err
	}
	return t.root.players(items), nil
}

func (t *teamResolver) HomeMatches(ctx context.Context) ([]*matchResolver, error) {
	items, err := t.root.services.Teams.HomeMatches(ctx, t.team.ID)
	if err != nil {
		return nil, err
	}
	return t.root.matches(items), nil
}

func (t *teamResolver) AwayMatches(ctx context.Context) ([]*matchResolver, error) {
	items, err := t.root.services.Teams.AwayMatches(ctx, t.team.ID)
	if err != nil {
		return nil, err
	}
	return t.root.matches(items), nil
}

func (t *teamResolver) Statistics(ctx context.Context) (*teamStatisticsResolver, error) {
	stats, err := dataloaders.Load(ctx, t.root.loadersFor(ctx).TeamStats, t.team.ID)
	if err != nil || stats == nil {
		return nil, err
	}
	return &teamStatisticsResolver{root: t.root, stats: *stats}, nil
}

type playerResolver struct {
	root   *Resolver
	player player.Player
}

func (p *playerResolver) ID() string            { return p.player.ID }
func (p *playerResolver) Name() string          { return p.player.Name }
func (p *playerResolver) Age() int32            { return int32(p.player.Age) }
func (p *playerResolver) Position() string      { return string(p.player.Position) }
func (p *playerResolver) TeamID() string        { return p.player.TeamID }
func (p *playerResolver) IsAfricanPlayer() bool { return p.player.IsAfricanPlayer }
func (p *playerResolver) MarketValue() float64  { return p.player.MarketValue.InexactFloat64() }

// JerseyNumber is null for players registered without one.
func (p *playerResolver) JerseyNumber() *int32 {
	if p.player.JerseyNumber == 0 {
		return nil
	}
	n := int32(p.player.JerseyNumber)
	return &n
}

func (p *playerResolver) Nationality() *string {
	return nonEmpty(p.player.Nationality)
}

func (p *playerResolver) Team(ctx context.Context) (*teamResolver, error) {
	return p.root.loadTeam(ctx, p.player.TeamID)
}

func (p *playerResolver) Statistics(ctx context.Context) (*playerStatisticsResolver, error) {
	stats, err := dataloaders.Load(ctx, p.root.loadersFor(ctx).PlayerStats, p.player.ID)
	if err != nil || stats == nil {
		return nil, err
	}
	return &playerStatisticsResolver{root: p.root, stats: *stats}, nil
}

// Matches lists the matches with at least one event by the player.
func (p *playerResolver) Matches(ctx context.Context) ([]*matchResolver, error) {
	items, err := p.root.services.Players.Matches(ctx, p.player.ID)
	if err != nil {
		return nil, err
	}
	return p.root.matches(items), nil
}

type matchResolver struct {
	root  *Resolver
	match match.Match
}

func (m *matchResolver) ID() string         { return m.match.ID }
func (m *matchResolver) HomeTeamID() string { return m.match.HomeTeamID }
func (m *matchResolver) AwayTeamID() string { return m.match.AwayTeamID }
func (m *matchResolver) Date() string       { return m.match.Date }
func (m *matchResolver) Location() string   { return m.match.Location }
func (m *matchResolver) Status() string     { return string(m.match.Status) }

func (m *matchResolver) Score() *matchScoreResolver {
	if m.match.Score == nil {
		return nil
	}
	return &matchScoreResolver{root: m.root, score: *m.match.Score}
}

func (m *matchResolver) HomeTeam(ctx context.Context) (*teamResolver, error) {
	return m.root.loadTeam(ctx, m.match.HomeTeamID)
}

func (m *matchResolver) AwayTeam(ctx context.Context) (*teamResolver, error) {
	return m.root.loadTeam(ctx, m.match.AwayTeamID)
}

func (m *matchResolver) Events(ctx context.Context) ([]*matchEventResolver, error) {
	items, err := m.root.services.Matches.Events(ctx, m.match.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*matchEventResolver, 0, len(items))
	for _, item := range items {
		out = append(out, &matchEventResolver{root: m.root, event: item})
	}
	return out, nil
}

type matchScoreResolver struct {
	root  *Resolver
	score match.Score
}

func (s *matchScoreResolver) Home() int32 { return int32(s.score.Home) }
func (s *matchScoreResolver) Away() int32 { return int32(s.score.Away) }

// Winner is null on a draw.
func (s *matchScoreResolver) Winner(ctx context.Context) (*teamResolver, error) {
	if s.score.WinnerTeamID == "" {
		return nil, nil
	}
	return s.root.loadTeam(ctx, s.score.WinnerTeamID)
}

type matchEventResolver struct {
	root  *Resolver
	event match.Event
}

func (e *matchEventResolver) ID() string           { return e.event.ID }
func (e *matchEventResolver) MatchID() string      { return e.event.MatchID }
func (e *matchEventResolver) Type() string         { return string(e.event.Type) }
func (e *matchEventResolver) Minute() int32        { return int32(e.event.Minute) }
func (e *matchEventResolver) PlayerID() *string    { return nonEmpty(e.event.PlayerID) }
func (e *matchEventResolver) Description() *string { return nonEmpty(e.event.Description) }

func (e *matchEventResolver) Player(ctx context.Context) (*playerResolver, error) {
	if !e.event.HasPlayer() {
		return nil, nil
	}
	return e.root.loadPlayer(ctx, e.event.PlayerID)
}

type playerStatisticsResolver struct {
	root  *Resolver
	stats playerstats.Statistics
}

func (s *playerStatisticsResolver) PlayerID() string     { return s.stats.PlayerID }
func (s *playerStatisticsResolver) MatchesPlayed() int32 { return int32(s.stats.MatchesPlayed) }
func (s *playerStatisticsResolver) Goals() int32         { return int32(s.stats.Goals) }
func (s *playerStatisticsResolver) Assists() int32       { return int32(s.stats.Assists) }
func (s *playerStatisticsResolver) YellowCards() int32   { return int32(s.stats.YellowCards) }
func (s *playerStatisticsResolver) RedCards() int32      { return int32(s.stats.RedCards) }

func (s *playerStatisticsResolver) Player(ctx context.Context) (*playerResolver, error) {
	return s.root.loadPlayer(ctx, s.stats.PlayerID)
}

type teamStatisticsResolver struct {
	root  *Resolver
	stats teamstats.Statistics
}

func (s *teamStatisticsResolver) TeamID() string       { return s.stats.TeamID }
func (s *teamStatisticsResolver) MatchesPlayed() int32 { return int32(s.stats.MatchesPlayed) }
func (s *teamStatisticsResolver) Wins() int32          { return int32(s.stats.Wins) }
func (s *teamStatisticsResolver) Draws() int32         { return int32(s.stats.Draws) }
func (s *teamStatisticsResolver) Losses() int32        { return int32(s.stats.Losses) }
func (s *teamStatisticsResolver) GoalsFor() int32      { return int32(s.stats.GoalsFor) }
func (s *teamStatisticsResolver) GoalsAgainst() int32  { return int32(s.stats.GoalsAgainst) }

func (s *teamStatisticsResolver) Team(ctx context.Context) (*teamResolver, error) {
	return s.root.loadTeam(ctx, s.stats.TeamID)
}

type transferResultResolver struct {
	root    *Resolver
	receipt usecase.TransferReceipt
}

func (t *transferResultResolver) Player() *playerResolver {
	return &playerResolver{root: t.root, player: t.receipt.Player}
}

func (t *transferResultResolver) FromTeam() *teamResolver {
	return &teamResolver{root: t.root, team: t.receipt.FromTeam}
}

func (t *transferResultResolver) ToTeam() *teamResolver {
	return &teamResolver{root: t.root, team: t.receipt.ToTeam}
}

func (t *transferResultResolver) TransferFee() float64 {
	return t.receipt.TransferFee.InexactFloat64()
}

func (t *transferResultResolver) TransferDate() string {
	return t.receipt.TransferDate.UTC().Format(transferDateLayout)
}
