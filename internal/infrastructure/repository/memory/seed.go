package memory

import (
	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
)

const (
	TeamIDLions  = "1"
	TeamIDTigers = "2"
	TeamIDBears  = "3"
)

func SeedFixture() Fixture {
	return Fixture{
		Teams:       SeedTeams(),
		Players:     SeedPlayers(),
		Matches:     SeedMatches(),
		Events:      SeedMatchEvents(),
		PlayerStats: SeedPlayerStats(),
		TeamStats:   SeedTeamStats(),
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDLions, Name: "Lions", City: "New York", FoundedYear: 1990, Coach: "John Smith"},
		{ID: TeamIDTigers, Name: "Tigers", City: "Los Angeles", FoundedYear: 1985, Coach: "Mike Johnson"},
		{ID: TeamIDBears, Name: "Bears", City: "Chicago", FoundedYear: 1995, Coach: "Sarah Williams"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "1", Name: "Alex Morgan", Age: 28, Position: player.PositionForward, TeamID: TeamIDLions},
		{ID: "2", Name: "Chris Green", Age: 25, Position: player.PositionMidfielder, TeamID: TeamIDLions},
		{ID: "3", Name: "David Lee", Age: 30, Position: player.PositionDefender, TeamID: TeamIDTigers},
		{ID: "4", Name: "Emma Stone", Age: 22, Position: player.PositionGoalkeeper, TeamID: TeamIDTigers},
		{ID: "5", Name: "Frank White", Age: 27, Position: player.PositionForward, TeamID: TeamIDBears},
		{ID: "6", Name: "Chidi Okonkwo", Age: 24, Position: player.PositionMidfielder, TeamID: TeamIDLions, Nationality: "Nigeria", IsAfricanPlayer: true},
		{ID: "7", Name: "Amina Diallo", Age: 29, Position: player.PositionDefender, TeamID: TeamIDTigers, Nationality: "Ghana", IsAfricanPlayer: true},
		{ID: "8", Name: "Youssef El-Sayed", Age: 22, Position: player.PositionGoalkeeper, TeamID: TeamIDBears, Nationality: "Egypt", IsAfricanPlayer: true},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:         "1",
			HomeTeamID: TeamIDLions,
			AwayTeamID: TeamIDTigers,
			Date:       "2023-05-10",
			Location:   "Madison Square Garden",
			Status:     match.StatusCompleted,
			Score:      &match.Score{Home: 2, Away: 1, WinnerTeamID: TeamIDLions},
		},
		{
			ID:         "2",
			HomeTeamID: TeamIDBears,
			AwayTeamID: TeamIDLions,
			Date:       "2023-05-15",
			Location:   "United Center",
			Status:     match.StatusScheduled,
		},
	}
}

func SeedMatchEvents() []match.Event {
	return []match.Event{
		{ID: "1", MatchID: "1", Type: match.EventGoal, Minute: 23, PlayerID: "1", Description: "Free kick"},
		{ID: "2", MatchID: "1", Type: match.EventGoal, Minute: 45, PlayerID: "3", Description: "Penalty"},
		{ID: "3", MatchID: "1", Type: match.EventYellowCard, Minute: 67, PlayerID: "2"},
	}
}

func SeedPlayerStats() []playerstats.Statistics {
	return []playerstats.Statistics{
		{PlayerID: "1", MatchesPlayed: 5, Goals: 3, Assists: 2, YellowCards: 1},
		{PlayerID: "2", MatchesPlayed: 5, Goals: 1, Assists: 4, YellowCards: 2},
		{PlayerID: "3", MatchesPlayed: 4, Goals: 2, Assists: 1, YellowCards: 1},
		{PlayerID: "4", MatchesPlayed: 4},
		{PlayerID: "5", MatchesPlayed: 3, Goals: 1, Assists: 1, RedCards: 1},
		{PlayerID: "6", MatchesPlayed: 2, Assists: 1},
		{PlayerID: "7", MatchesPlayed: 3, Goals: 1, YellowCards: 1},
		{PlayerID: "8", MatchesPlayed: 1},
	}
}

func SeedTeamStats() []teamstats.Statistics {
	return []teamstats.Statistics{
		{TeamID: TeamIDLions, MatchesPlayed: 5, Wins: 3, Draws: 1, Losses: 1, GoalsFor: 8, GoalsAgainst: 4},
		{TeamID: TeamIDTigers, MatchesPlayed: 4, Wins: 1, Draws: 1, Losses: 2, GoalsFor: 3, GoalsAgainst: 5},
		{TeamID: TeamIDBears, MatchesPlayed: 3, Wins: 1, Losses: 2, GoalsFor: 2, GoalsAgainst: 4},
	}
}
