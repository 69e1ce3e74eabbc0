package playerstats

import "github.com/riskibarqy/sports-league/internal/domain/match"

// Statistics are the running totals of one player. There is exactly one row
// per live player.
type Statistics struct {
	PlayerID      string
	MatchesPlayed int
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
}

func Zero(playerID string) Statistics {
	return Statistics{PlayerID: playerID}
}

// Record increments the counter matching the event type.
func (s *Statistics) Record(eventType match.EventType) {
	switch eventType {
	case match.EventGoal:
		s.Goals++
	case match.EventAssist:
		s.Assists++
	case match.EventYellowCard:
		s.YellowCards++
	case match.EventRedCard:
		s.RedCards++
	}
}
