package teamstats

// Statistics are the league totals of one team. There is exactly one row per
// live team.
type Statistics struct {
	TeamID        string
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
}

func Zero(teamID string) Statistics {
	return Statistics{TeamID: teamID}
}

// ApplyResult adds one played match with the given goal counts.
func (s *Statistics) ApplyResult(scored, conceded int) {
	s.addResult(scored, conceded, 1)
}

// RevertResult removes a result previously added with ApplyResult.
func (s *Statistics) RevertResult(scored, conceded int) {
	s.addResult(scored, conceded, -1)
}

func (s *Statistics) addResult(scored, conceded, sign int) {
	s.MatchesPlayed += sign
	s.GoalsFor += sign * scored
	s.GoalsAgainst += sign * conceded
	switch {
	case scored > conceded:
		s.Wins += sign
	case scored < conceded:
		s.Losses += sign
	default:
		s.Draws += sign
	}
}
