package match

// Status is the lifecycle state of a match.
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// AcceptsScore reports whether a final score may be submitted in this state.
func (s Status) AcceptsScore() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// Match is a fixture between two distinct teams.
type Match struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	// Date is an ISO-8601 calendar date; range filters compare it lexically.
	Date     string
	Location string
	Status   Status
	Score    *Score
}

// Score is the final result of a completed match.
type Score struct {
	Home int
	Away int
	// WinnerTeamID is empty on a draw.
	WinnerTeamID string
}

// NewScore builds a score and derives the winner from the goal counts.
func NewScore(m Match, home, away int) Score {
	score := Score{Home: home, Away: away}
	switch {
	case home > away:
		score.WinnerTeamID = m.HomeTeamID
	case away > home:
		score.WinnerTeamID = m.AwayTeamID
	}
	return score
}

func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Filter narrows a match listing. Empty fields match everything and the date
// bounds are inclusive.
type Filter struct {
	TeamID   string
	Status   Status
	DateFrom string
	DateTo   string
}

func (f Filter) Match(m Match) bool {
	if f.TeamID != "" && !m.Involves(f.TeamID) {
		return false
	}
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if f.DateFrom != "" && m.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && m.Date > f.DateTo {
		return false
	}
	return true
}
