package match

// EventType classifies an in-match occurrence.
type EventType string

const (
	EventGoal       EventType = "GOAL"
	EventAssist     EventType = "ASSIST"
	EventYellowCard EventType = "YELLOW_CARD"
	EventRedCard    EventType = "RED_CARD"
)

func (t EventType) Valid() bool {
	switch t {
	case EventGoal, EventAssist, EventYellowCard, EventRedCard:
		return true
	default:
		return false
	}
}

// Event is an append-only record attached to a match.
type Event struct {
	ID          string
	MatchID     string
	Type        EventType
	Minute      int
	PlayerID    string
	Description string
}

func (e Event) HasPlayer() bool {
	return e.PlayerID != ""
}
