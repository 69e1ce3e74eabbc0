package player

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Position is the on-field role of a player.
type Position string

const (
	PositionForward    Position = "FORWARD"
	PositionMidfielder Position = "MIDFIELDER"
	PositionDefender   Position = "DEFENDER"
	PositionGoalkeeper Position = "GOALKEEPER"
)

var AllPositions = map[Position]struct{}{
	PositionForward:    {},
	PositionMidfielder: {},
	PositionDefender:   {},
	PositionGoalkeeper: {},
}

func (p Position) Valid() bool {
	_, ok := AllPositions[p]
	return ok
}

var africanNationalities = []string{"Nigeria", "Ghana", "Kenya", "South Africa", "Egypt"}

// IsAfricanNationality reports whether nationality is in the fixed allow-list
// used to flag African players at creation time.
func IsAfricanNationality(nationality string) bool {
	return slices.Contains(africanNationalities, nationality)
}

// Player is an athlete registered to exactly one team.
type Player struct {
	ID           string
	Name         string
	Age          int
	Position     Position
	TeamID       string
	JerseyNumber int
	Nationality  string
	// IsAfricanPlayer is derived when the player is created and is not
	// recomputed when the nationality changes later.
	IsAfricanPlayer bool
	MarketValue     decimal.Decimal
}

// Patch carries the fields of a partial update. Nil fields are left unchanged.
type Patch struct {
	Name         *string
	Nationality  *string
	Age          *int
	Position     *Position
	JerseyNumber *int
	TeamID       *string
}

func (p Patch) Apply(pl *Player) {
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.Nationality != nil {
		pl.Nationality = *p.Nationality
	}
	if p.Age != nil {
		pl.Age = *p.Age
	}
	if p.Position != nil {
		pl.Position = *p.Position
	}
	if p.JerseyNumber != nil {
		pl.JerseyNumber = *p.JerseyNumber
	}
	if p.TeamID != nil {
		pl.TeamID = *p.TeamID
	}
}

// Filter narrows a player listing. Empty fields match everything.
type Filter struct {
	TeamID   string
	Position Position
}

func (f Filter) Match(p Player) bool {
	if f.TeamID != "" && p.TeamID != f.TeamID {
		return false
	}
	if f.Position != "" && p.Position != f.Position {
		return false
	}
	return true
}
