package team

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Team is a club that players belong to and matches are scheduled between.
type Team struct {
	ID          string
	Name        string
	City        string
	FoundedYear int
	Coach       string
	// Roster holds player ids added through the squad flow, in signing order.
	Roster      []string
	MarketValue decimal.Decimal
}

// Patch carries the fields of a partial update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	City        *string
	FoundedYear *int
	Coach       *string
}

func (p Patch) Apply(t *Team) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.City != nil {
		t.City = *p.City
	}
	if p.FoundedYear != nil {
		t.FoundedYear = *p.FoundedYear
	}
	if p.Coach != nil {
		t.Coach = *p.Coach
	}
}

func (t Team) HasRosterEntry(playerID string) bool {
	return slices.Contains(t.Roster, playerID)
}

// AddToRoster appends playerID unless already present. The backing array is
// never shared with the previous value.
func (t *Team) AddToRoster(playerID string) {
	if t.HasRosterEntry(playerID) {
		return
	}
	roster := make([]string, 0, len(t.Roster)+1)
	roster = append(roster, t.Roster...)
	t.Roster = append(roster, playerID)
}

func (t *Team) RemoveFromRoster(playerID string) {
	if !t.HasRosterEntry(playerID) {
		return
	}
	roster := make([]string, 0, len(t.Roster))
	for _, id := range t.Roster {
		if id != playerID {
			roster = append(roster, id)
		}
	}
	t.Roster = roster
}
