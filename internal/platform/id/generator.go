package id

import (
	"strconv"
	"sync/atomic"
)

// Generator creates opaque IDs for newly inserted records.
type Generator interface {
	NewID() (string, error)
}

// SequenceGenerator hands out stringified, strictly increasing integers.
// Deleted ids are never handed out again.
type SequenceGenerator struct {
	last atomic.Int64
}

// NewSequenceGenerator returns a generator whose first id is start+1.
func NewSequenceGenerator(start int64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.last.Store(start)
	return g
}

// NewSequenceGeneratorAfter seeds the sequence past the highest numeric id in
// existing. Non-numeric ids are ignored.
func NewSequenceGeneratorAfter(existing []string) *SequenceGenerator {
	var maxID int64
	for _, raw := range existing {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return NewSequenceGenerator(maxID)
}

func (g *SequenceGenerator) NewID() (string, error) {
	return strconv.FormatInt(g.last.Add(1), 10), nil
}
