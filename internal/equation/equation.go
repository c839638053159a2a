// Package equation implements Bazaar's pebble-conversion rules: the
// undirected Equation value type, its directed trade form, and the
// per-game Set of equations dealt at setup.
package equation

import (
	"fmt"
	"math/rand"

	"bazaar/internal/pebble"
)

// MinSideSize and MaxSideSize bound each side of an equation.
const (
	MinSideSize = 1
	MaxSideSize = 4
)

// Equation is an unordered pair of nonempty pebble collections with
// disjoint color sets. It is undirected by default: LHS and RHS are just
// "the two sides," and equality ignores which side is which.
type Equation struct {
	LHS pebble.Collection
	RHS pebble.Collection
}

// New validates and builds an Equation from its two sides.
func New(lhs, rhs pebble.Collection) (Equation, error) {
	eq := Equation{LHS: lhs, RHS: rhs}
	if err := eq.validate(); err != nil {
		return Equation{}, err
	}
	return eq, nil
}

func (e Equation) validate() error {
	if e.LHS.IsEmpty() || e.RHS.IsEmpty() {
		return fmt.Errorf("equation: sides must be nonempty")
	}
	if e.LHS.Total() > MaxSideSize || e.RHS.Total() > MaxSideSize {
		return fmt.Errorf("equation: sides must have at most %d pebbles", MaxSideSize)
	}
	for _, c := range e.LHS.Colors() {
		if e.RHS.Count(c) > 0 {
			return fmt.Errorf("equation: sides must not share color %s", c)
		}
	}
	return nil
}

// Directed is one consumption direction of an Equation: Consume is spent
// from the wallet, Produce is added to it (and the reverse happens to the
// bank).
type Directed struct {
	Consume pebble.Collection
	Produce pebble.Collection
}

// Directions returns the equation's two directed forms, LHS→RHS and
// RHS→LHS.
func (e Equation) Directions() [2]Directed {
	return [2]Directed{
		{Consume: e.LHS, Produce: e.RHS},
		{Consume: e.RHS, Produce: e.LHS},
	}
}

// Equal reports equation equality ignoring direction: {a,b} == {b,a}.
func (e Equation) Equal(other Equation) bool {
	sameWay := e.LHS.Equal(other.LHS) && e.RHS.Equal(other.RHS)
	swapped := e.LHS.Equal(other.RHS) && e.RHS.Equal(other.LHS)
	return sameWay || swapped
}

// Less gives equations a total order: compare the smaller side first (by
// Collection.Less), canonicalizing LHS/RHS by that same order so an
// equation and its swapped form compare equal.
func (e Equation) Less(other Equation) bool {
	a1, a2 := e.canonical()
	b1, b2 := other.canonical()
	if !a1.Equal(b1) {
		return a1.Less(b1)
	}
	return a2.Less(b2)
}

func (e Equation) canonical() (small, large pebble.Collection) {
	if e.LHS.Less(e.RHS) {
		return e.LHS, e.RHS
	}
	return e.RHS, e.LHS
}

// Hash returns a direction-independent key suitable for set/map dedup.
func (e Equation) Hash() string {
	small, large := e.canonical()
	return small.Hash() + "|" + large.Hash()
}

// Set is the fixed collection of equations dealt for one game.
type Set struct {
	equations []Equation
}

// NewSet wraps a slice of equations as a Set.
func NewSet(eqs []Equation) Set {
	return Set{equations: eqs}
}

// All returns the equations in the set, in dealt order.
func (s Set) All() []Equation {
	return s.equations
}

// GenerateRandom produces n equations with disjoint-side sides drawn from
// rng, rejecting duplicates (by Hash) until n unique ones are generated.
func GenerateRandom(rng *rand.Rand, n int) Set {
	seen := make(map[string]bool, n)
	out := make([]Equation, 0, n)
	for len(out) < n {
		lhsSize := 1 + rng.Intn(MaxSideSize)
		rhsSize := 1 + rng.Intn(MaxSideSize)
		lhs := pebble.GenerateRandom(rng, lhsSize)
		rhs := disjointRandom(rng, rhsSize, lhs)
		eq, err := New(lhs, rhs)
		if err != nil {
			continue
		}
		h := eq.Hash()
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, eq)
	}
	return NewSet(out)
}

// disjointRandom draws a random collection of n pebbles whose colors avoid
// every color present in avoid.
func disjointRandom(rng *rand.Rand, n int, avoid pebble.Collection) pebble.Collection {
	var available []pebble.Color
	for _, c := range pebble.All() {
		if avoid.Count(c) == 0 {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return pebble.Collection{}
	}
	picked := make([]pebble.Color, n)
	for i := range picked {
		picked[i] = available[rng.Intn(len(available))]
	}
	return pebble.NewCollection(picked...)
}
