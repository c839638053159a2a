package pebble

import "math/rand"

// BankColorCount is the starting count of each color in a fresh bank.
const BankColorCount = 20

// InitBank builds the starting bank: 20 pebbles of each of the five
// colors, 100 total.
func InitBank() Collection {
	c := Collection{counts: make(map[Color]int, len(All()))}
	for _, col := range All() {
		c.counts[col] = BankColorCount
	}
	return c
}

// DrawSmallest removes and returns the smallest-color pebble present in
// bank (canonical order: red < white < blue < green < yellow), along with
// the resulting bank. ok is false iff bank is empty, in which case bank is
// returned unchanged.
func DrawSmallest(bank Collection) (col Color, next Collection, ok bool) {
	for _, c := range All() {
		if bank.Count(c) > 0 {
			return c, bank.Sub(NewCollection(c)), true
		}
	}
	return "", bank, false
}

// GenerateRandom returns a Collection of n pebbles drawn uniformly from the
// five colors using rng.
func GenerateRandom(rng *rand.Rand, n int) Collection {
	cols := All()
	picked := make([]Color, n)
	for i := range picked {
		picked[i] = cols[rng.Intn(len(cols))]
	}
	return NewCollection(picked...)
}
