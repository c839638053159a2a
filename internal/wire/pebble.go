// Package wire implements the bit-exact persisted JSON forms of §6: the
// wire representations of every entity the core's external interfaces
// accept or emit, independent of the in-memory value types they marshal
// to/from.
package wire

import (
	"encoding/json"
	"fmt"

	"bazaar/internal/pebble"
)

// MarshalCollection renders a Collection as its wire form: a flat array of
// lowercase color strings, e.g. ["red","red","blue"].
func MarshalCollection(c pebble.Collection) ([]byte, error) {
	colors := make([]string, 0, c.Total())
	for _, col := range c.ToSlice() {
		colors = append(colors, string(col))
	}
	if colors == nil {
		colors = []string{}
	}
	return json.Marshal(colors)
}

// UnmarshalCollection parses the wire form of a Collection.
func UnmarshalCollection(data []byte) (pebble.Collection, error) {
	var colors []string
	if err := json.Unmarshal(data, &colors); err != nil {
		return pebble.Collection{}, fmt.Errorf("wire: invalid pebble collection: %w", err)
	}
	parsed := make([]pebble.Color, len(colors))
	for i, s := range colors {
		col, err := pebble.ParseColor(s)
		if err != nil {
			return pebble.Collection{}, err
		}
		parsed[i] = col
	}
	return pebble.NewCollection(parsed...), nil
}
