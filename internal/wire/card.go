package wire

import (
	"encoding/json"
	"fmt"

	"bazaar/internal/card"
)

// cardWire is the on-the-wire shape of a Card: {"pebbles":[...], "face?":bool}.
type cardWire struct {
	Pebbles []string `json:"pebbles"`
	Face    bool     `json:"face?"`
}

// MarshalCard renders a Card as its wire form.
func MarshalCard(c card.Card) ([]byte, error) {
	colors := make([]string, 0, c.Pebbles.Total())
	for _, col := range c.Pebbles.ToSlice() {
		colors = append(colors, string(col))
	}
	return json.Marshal(cardWire{Pebbles: colors, Face: c.Happy})
}

// UnmarshalCard parses the wire form of a Card.
func UnmarshalCard(data []byte) (card.Card, error) {
	var w cardWire
	if err := json.Unmarshal(data, &w); err != nil {
		return card.Card{}, fmt.Errorf("wire: invalid card: %w", err)
	}
	pebblesJSON, err := json.Marshal(w.Pebbles)
	if err != nil {
		return card.Card{}, err
	}
	pebbles, err := UnmarshalCollection(pebblesJSON)
	if err != nil {
		return card.Card{}, err
	}
	return card.New(pebbles, w.Face)
}

// MarshalCards renders a slice of cards as its wire form: [card, ...].
func MarshalCards(cards []card.Card) ([]byte, error) {
	raw := make([]json.RawMessage, len(cards))
	for i, c := range cards {
		m, err := MarshalCard(c)
		if err != nil {
			return nil, err
		}
		raw[i] = m
	}
	if raw == nil {
		raw = []json.RawMessage{}
	}
	return json.Marshal(raw)
}

// UnmarshalCards parses the wire form of a slice of cards.
func UnmarshalCards(data []byte) ([]card.Card, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wire: invalid cards list: %w", err)
	}
	out := make([]card.Card, len(raw))
	for i, r := range raw {
		c, err := UnmarshalCard(r)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
