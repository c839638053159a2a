package wire

import (
	"encoding/json"
	"fmt"

	"bazaar/internal/card"
	"bazaar/internal/game"
)

// playerWire is the on-the-wire shape of a PlayerState:
// {"wallet":[...], "score":int}. Owned cards are optional and omitted on
// the way out; an incoming "cards" field, if present, is honored.
type playerWire struct {
	Wallet []string          `json:"wallet"`
	Score  int               `json:"score"`
	Cards  []json.RawMessage `json:"cards,omitempty"`
}

// MarshalPlayer renders a PlayerState as its wire form.
func MarshalPlayer(p game.PlayerState) ([]byte, error) {
	colors := make([]string, 0, p.Wallet.Total())
	for _, col := range p.Wallet.ToSlice() {
		colors = append(colors, string(col))
	}
	return json.Marshal(playerWire{Wallet: colors, Score: p.Score})
}

// UnmarshalPlayer parses the wire form of a PlayerState. actorName is
// supplied by the caller since the wire form carries no identity — player
// identity is rebound by position/actor spec order at deserialization time.
func UnmarshalPlayer(data []byte, actorName string) (game.PlayerState, error) {
	var w playerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return game.PlayerState{}, fmt.Errorf("wire: invalid player state: %w", err)
	}
	if w.Score < 0 {
		return game.PlayerState{}, fmt.Errorf("wire: player score must be >= 0, got %d", w.Score)
	}
	walletJSON, err := json.Marshal(w.Wallet)
	if err != nil {
		return game.PlayerState{}, err
	}
	wallet, err := UnmarshalCollection(walletJSON)
	if err != nil {
		return game.PlayerState{}, err
	}
	p := game.NewPlayer(actorName).WithWallet(wallet).WithScore(w.Score)
	for _, raw := range w.Cards {
		c, err := UnmarshalCard(raw)
		if err != nil {
			return game.PlayerState{}, err
		}
		p = p.AddCard(c)
	}
	return p, nil
}

// gameStateWire is the on-the-wire shape of a GameState:
// {"bank":[...], "visibles":[...], "cards":[...], "players":[...]} where
// "cards" is the invisible deck.
type gameStateWire struct {
	Bank     []string          `json:"bank"`
	Visibles []json.RawMessage `json:"visibles"`
	Cards    []json.RawMessage `json:"cards"`
	Players  []json.RawMessage `json:"players"`
}

// MarshalGameState renders a GameState as its wire form. Equations are not
// part of GameState's own wire form (they are delivered to agents
// separately at setup, per §3); callers that need them serialize
// separately via MarshalEquations.
func MarshalGameState(s game.State) ([]byte, error) {
	bank := make([]string, 0, s.Bank.Total())
	for _, col := range s.Bank.ToSlice() {
		bank = append(bank, string(col))
	}

	visibles := make([]json.RawMessage, len(s.Visibles))
	for i, c := range s.Visibles {
		m, err := MarshalCard(c)
		if err != nil {
			return nil, err
		}
		visibles[i] = m
	}

	invisibleCards := s.Invisible.Cards()
	cards := make([]json.RawMessage, len(invisibleCards))
	for i, c := range invisibleCards {
		m, err := MarshalCard(c)
		if err != nil {
			return nil, err
		}
		cards[i] = m
	}

	players := make([]json.RawMessage, len(s.Players))
	for i, p := range s.Players {
		m, err := MarshalPlayer(p)
		if err != nil {
			return nil, err
		}
		players[i] = m
	}

	return json.Marshal(gameStateWire{Bank: bank, Visibles: visibles, Cards: cards, Players: players})
}

// UnmarshalGameState parses the wire form of a GameState. actorNames binds
// each positional player entry to its actor, in order; len(actorNames)
// must equal the number of serialized players.
func UnmarshalGameState(data []byte, actorNames []string) (game.State, error) {
	var w gameStateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return game.State{}, fmt.Errorf("wire: invalid game state: %w", err)
	}
	if len(w.Players) != len(actorNames) {
		return game.State{}, fmt.Errorf("wire: %d players in state but %d actor names given", len(w.Players), len(actorNames))
	}

	bankJSON, err := json.Marshal(w.Bank)
	if err != nil {
		return game.State{}, err
	}
	bank, err := UnmarshalCollection(bankJSON)
	if err != nil {
		return game.State{}, err
	}

	visCards, err := unmarshalCardList(w.Visibles)
	if err != nil {
		return game.State{}, err
	}
	invCards, err := unmarshalCardList(w.Cards)
	if err != nil {
		return game.State{}, err
	}

	players := make([]game.PlayerState, len(w.Players))
	for i, raw := range w.Players {
		p, err := UnmarshalPlayer(raw, actorNames[i])
		if err != nil {
			return game.State{}, err
		}
		players[i] = p
	}

	return game.State{
		Bank:      bank,
		Visibles:  visCards,
		Invisible: card.NewDeck(invCards),
		Players:   players,
	}, nil
}

func unmarshalCardList(raw []json.RawMessage) ([]card.Card, error) {
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
