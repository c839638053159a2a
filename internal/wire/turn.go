package wire

import (
	"encoding/json"
	"fmt"

	"bazaar/internal/game"
)

// turnActiveWire is the "active" sub-object of a TurnState wire form.
type turnActiveWire struct {
	Wallet []string `json:"wallet"`
	Score  int      `json:"score"`
}

// turnStateWire is the on-the-wire shape of a TurnState:
// {"bank":[...], "cards":[...], "active":{"wallet":[...],"score":int}, "scores":[int,...]}.
type turnStateWire struct {
	Bank   []string          `json:"bank"`
	Cards  []json.RawMessage `json:"cards"`
	Active turnActiveWire    `json:"active"`
	Scores []int             `json:"scores"`
}

// MarshalTurnState renders a TurnState as its wire form.
func MarshalTurnState(t game.TurnState) ([]byte, error) {
	bank := make([]string, 0, t.Bank.Total())
	for _, col := range t.Bank.ToSlice() {
		bank = append(bank, string(col))
	}
	activeWallet := make([]string, 0, t.ActiveWallet.Total())
	for _, col := range t.ActiveWallet.ToSlice() {
		activeWallet = append(activeWallet, string(col))
	}
	cards := make([]json.RawMessage, len(t.Visibles))
	for i, c := range t.Visibles {
		m, err := MarshalCard(c)
		if err != nil {
			return nil, err
		}
		cards[i] = m
	}
	scores := t.PlayerScores
	if scores == nil {
		scores = []int{}
	}
	return json.Marshal(turnStateWire{
		Bank:  bank,
		Cards: cards,
		Active: turnActiveWire{
			Wallet: activeWallet,
			Score:  t.ActiveScore,
		},
		Scores: scores,
	})
}

// UnmarshalTurnState parses the wire form of a TurnState.
func UnmarshalTurnState(data []byte) (game.TurnState, error) {
	var w turnStateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return game.TurnState{}, fmt.Errorf("wire: invalid turn state: %w", err)
	}

	bankJSON, err := json.Marshal(w.Bank)
	if err != nil {
		return game.TurnState{}, err
	}
	bank, err := UnmarshalCollection(bankJSON)
	if err != nil {
		return game.TurnState{}, err
	}

	activeJSON, err := json.Marshal(w.Active.Wallet)
	if err != nil {
		return game.TurnState{}, err
	}
	activeWallet, err := UnmarshalCollection(activeJSON)
	if err != nil {
		return game.TurnState{}, err
	}

	visibles, err := unmarshalCardList(w.Cards)
	if err != nil {
		return game.TurnState{}, err
	}

	return game.TurnState{
		Bank:         bank,
		ActiveWallet: activeWallet,
		ActiveScore:  w.Active.Score,
		PlayerScores: w.Scores,
		Visibles:     visibles,
	}, nil
}
