package equation

import "bazaar/internal/pebble"

// Legal reports whether directed trade d can be executed against wallet
// and bank: its consume side must be a subset of wallet and its produce
// side a subset of bank.
func (d Directed) Legal(wallet, bank pebble.Collection) bool {
	return d.Consume.SubsetOf(wallet) && d.Produce.SubsetOf(bank)
}

// Apply executes directed trade d against wallet and bank, returning the
// updated pair. ok is false and the inputs are returned unchanged if the
// trade is not legal.
func (d Directed) Apply(wallet, bank pebble.Collection) (newWallet, newBank pebble.Collection, ok bool) {
	if !d.Legal(wallet, bank) {
		return wallet, bank, false
	}
	newWallet = wallet.Sub(d.Consume).Add(d.Produce)
	newBank = bank.Sub(d.Produce).Add(d.Consume)
	return newWallet, newBank, true
}

// TradableDirections returns every directed form of eq that is currently
// legal against wallet and bank — zero, one, or both directions.
func (e Equation) TradableDirections(wallet, bank pebble.Collection) []Directed {
	var out []Directed
	for _, d := range e.Directions() {
		if d.Legal(wallet, bank) {
			out = append(out, d)
		}
	}
	return out
}

// IsDirectionOf reports whether d is one of eq's two directed forms.
func (e Equation) IsDirectionOf(d Directed) bool {
	for _, candidate := range e.Directions() {
		if candidate.Consume.Equal(d.Consume) && candidate.Produce.Equal(d.Produce) {
			return true
		}
	}
	return false
}
