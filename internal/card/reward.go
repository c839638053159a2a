package card

// MaxRemainingForReward caps the "remaining pebbles after purchase" lookup
// key at 3 — any wallet with 3 or more pebbles left over scores the same
// as exactly 3.
const MaxRemainingForReward = 3

// rewardTable maps (remaining pebbles after purchase, capped at 3, happy
// face) to the score a purchase earns.
var rewardTable = map[int]map[bool]int{
	0: {false: 5, true: 8},
	1: {false: 3, true: 5},
	2: {false: 2, true: 3},
	3: {false: 1, true: 2},
}

// Reward looks up the purchase score for a card given how many pebbles
// remain in the wallet after paying for it.
func Reward(remaining int, happy bool) int {
	if remaining > MaxRemainingForReward {
		remaining = MaxRemainingForReward
	}
	if remaining < 0 {
		remaining = 0
	}
	return rewardTable[remaining][happy]
}
