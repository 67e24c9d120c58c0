package models

// TurnState tracks one player's progress through a turn
type TurnState struct {
	// RollsTaken counts rolls this turn, 0..MaxRolls
	RollsTaken int `json:"rolls_taken"`

	// Dice are the player's five dice
	Dice DiceSet `json:"dice"`

	// TieBreaker marks a single-roll tie-breaker turn
	TieBreaker bool `json:"tie_breaker"`

	// Banked is set once the turn's dice were added to the score
	Banked bool `json:"banked"`
}

// RollsRemaining returns how many rolls are left this turn
func (t *TurnState) RollsRemaining() int {
	if t.Banked {
		return 0
	}
	return MaxRolls - t.RollsTaken
}

// HasRolled reports whether the turn has produced dice that can be banked
func (t *TurnState) HasRolled() bool {
	if t.TieBreaker {
		return t.RollsTaken == MaxRolls
	}
	return t.RollsTaken > 0
}
