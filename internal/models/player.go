package models

// Player holds a running score across the turns of a match
type Player struct {
	// TotalScore is the sum of every banked turn. It never decreases.
	TotalScore int `json:"total_score"`
}

// AddScore adds the sum of values to the total. Values must be die faces;
// on a bad value the score is left untouched.
func (p *Player) AddScore(values []int) error {
	sum := 0
	for _, v := range values {
		if !ValidFace(v) {
			return ErrDieValueOutOfRange
		}
		sum += v
	}

	p.TotalScore += sum
	return nil
}
