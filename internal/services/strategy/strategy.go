// Package strategy decides which dice the computer re-rolls between rolls.
package strategy

import (
	"errors"

	"github.com/KirkDiggler/diceroller/internal/dice"
	"github.com/KirkDiggler/diceroller/internal/models"
)

// ErrNilCoin is returned when the random strategy has no coin
var ErrNilCoin = errors.New("coin cannot be nil")

// Decision is the outcome of one strategy pass
type Decision struct {
	// Reroll is false when the computer keeps every die this pass
	Reroll bool

	// Hold marks the dice kept out of the re-roll
	Hold [models.DiceCount]bool
}

// Apply copies the decision onto the dice held flags. A pass without a
// re-roll holds every die so the following roll leaves the values as they are.
func (d Decision) Apply(set *models.DiceSet) {
	for i := range set {
		set[i].Held = !d.Reroll || d.Hold[i]
	}
}

// Rerolled returns the indices the decision sends back to the table
func (d Decision) Rerolled() []int {
	if !d.Reroll {
		return nil
	}
	out := make([]int, 0, models.DiceCount)
	for i, held := range d.Hold {
		if !held {
			out = append(out, i)
		}
	}
	return out
}

// Strategy picks a re-roll decision for the current dice
type Strategy interface {
	Decide(current models.DiceSet) Decision
}

// New returns the strategy for mode
func New(mode models.Mode, coin dice.Coin) (Strategy, error) {
	switch mode {
	case models.ModeRandom:
		if coin == nil {
			return nil, ErrNilCoin
		}
		return &Random{coin: coin}, nil
	case models.ModeHeuristic:
		return &Heuristic{}, nil
	default:
		return nil, models.ErrInvalidMode
	}
}

// Random re-rolls on a coin flip and then holds each die on its own flip
type Random struct {
	coin dice.Coin
}

func (r *Random) Decide(current models.DiceSet) Decision {
	if !r.coin.Flip() {
		return Decision{}
	}

	d := Decision{Reroll: true}
	for i := range d.Hold {
		d.Hold[i] = r.coin.Flip()
	}
	return d
}

// KeepThreshold is the lowest face the heuristic keeps
const KeepThreshold = 4

// Heuristic re-rolls every die showing 1, 2 or 3 and keeps the rest
type Heuristic struct{}

func (h *Heuristic) Decide(current models.DiceSet) Decision {
	var d Decision
	for i, die := range current {
		if die.Value < KeepThreshold {
			d.Reroll = true
			continue
		}
		d.Hold[i] = true
	}
	return d
}
