// Package turn implements the roll/hold/bank state machine of a single turn.
//
// A turn moves through NotStarted (0 rolls) → Rolled1 → Rolled2 → Rolled3.
// The controller never banks on its own: once MustBank reports true the
// caller is expected to call Bank.
package turn

import (
	"errors"

	"github.com/KirkDiggler/diceroller/internal/dice"
	"github.com/KirkDiggler/diceroller/internal/models"
)

// ErrNilDiceRoller is returned by New without a roller
var ErrNilDiceRoller = errors.New("dice roller cannot be nil")

// Controller applies turn rules to a TurnState
type Controller struct {
	roller dice.Roller
}

// New creates a turn controller that rolls with roller
func New(roller dice.Roller) (*Controller, error) {
	if roller == nil {
		return nil, ErrNilDiceRoller
	}
	return &Controller{roller: roller}, nil
}

// StartTurn resets a turn to its initial state. Dice values are kept for display.
func (c *Controller) StartTurn(turn *models.TurnState) {
	turn.Dice.ReleaseAll()
	turn.RollsTaken = 0
	turn.TieBreaker = false
	turn.Banked = false
}

// StartTieBreaker prepares a turn that allows exactly one fresh roll
func (c *Controller) StartTieBreaker(turn *models.TurnState) {
	turn.Dice.ReleaseAll()
	turn.RollsTaken = models.MaxRolls - 1
	turn.TieBreaker = true
	turn.Banked = false
}

// Roll rolls the dice that are free this turn and returns the new faces
// in die order. The first roll, and a tie-breaker roll, rolls all five dice.
func (c *Controller) Roll(turn *models.TurnState) ([]int, error) {
	if turn.Banked {
		return nil, models.ErrTurnBanked
	}
	if turn.RollsTaken >= models.MaxRolls {
		return nil, models.ErrNoRollsRemaining
	}

	if turn.RollsTaken == 0 || turn.TieBreaker {
		turn.Dice.ReleaseAll()
	}

	free := make([]int, 0, models.DiceCount)
	for i, die := range turn.Dice {
		if !die.Held {
			free = append(free, i)
		}
	}

	faces := []int{}
	if len(free) > 0 {
		faces = c.roller.RollDice(len(free))
		for n, idx := range free {
			turn.Dice[idx].Value = faces[n]
		}
	}

	// holds only last for one roll
	turn.Dice.ReleaseAll()
	turn.RollsTaken++

	return faces, nil
}

// Hold toggles the held flag of one die. The call is ignored before the
// first roll and during a tie-breaker.
func (c *Controller) Hold(turn *models.TurnState, index int) error {
	if index < 0 || index >= models.DiceCount {
		return models.ErrDieIndexOutOfRange
	}
	if turn.Banked || turn.TieBreaker || turn.RollsTaken == 0 {
		return nil
	}

	turn.Dice[index].Held = !turn.Dice[index].Held
	return nil
}

// Bank adds the current dice to player's score and closes the turn.
// It returns the player's new total.
func (c *Controller) Bank(turn *models.TurnState, player *models.Player) (int, error) {
	if turn.Banked {
		return 0, models.ErrTurnBanked
	}
	if !turn.HasRolled() {
		return 0, models.ErrNothingRolled
	}

	if err := player.AddScore(turn.Dice.Values()); err != nil {
		return 0, err
	}

	turn.Dice.ReleaseAll()
	turn.RollsTaken = 0
	turn.TieBreaker = false
	turn.Banked = true

	return player.TotalScore, nil
}

// MustBank reports whether the turn has used every roll and has to be banked
func (c *Controller) MustBank(turn *models.TurnState) bool {
	return !turn.Banked && turn.RollsTaken >= models.MaxRolls
}
