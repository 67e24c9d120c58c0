// Package referee decides a match from the two running totals.
package referee

import "github.com/KirkDiggler/diceroller/internal/models"

// Result is the referee's verdict
type Result struct {
	Outcome models.Outcome

	// Delta is the change to the cumulative win counters
	Delta models.WinDelta
}

// Evaluate applies the decision table once both players banked a round.
//
//	human >= target, computer <  target  -> human win
//	human <  target, computer >= target  -> computer win
//	both >= target                        -> higher total wins, equal is a tie
//	neither                               -> ongoing
func Evaluate(human, computer, target int) Result {
	humanReached := human >= target
	computerReached := computer >= target

	switch {
	case humanReached && computerReached:
		switch {
		case human > computer:
			return humanWin()
		case human < computer:
			return computerWin()
		default:
			return Result{Outcome: models.OutcomeTie}
		}
	case humanReached:
		return humanWin()
	case computerReached:
		return computerWin()
	default:
		return Result{Outcome: models.OutcomeOngoing}
	}
}

func humanWin() Result {
	return Result{Outcome: models.OutcomeHumanWin, Delta: models.WinDelta{Human: 1}}
}

func computerWin() Result {
	return Result{Outcome: models.OutcomeComputerWin, Delta: models.WinDelta{Computer: 1}}
}
