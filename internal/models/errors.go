package models

import "fmt"

// GameError is a custom error type for rule violations
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Error kinds. Every rule violation wraps exactly one of these.
const (
	// ErrInvalidState means the operation is not allowed at this point of the turn or match
	ErrInvalidState GameError = "invalid state"

	// ErrInvalidInput means an argument is out of range
	ErrInvalidInput GameError = "invalid input"
)

var (
	ErrNoRollsRemaining   = fmt.Errorf("%w: no rolls remaining this turn", ErrInvalidState)
	ErrNothingRolled      = fmt.Errorf("%w: nothing rolled this turn", ErrInvalidState)
	ErrTurnBanked         = fmt.Errorf("%w: turn already banked", ErrInvalidState)
	ErrMatchCompleted     = fmt.Errorf("%w: match is completed", ErrInvalidState)
	ErrRoundIncomplete    = fmt.Errorf("%w: both players must bank before evaluation", ErrInvalidState)
	ErrDieIndexOutOfRange = fmt.Errorf("%w: die index out of range", ErrInvalidInput)
	ErrDieValueOutOfRange = fmt.Errorf("%w: die value out of range", ErrInvalidInput)
	ErrInvalidTargetScore = fmt.Errorf("%w: target score must be positive", ErrInvalidInput)
	ErrInvalidMode        = fmt.Errorf("%w: unknown strategy mode", ErrInvalidInput)
)
