package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/diceroller/internal/services/match Service

import "context"

// Service defines the operations of a human-versus-computer match
type Service interface {
	// CreateMatch starts a new match in a channel
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// GetMatch returns a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// GetMatchByChannel returns the match bound to a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchByChannelOutput, error)

	// HumanRoll rolls the human's free dice
	HumanRoll(ctx context.Context, input *HumanRollInput) (*HumanRollOutput, error)

	// HumanHold toggles the hold flag of one of the human's dice
	HumanHold(ctx context.Context, input *HumanHoldInput) (*HumanHoldOutput, error)

	// HumanBank adds the human's dice to their total
	HumanBank(ctx context.Context, input *HumanBankInput) (*HumanBankOutput, error)

	// ComputerRoll plays one computer roll, keeping pace with the human
	ComputerRoll(ctx context.Context, input *ComputerRollInput) (*ComputerRollOutput, error)

	// ComputerTurn plays the computer's remaining rolls and banks
	ComputerTurn(ctx context.Context, input *ComputerTurnInput) (*ComputerTurnOutput, error)

	// EvaluateMatch referees a round once both players banked
	EvaluateMatch(ctx context.Context, input *EvaluateMatchInput) (*EvaluateMatchOutput, error)

	// GetWinTally returns a player's cumulative wins against the computer
	GetWinTally(ctx context.Context, input *GetWinTallyInput) (*GetWinTallyOutput, error)

	// AbandonMatch deletes a match without recording a result
	AbandonMatch(ctx context.Context, input *AbandonMatchInput) (*AbandonMatchOutput, error)
}
