package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/diceroller/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetMatchStartMessage returns the announcement for a new match
	GetMatchStartMessage(ctx context.Context, input *GetMatchStartMessageInput) (*GetMatchStartMessageOutput, error)

	// GetRollResultMessage returns a message for one of the human's rolls
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetComputerMessage narrates a computer roll or bank
	GetComputerMessage(ctx context.Context, input *GetComputerMessageInput) (*GetComputerMessageOutput, error)

	// GetOutcomeMessage returns a message for the result of a round
	GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
