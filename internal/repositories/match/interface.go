package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/diceroller/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/diceroller/internal/models"
)

// Repository defines the interface for match persistence
type Repository interface {
	// SaveMatch persists a match and refreshes its indexes
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetMatchByChannel retrieves the match bound to a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error)

	// DeleteMatch removes a match and its indexes
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// GetActiveMatches retrieves every match that is not completed
	GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error)
}
