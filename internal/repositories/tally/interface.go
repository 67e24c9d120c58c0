package tally

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/diceroller/internal/repositories/tally Repository

import (
	"context"

	"github.com/KirkDiggler/diceroller/internal/models"
)

// Repository defines the interface for the per-player win tally
type Repository interface {
	// RecordResult adds a match result delta to a player's tally
	RecordResult(ctx context.Context, input *RecordResultInput) (*models.WinTally, error)

	// GetTally retrieves a player's tally. Unknown players have a zero tally.
	GetTally(ctx context.Context, input *GetTallyInput) (*models.WinTally, error)
}
