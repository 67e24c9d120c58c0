package tally

import "github.com/KirkDiggler/diceroller/internal/models"

// RecordResultInput contains the parameters for recording a match result
type RecordResultInput struct {
	PlayerID string
	Delta    models.WinDelta
}

// GetTallyInput contains the parameters for fetching a tally
type GetTallyInput struct {
	PlayerID string
}
