package tally

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/diceroller/internal/models"
)

type memoryRepository struct {
	mu      sync.Mutex
	tallies map[string]models.WinTally
}

// NewMemory creates an in-memory tally repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		tallies: make(map[string]models.WinTally),
	}
}

func (r *memoryRepository) RecordResult(ctx context.Context, input *RecordResultInput) (*models.WinTally, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.tallies[input.PlayerID]
	t.Computer += input.Delta.Computer
	t.Human += input.Delta.Human
	r.tallies[input.PlayerID] = t

	return &t, nil
}

func (r *memoryRepository) GetTally(ctx context.Context, input *GetTallyInput) (*models.WinTally, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.tallies[input.PlayerID]
	return &t, nil
}
