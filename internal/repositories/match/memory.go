package match

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/diceroller/internal/models"
)

// memoryRepository keeps matches in process memory. Used by the terminal
// client and whenever no Redis is configured.
type memoryRepository struct {
	mu        sync.RWMutex
	byID      map[string]*models.Match
	byChannel map[string]string
}

// NewMemory creates an in-memory match repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		byID:      make(map[string]*models.Match),
		byChannel: make(map[string]string),
	}
}

func (r *memoryRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}
	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	copied := *input.Match

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[copied.ID] = &copied
	if copied.ChannelID != "" {
		r.byChannel[copied.ChannelID] = copied.ID
	}
	return nil
}

func (r *memoryRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[input.MatchID]
	if !ok {
		return nil, ErrMatchNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *memoryRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	r.mu.RLock()
	id, ok := r.byChannel[input.ChannelID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrMatchNotFound
	}

	return r.GetMatch(ctx, &GetMatchInput{MatchID: id})
}

func (r *memoryRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[input.MatchID]
	if !ok {
		return ErrMatchNotFound
	}
	delete(r.byID, m.ID)
	if r.byChannel[m.ChannelID] == m.ID {
		delete(r.byChannel, m.ChannelID)
	}
	return nil
}

func (r *memoryRepository) GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*models.Match, 0, len(r.byID))
	for _, m := range r.byID {
		if m.Status.IsCompleted() {
			continue
		}
		copied := *m
		matches = append(matches, &copied)
	}

	return &GetActiveMatchesOutput{
		Matches: matches,
	}, nil
}
