package match

import (
	"errors"

	"github.com/KirkDiggler/diceroller/internal/models"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchByChannelInput struct {
	ChannelID string
}

type DeleteMatchInput struct {
	MatchID string
}

type GetActiveMatchesInput struct {
}

type GetActiveMatchesOutput struct {
	Matches []*models.Match
}
