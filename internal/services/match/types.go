package match

import (
	"github.com/KirkDiggler/diceroller/internal/common/clock"
	"github.com/KirkDiggler/diceroller/internal/common/uuid"
	"github.com/KirkDiggler/diceroller/internal/dice"
	"github.com/KirkDiggler/diceroller/internal/models"
	matchRepo "github.com/KirkDiggler/diceroller/internal/repositories/match"
	tallyRepo "github.com/KirkDiggler/diceroller/internal/repositories/tally"
	"go.uber.org/zap"
)

// Config holds the dependencies of the match service
type Config struct {
	MatchRepo matchRepo.Repository
	TallyRepo tallyRepo.Repository

	// DiceRoller rolls for both players
	DiceRoller dice.Roller

	// Coin drives the random computer strategy
	Coin dice.Coin

	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional, defaults to obslog.L()
	Logger *zap.Logger
}

type CreateMatchInput struct {
	ChannelID   string
	PlayerID    string
	TargetScore int
	Mode        models.Mode
}

type CreateMatchOutput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchOutput struct {
	Match *models.Match
}

type GetMatchByChannelInput struct {
	ChannelID string
}

type GetMatchByChannelOutput struct {
	Match *models.Match
}

type HumanRollInput struct {
	MatchID string
}

type HumanRollOutput struct {
	Match *models.Match

	// Faces are the values rolled this time, in die order
	Faces []int

	// RollNumber is 1..3 within the turn
	RollNumber int

	// MustBank is set once the human has no rolls left
	MustBank bool
}

type HumanHoldInput struct {
	MatchID  string
	DieIndex int
}

type HumanHoldOutput struct {
	Match *models.Match
}

type HumanBankInput struct {
	MatchID string
}

type HumanBankOutput struct {
	Match *models.Match
	Total int
}

type ComputerRollInput struct {
	MatchID string
}

type ComputerRollOutput struct {
	Match *models.Match

	// Rerolled lists the dice sent back to the table, empty when the
	// computer kept everything
	Rerolled []int

	RollNumber int
	MustBank   bool
}

type ComputerTurnInput struct {
	MatchID string
}

type ComputerTurnOutput struct {
	Match *models.Match
	Total int

	// Rolls is how many rolls this call played
	Rolls int
}

type EvaluateMatchInput struct {
	MatchID string
}

type EvaluateMatchOutput struct {
	Match   *models.Match
	Outcome models.Outcome
	Delta   models.WinDelta

	// Tally is the player's updated tally when the match was decided
	Tally *models.WinTally
}

type GetWinTallyInput struct {
	PlayerID string
}

type GetWinTallyOutput struct {
	Tally *models.WinTally
}

type AbandonMatchInput struct {
	MatchID string
}

type AbandonMatchOutput struct{}
