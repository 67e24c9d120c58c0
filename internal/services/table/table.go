// Package table drives a match the way a player at the table sees it: the
// computer rolls after every human roll, and once the human banks the
// computer finishes its turn and the round is refereed.
package table

import (
	"context"
	"errors"

	"github.com/KirkDiggler/diceroller/internal/common/obslog"
	"github.com/KirkDiggler/diceroller/internal/models"
	"github.com/KirkDiggler/diceroller/internal/services/match"
	"github.com/KirkDiggler/diceroller/internal/services/messaging"
	"go.uber.org/zap"
)

var (
	ErrNilConfig           = errors.New("config cannot be nil")
	ErrNilMatchService     = errors.New("match service cannot be nil")
	ErrNilMessagingService = errors.New("messaging service cannot be nil")
)

// Config holds the dependencies of a Table
type Config struct {
	MatchService     match.Service
	MessagingService messaging.Service
	Logger           *zap.Logger
}

// Table runs player actions against the match service and narrates them
type Table struct {
	matches  match.Service
	messages messaging.Service
	logger   *zap.Logger
}

// Report is what a player action produced
type Report struct {
	Match *models.Match

	// Lines narrate the action in order
	Lines []string

	// Evaluated is set when the action ended a round
	Evaluated bool
	Outcome   models.Outcome

	// Title is the outcome headline when Evaluated
	Title string

	// Tally is set when the match was decided
	Tally *models.WinTally
}

// New creates a Table
func New(cfg *Config) (*Table, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.MatchService == nil {
		return nil, ErrNilMatchService
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	logger := cfg.Logger
	if logger == nil {
		logger = obslog.L()
	}

	return &Table{
		matches:  cfg.MatchService,
		messages: cfg.MessagingService,
		logger:   logger.Named("table"),
	}, nil
}

// Start creates a match and announces it
func (t *Table) Start(ctx context.Context, input *match.CreateMatchInput, playerName string) (*Report, error) {
	out, err := t.matches.CreateMatch(ctx, input)
	if err != nil {
		return nil, err
	}

	report := &Report{Match: out.Match}

	msg, err := t.messages.GetMatchStartMessage(ctx, &messaging.GetMatchStartMessageInput{
		PlayerName:  playerName,
		TargetScore: out.Match.TargetScore,
		Mode:        out.Match.Mode,
	})
	if err != nil {
		return nil, err
	}
	report.Lines = append(report.Lines, msg.Message)

	return report, nil
}

// Roll rolls the human's dice, lets the computer keep pace and finishes the
// round when the human has no rolls left
func (t *Table) Roll(ctx context.Context, matchID, playerName string) (*Report, error) {
	human, err := t.matches.HumanRoll(ctx, &match.HumanRollInput{MatchID: matchID})
	if err != nil {
		return nil, err
	}

	report := &Report{Match: human.Match}

	msg, err := t.messages.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: playerName,
		Dice:       human.Match.HumanTurn.Dice.Values(),
		RollNumber: human.RollNumber,
		TieBreaker: human.Match.HumanTurn.TieBreaker,
	})
	if err != nil {
		return nil, err
	}
	report.Lines = append(report.Lines, msg.Message)

	computer, err := t.matches.ComputerRoll(ctx, &match.ComputerRollInput{MatchID: matchID})
	if err != nil {
		return nil, err
	}
	report.Match = computer.Match

	event := messaging.ComputerEventRerolled
	switch {
	case computer.RollNumber == 1 || computer.Match.ComputerTurn.TieBreaker:
		event = messaging.ComputerEventFirstRoll
	case len(computer.Rerolled) == 0:
		event = messaging.ComputerEventKept
	}
	if err := t.narrateComputer(ctx, report, &messaging.GetComputerMessageInput{
		Event:         event,
		Dice:          computer.Match.ComputerTurn.Dice.Values(),
		RerolledCount: len(computer.Rerolled),
	}); err != nil {
		return nil, err
	}

	if !human.MustBank {
		return report, nil
	}
	return t.finishRound(ctx, report, matchID, playerName)
}

// Hold toggles one of the human's dice
func (t *Table) Hold(ctx context.Context, matchID string, dieIndex int) (*Report, error) {
	out, err := t.matches.HumanHold(ctx, &match.HumanHoldInput{
		MatchID:  matchID,
		DieIndex: dieIndex,
	})
	if err != nil {
		return nil, err
	}
	return &Report{Match: out.Match}, nil
}

// Bank banks the human's dice and finishes the round
func (t *Table) Bank(ctx context.Context, matchID, playerName string) (*Report, error) {
	out, err := t.matches.HumanBank(ctx, &match.HumanBankInput{MatchID: matchID})
	if errors.Is(err, models.ErrTurnBanked) {
		// a round interrupted after the human banked is picked up where it stopped
		current, getErr := t.matches.GetMatch(ctx, &match.GetMatchInput{MatchID: matchID})
		if getErr != nil {
			return nil, getErr
		}
		t.logger.Info("resuming_round", zap.String("match_id", matchID))
		return t.finishRound(ctx, &Report{Match: current.Match}, matchID, playerName)
	}
	if err != nil {
		return nil, err
	}

	report := &Report{Match: out.Match}
	return t.finishRound(ctx, report, matchID, playerName)
}

func (t *Table) finishRound(ctx context.Context, report *Report, matchID, playerName string) (*Report, error) {
	if !report.Match.HumanTurn.Banked {
		out, err := t.matches.HumanBank(ctx, &match.HumanBankInput{MatchID: matchID})
		if err != nil {
			return nil, err
		}
		report.Match = out.Match
	}

	if !report.Match.ComputerTurn.Banked {
		computer, err := t.matches.ComputerTurn(ctx, &match.ComputerTurnInput{MatchID: matchID})
		if err != nil {
			return nil, err
		}
		report.Match = computer.Match

		if err := t.narrateComputer(ctx, report, &messaging.GetComputerMessageInput{
			Event: messaging.ComputerEventBanked,
			Dice:  computer.Match.ComputerTurn.Dice.Values(),
			Total: computer.Total,
		}); err != nil {
			return nil, err
		}
	}

	eval, err := t.matches.EvaluateMatch(ctx, &match.EvaluateMatchInput{MatchID: matchID})
	if err != nil {
		return nil, err
	}
	report.Match = eval.Match
	report.Evaluated = true
	report.Outcome = eval.Outcome
	report.Tally = eval.Tally

	msg, err := t.messages.GetOutcomeMessage(ctx, &messaging.GetOutcomeMessageInput{
		PlayerName:    playerName,
		Outcome:       eval.Outcome,
		HumanTotal:    eval.Match.Human.TotalScore,
		ComputerTotal: eval.Match.Computer.TotalScore,
		TargetScore:   eval.Match.TargetScore,
	})
	if err != nil {
		return nil, err
	}
	report.Title = msg.Title
	report.Lines = append(report.Lines, msg.Message)

	return report, nil
}

func (t *Table) narrateComputer(ctx context.Context, report *Report, input *messaging.GetComputerMessageInput) error {
	msg, err := t.messages.GetComputerMessage(ctx, input)
	if err != nil {
		return err
	}
	report.Lines = append(report.Lines, msg.Message)
	return nil
}

// Tally returns a player's cumulative wins
func (t *Table) Tally(ctx context.Context, playerID string) (*models.WinTally, error) {
	out, err := t.matches.GetWinTally(ctx, &match.GetWinTallyInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	return out.Tally, nil
}

// Explain turns err into a line for the player
func (t *Table) Explain(ctx context.Context, err error) string {
	out, msgErr := t.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		t.logger.Warn("error_message_failed", zap.Error(msgErr))
		return err.Error()
	}
	return out.Message
}
