package messaging

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/diceroller/internal/dice"
	"github.com/KirkDiggler/diceroller/internal/models"
)

var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilRoller = errors.New("roller cannot be nil")
)

// ErrorKind names the catalog entry used for a failure
type ErrorKind string

const (
	ErrorKindInvalidState   ErrorKind = "invalid_state"
	ErrorKindInvalidInput   ErrorKind = "invalid_input"
	ErrorKindNoRolls        ErrorKind = "no_rolls"
	ErrorKindNothingRolled  ErrorKind = "nothing_rolled"
	ErrorKindTurnBanked     ErrorKind = "turn_banked"
	ErrorKindMatchCompleted ErrorKind = "match_completed"
	ErrorKindMatchExists    ErrorKind = "match_exists"
	ErrorKindMatchNotFound  ErrorKind = "match_not_found"
	ErrorKindGeneric        ErrorKind = "generic"
)

// kindMatchers maps service errors to catalog entries. The most specific
// errors come first since they also match their kind.
var kindMatchers = []struct {
	target error
	kind   ErrorKind
}{
	{models.ErrNoRollsRemaining, ErrorKindNoRolls},
	{models.ErrNothingRolled, ErrorKindNothingRolled},
	{models.ErrTurnBanked, ErrorKindTurnBanked},
	{models.ErrMatchCompleted, ErrorKindMatchCompleted},
	{models.ErrInvalidState, ErrorKindInvalidState},
	{models.ErrInvalidInput, ErrorKindInvalidInput},
}

// service implements the Service interface
type service struct {
	catalog *Catalog
	roller  dice.Roller

	extra map[error]ErrorKind
}

// NewService creates a new messaging service
func NewService(cfg *ServiceConfig) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	catalog, err := NewCatalog(cfg.OverrideDir)
	if err != nil {
		return nil, err
	}

	extra := make(map[error]ErrorKind, len(cfg.Errors))
	for err, kind := range cfg.Errors {
		extra[err] = kind
	}

	return &service{
		catalog: catalog,
		roller:  cfg.Roller,
		extra:   extra,
	}, nil
}

// pick renders a random alternative of key
func (s *service) pick(key string, data any) (string, error) {
	n := s.catalog.Lines(key)
	if n == 0 {
		return "", fmt.Errorf("template not found: %s", key)
	}
	return s.catalog.Render(key, s.roller.Roll(n)-1, data)
}

// GetMatchStartMessage returns the announcement for a new match
func (s *service) GetMatchStartMessage(ctx context.Context, input *GetMatchStartMessageInput) (*GetMatchStartMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	modeLine, err := s.catalog.Render("match.mode."+string(input.Mode), 0, nil)
	if err != nil {
		return nil, err
	}

	msg, err := s.pick("match.start", map[string]any{
		"Player":   playerName(input.PlayerName),
		"Target":   input.TargetScore,
		"ModeLine": modeLine,
	})
	if err != nil {
		return nil, err
	}

	return &GetMatchStartMessageOutput{
		Message: msg,
	}, nil
}

// GetRollResultMessage returns a message for one of the human's rolls
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := "roll.reroll"
	switch {
	case input.TieBreaker:
		key = "roll.tie_breaker"
	case input.RollNumber <= 1:
		key = "roll.first"
	case input.RollNumber >= models.MaxRolls:
		key = "roll.last"
	}

	msg, err := s.pick(key, map[string]any{
		"Player":    playerName(input.PlayerName),
		"Dice":      FormatDice(input.Dice),
		"Sum":       sum(input.Dice),
		"Reroll":    input.RollNumber - 1,
		"RollsLeft": models.MaxRolls - input.RollNumber,
	})
	if err != nil {
		return nil, err
	}

	return &GetRollResultMessageOutput{
		Message: msg,
		Tone:    ToneNeutral,
	}, nil
}

// GetComputerMessage narrates a computer roll or bank
func (s *service) GetComputerMessage(ctx context.Context, input *GetComputerMessageInput) (*GetComputerMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	msg, err := s.pick("computer."+string(input.Event), map[string]any{
		"Dice":  FormatDice(input.Dice),
		"Sum":   sum(input.Dice),
		"Count": input.RerolledCount,
		"Total": input.Total,
	})
	if err != nil {
		return nil, err
	}

	return &GetComputerMessageOutput{
		Message: msg,
	}, nil
}

// GetOutcomeMessage returns a message for the result of a round
func (s *service) GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	var tone MessageTone
	switch input.Outcome {
	case models.OutcomeHumanWin:
		title, tone = "You Win!", ToneCelebration
	case models.OutcomeComputerWin:
		title, tone = "Computer Wins", ToneSarcastic
	case models.OutcomeTie:
		title, tone = "Tie!", ToneFunny
	case models.OutcomeOngoing:
		title, tone = "Next Round", ToneNeutral
	default:
		return nil, fmt.Errorf("unknown outcome %q", input.Outcome)
	}

	msg, err := s.pick("outcome."+string(input.Outcome), map[string]any{
		"Player":   playerName(input.PlayerName),
		"Human":    input.HumanTotal,
		"Computer": input.ComputerTotal,
		"Target":   input.TargetScore,
	})
	if err != nil {
		return nil, err
	}

	return &GetOutcomeMessageOutput{
		Title:   title,
		Message: msg,
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	msg, err := s.pick("error."+string(s.classify(input.Err)), nil)
	if err != nil {
		return nil, err
	}

	return &GetErrorMessageOutput{
		Message: msg,
		Tone:    ToneFunny,
	}, nil
}

func (s *service) classify(err error) ErrorKind {
	if err == nil {
		return ErrorKindGeneric
	}
	for target, kind := range s.extra {
		if errors.Is(err, target) {
			return kind
		}
	}
	for _, m := range kindMatchers {
		if errors.Is(err, m.target) {
			return m.kind
		}
	}
	return ErrorKindGeneric
}

// FormatDice renders dice as "[1] [4] [5] [2] [6]"
func FormatDice(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "[" + strconv.Itoa(v) + "]"
	}
	return strings.Join(parts, " ")
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func playerName(name string) string {
	if name == "" {
		return "Player"
	}
	return name
}
