package match

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/diceroller/internal/common/clock"
	"github.com/KirkDiggler/diceroller/internal/common/obslog"
	"github.com/KirkDiggler/diceroller/internal/common/uuid"
	"github.com/KirkDiggler/diceroller/internal/dice"
	"github.com/KirkDiggler/diceroller/internal/models"
	matchRepo "github.com/KirkDiggler/diceroller/internal/repositories/match"
	tallyRepo "github.com/KirkDiggler/diceroller/internal/repositories/tally"
	"github.com/KirkDiggler/diceroller/internal/services/referee"
	"github.com/KirkDiggler/diceroller/internal/services/strategy"
	"github.com/KirkDiggler/diceroller/internal/services/turn"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	// mu serializes read-modify-write of matches; interactions arrive concurrently
	mu sync.Mutex

	matchRepo     matchRepo.Repository
	tallyRepo     tallyRepo.Repository
	turns         *turn.Controller
	coin          dice.Coin
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}
	if cfg.TallyRepo == nil {
		return nil, ErrNilTallyRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Coin == nil {
		return nil, ErrNilCoin
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	turns, err := turn.New(cfg.DiceRoller)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = obslog.L()
	}

	return &service{
		matchRepo:     cfg.MatchRepo,
		tallyRepo:     cfg.TallyRepo,
		turns:         turns,
		coin:          cfg.Coin,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.Named("match"),
	}, nil
}

// CreateMatch starts round 1 of a new match
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}
	if input.TargetScore <= 0 {
		return nil, models.ErrInvalidTargetScore
	}
	if !input.Mode.Valid() {
		return nil, models.ErrInvalidMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.ChannelID != "" {
		existing, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
			ChannelID: input.ChannelID,
		})
		switch {
		case err == nil && !existing.Status.IsCompleted():
			return nil, ErrMatchAlreadyExists
		case err == nil:
			if err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{MatchID: existing.ID}); err != nil {
				return nil, fmt.Errorf("failed to replace finished match: %w", err)
			}
		case !errors.Is(err, matchRepo.ErrMatchNotFound):
			return nil, fmt.Errorf("failed to check channel: %w", err)
		}
	}

	now := s.clock.Now()
	m := &models.Match{
		ID:          s.uuidGenerator.NewUUID(),
		ChannelID:   input.ChannelID,
		PlayerID:    input.PlayerID,
		TargetScore: input.TargetScore,
		Mode:        input.Mode,
		Status:      models.MatchStatusActive,
		Outcome:     models.OutcomeOngoing,
		Round:       1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.turns.StartTurn(&m.HumanTurn)
	s.turns.StartTurn(&m.ComputerTurn)

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: m}); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	s.logger.Info("match_created",
		zap.String("match_id", m.ID),
		zap.String("channel_id", m.ChannelID),
		zap.String("player_id", m.PlayerID),
		zap.Int("target", m.TargetScore),
		zap.String("mode", string(m.Mode)),
	)

	return &CreateMatchOutput{
		Match: m,
	}, nil
}

// GetMatch returns a match by ID
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, fmt.Errorf("%w: match ID cannot be empty", models.ErrInvalidInput)
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	return &GetMatchOutput{
		Match: m,
	}, nil
}

// GetMatchByChannel returns the match bound to a channel
func (s *service) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, fmt.Errorf("%w: channel ID cannot be empty", models.ErrInvalidInput)
	}

	m, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return &GetMatchByChannelOutput{
		Match: m,
	}, nil
}

// HumanRoll rolls the human's free dice
func (s *service) HumanRoll(ctx context.Context, input *HumanRollInput) (*HumanRollOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, fmt.Errorf("%w: match ID cannot be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadPlayableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	faces, err := s.turns.Roll(&m.HumanTurn)
	if err != nil {
		return nil, err
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Debug("human_roll",
		zap.String("match_id", m.ID),
		zap.Int("roll", m.HumanTurn.RollsTaken),
		zap.Ints("dice", m.HumanTurn.Dice.Values()),
	)

	return &HumanRollOutput{
		Match:      m,
		Faces:      faces,
		RollNumber: m.HumanTurn.RollsTaken,
		MustBank:   s.turns.MustBank(&m.HumanTurn),
	}, nil
}

// HumanHold toggles the hold flag of one of the human's dice
func (s *service) HumanHold(ctx context.Context, input *HumanHoldInput) (*HumanHoldOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, fmt.Errorf("%w: match ID cannot be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadPlayableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if err := s.turns.Hold(&m.HumanTurn, input.DieIndex); err != nil {
		return nil, err
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	return &HumanHoldOutput{
		Match: m,
	}, nil
}

// HumanBank adds the human's dice to their total
func (s *service) HumanBank(ctx context.Context, input *HumanBankInput) (*HumanBankOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, fmt.Errorf("%w: match ID cannot be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadPlayableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	total, err := s.turns.Bank(&m.HumanTurn, &m.Human)
	if err != nil {
		return nil, err
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Debug("human_bank",
		zap.String("match_id", m.ID),
		zap.Int("total", total),
	)

	return &HumanBankOutput{
		Match: m,
		Total: total,
	}, nil
}

// ComputerRoll plays a single computer roll
func (s *service) ComputerRoll(ctx context.Context, input *ComputerRollInput) (*ComputerRollOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, fmt.Errorf("%w: match ID cannot be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadPlayableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	rerolled, err := s.computerStep(m)
	if err != nil {
		return nil, err
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Debug("computer_roll",
		zap.String("match_id", m.ID),
		zap.Int("roll", m.ComputerTurn.RollsTaken),
		zap.Ints("rerolled", rerolled),
		zap.Ints("dice", m.ComputerTurn.Dice.Values()),
	)

	return &ComputerRollOutput{
		Match:      m,
		Rerolled:   rerolled,
		RollNumber: m.ComputerTurn.RollsTaken,
		MustBank:   s.turns.MustBank(&m.ComputerTurn),
	}, nil
}

// ComputerTurn plays the computer's remaining rolls and banks
func (s *service) ComputerTurn(ctx context.Context, input *ComputerTurnInput) (*ComputerTurnOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, fmt.Errorf("%w: match ID cannot be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadPlayableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	if m.ComputerTurn.Banked {
		return nil, models.ErrTurnBanked
	}

	rolls := 0
	for m.ComputerTurn.RollsTaken < models.MaxRolls {
		if _, err := s.computerStep(m); err != nil {
			return nil, err
		}
		rolls++
	}

	total, err := s.turns.Bank(&m.ComputerTurn, &m.Computer)
	if err != nil {
		return nil, err
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("computer_turn",
		zap.String("match_id", m.ID),
		zap.Int("rolls", rolls),
		zap.Ints("dice", m.ComputerTurn.Dice.Values()),
		zap.Int("total", total),
	)

	return &ComputerTurnOutput{
		Match: m,
		Total: total,
		Rolls: rolls,
	}, nil
}

// computerStep plays one roll of the computer's turn. After the first roll
// the strategy chooses which dice go back to the table.
func (s *service) computerStep(m *models.Match) ([]int, error) {
	t := &m.ComputerTurn
	if t.Banked {
		return nil, models.ErrTurnBanked
	}

	rerolled := []int{0, 1, 2, 3, 4}
	if t.RollsTaken > 0 && !t.TieBreaker {
		strat, err := strategy.New(m.Mode, s.coin)
		if err != nil {
			return nil, err
		}
		decision := strat.Decide(t.Dice)
		decision.Apply(&t.Dice)
		rerolled = decision.Rerolled()
	}

	if _, err := s.turns.Roll(t); err != nil {
		return nil, err
	}
	return rerolled, nil
}

// EvaluateMatch referees a round once both players banked
func (s *service) EvaluateMatch(ctx context.Context, input *EvaluateMatchInput) (*EvaluateMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, fmt.Errorf("%w: match ID cannot be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadPlayableMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	if !m.RoundBanked() {
		return nil, models.ErrRoundIncomplete
	}

	result := referee.Evaluate(m.Human.TotalScore, m.Computer.TotalScore, m.TargetScore)
	m.Outcome = result.Outcome

	var tally *models.WinTally
	switch result.Outcome {
	case models.OutcomeOngoing:
		m.Status = models.MatchStatusActive
		m.Round++
		s.turns.StartTurn(&m.HumanTurn)
		s.turns.StartTurn(&m.ComputerTurn)
	case models.OutcomeTie:
		m.Status = models.MatchStatusTieBreaker
		m.Round++
		m.TieBreakerRounds++
		s.turns.StartTieBreaker(&m.HumanTurn)
		s.turns.StartTieBreaker(&m.ComputerTurn)
	default:
		m.Status = models.MatchStatusCompleted
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	// the tally is recorded only once the completed match is stored
	if m.Status.IsCompleted() && m.PlayerID != "" {
		tally, err = s.tallyRepo.RecordResult(ctx, &tallyRepo.RecordResultInput{
			PlayerID: m.PlayerID,
			Delta:    result.Delta,
		})
		if err != nil {
			s.logger.Error("tally_record_failed",
				zap.String("match_id", m.ID),
				zap.String("player_id", m.PlayerID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to record result: %w", err)
		}
	}

	s.logger.Info("match_evaluated",
		zap.String("match_id", m.ID),
		zap.String("outcome", string(result.Outcome)),
		zap.Int("human", m.Human.TotalScore),
		zap.Int("computer", m.Computer.TotalScore),
		zap.Int("round", m.Round),
	)

	return &EvaluateMatchOutput{
		Match:   m,
		Outcome: result.Outcome,
		Delta:   result.Delta,
		Tally:   tally,
	}, nil
}

// GetWinTally returns a player's cumulative wins
func (s *service) GetWinTally(ctx context.Context, input *GetWinTallyInput) (*GetWinTallyOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, fmt.Errorf("%w: player ID cannot be empty", models.ErrInvalidInput)
	}

	tally, err := s.tallyRepo.GetTally(ctx, &tallyRepo.GetTallyInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	return &GetWinTallyOutput{
		Tally: tally,
	}, nil
}

// AbandonMatch deletes a match without touching the tally
func (s *service) AbandonMatch(ctx context.Context, input *AbandonMatchInput) (*AbandonMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, fmt.Errorf("%w: match ID cannot be empty", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to delete match: %w", err)
	}

	s.logger.Info("match_abandoned", zap.String("match_id", input.MatchID))

	return &AbandonMatchOutput{}, nil
}

func (s *service) loadMatch(ctx context.Context, matchID string) (*models.Match, error) {
	m, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// loadPlayableMatch loads a match and rejects completed ones
func (s *service) loadPlayableMatch(ctx context.Context, matchID string) (*models.Match, error) {
	m, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status.IsCompleted() {
		return nil, models.ErrMatchCompleted
	}
	return m, nil
}

func (s *service) saveMatch(ctx context.Context, m *models.Match) error {
	m.UpdatedAt = s.clock.Now()
	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: m}); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}
