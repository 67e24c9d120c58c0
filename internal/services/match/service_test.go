package match

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/diceroller/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/diceroller/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/diceroller/internal/dice/mocks"
	"github.com/KirkDiggler/diceroller/internal/models"
	matchRepo "github.com/KirkDiggler/diceroller/internal/repositories/match"
	matchRepoMocks "github.com/KirkDiggler/diceroller/internal/repositories/match/mocks"
	tallyRepo "github.com/KirkDiggler/diceroller/internal/repositories/tally"
	tallyRepoMocks "github.com/KirkDiggler/diceroller/internal/repositories/tally/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type MatchServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockCoin       *diceMocks.MockCoin
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	matchRepo      matchRepo.Repository
	tallyRepo      tallyRepo.Repository
	service        Service
	ctx            context.Context

	testTime      time.Time
	testMatchID   string
	testChannelID string
	testPlayerID  string
}

func (s *MatchServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockCoin = diceMocks.NewMockCoin(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.matchRepo = matchRepo.NewMemory()
	s.tallyRepo = tallyRepo.NewMemory()
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testMatchID = "test-match-id"
	s.testChannelID = "test-channel-id"
	s.testPlayerID = "test-player-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		MatchRepo:     s.matchRepo,
		TallyRepo:     s.tallyRepo,
		DiceRoller:    s.mockDiceRoller,
		Coin:          s.mockCoin,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        zap.NewNop(),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MatchServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchServiceSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}

// seedMatch stores a match in round 1 and lets the test adjust it first
func (s *MatchServiceTestSuite) seedMatch(mode models.Mode, adjust func(m *models.Match)) *models.Match {
	m := &models.Match{
		ID:          s.testMatchID,
		ChannelID:   s.testChannelID,
		PlayerID:    s.testPlayerID,
		TargetScore: 101,
		Mode:        mode,
		Status:      models.MatchStatusActive,
		Outcome:     models.OutcomeOngoing,
		Round:       1,
		CreatedAt:   s.testTime,
		UpdatedAt:   s.testTime,
	}
	if adjust != nil {
		adjust(m)
	}
	s.Require().NoError(s.matchRepo.SaveMatch(s.ctx, &matchRepo.SaveMatchInput{Match: m}))
	return m
}

func (s *MatchServiceTestSuite) storedMatch() *models.Match {
	m, err := s.matchRepo.GetMatch(s.ctx, &matchRepo.GetMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	return m
}

func (s *MatchServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilMatchRepo)

	_, err = New(&Config{MatchRepo: s.matchRepo})
	s.ErrorIs(err, ErrNilTallyRepo)

	_, err = New(&Config{MatchRepo: s.matchRepo, TallyRepo: s.tallyRepo})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{MatchRepo: s.matchRepo, TallyRepo: s.tallyRepo, DiceRoller: s.mockDiceRoller})
	s.ErrorIs(err, ErrNilCoin)

	_, err = New(&Config{MatchRepo: s.matchRepo, TallyRepo: s.tallyRepo, DiceRoller: s.mockDiceRoller, Coin: s.mockCoin})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{MatchRepo: s.matchRepo, TallyRepo: s.tallyRepo, DiceRoller: s.mockDiceRoller, Coin: s.mockCoin, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *MatchServiceTestSuite) TestCreateMatch() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testMatchID)

	out, err := s.service.CreateMatch(s.ctx, &CreateMatchInput{
		ChannelID:   s.testChannelID,
		PlayerID:    s.testPlayerID,
		TargetScore: 101,
		Mode:        models.ModeHeuristic,
	})
	s.Require().NoError(err)

	s.Equal(s.testMatchID, out.Match.ID)
	s.Equal(1, out.Match.Round)
	s.Equal(models.MatchStatusActive, out.Match.Status)
	s.Equal(models.OutcomeOngoing, out.Match.Outcome)
	s.Zero(out.Match.Human.TotalScore)
	s.Zero(out.Match.Computer.TotalScore)
	s.Equal(3, out.Match.HumanTurn.RollsRemaining())

	byChannel, err := s.service.GetMatchByChannel(s.ctx, &GetMatchByChannelInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(s.testMatchID, byChannel.Match.ID)
}

func (s *MatchServiceTestSuite) TestCreateMatch_InvalidInput() {
	_, err := s.service.CreateMatch(s.ctx, &CreateMatchInput{TargetScore: 0, Mode: models.ModeRandom})
	s.ErrorIs(err, models.ErrInvalidInput)

	_, err = s.service.CreateMatch(s.ctx, &CreateMatchInput{TargetScore: -5, Mode: models.ModeRandom})
	s.ErrorIs(err, models.ErrInvalidTargetScore)

	_, err = s.service.CreateMatch(s.ctx, &CreateMatchInput{TargetScore: 101, Mode: "impossible"})
	s.ErrorIs(err, models.ErrInvalidInput)
}

func (s *MatchServiceTestSuite) TestCreateMatch_ChannelBusy() {
	s.seedMatch(models.ModeRandom, nil)

	_, err := s.service.CreateMatch(s.ctx, &CreateMatchInput{
		ChannelID:   s.testChannelID,
		TargetScore: 50,
		Mode:        models.ModeRandom,
	})
	s.ErrorIs(err, ErrMatchAlreadyExists)
}

func (s *MatchServiceTestSuite) TestCreateMatch_ReplacesFinishedMatch() {
	s.seedMatch(models.ModeRandom, func(m *models.Match) {
		m.Status = models.MatchStatusCompleted
	})
	s.mockUUID.EXPECT().NewUUID().Return("second-match-id")

	out, err := s.service.CreateMatch(s.ctx, &CreateMatchInput{
		ChannelID:   s.testChannelID,
		TargetScore: 50,
		Mode:        models.ModeRandom,
	})
	s.Require().NoError(err)
	s.Equal("second-match-id", out.Match.ID)

	_, err = s.service.GetMatch(s.ctx, &GetMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestGetMatch_NotFound() {
	_, err := s.service.GetMatch(s.ctx, &GetMatchInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.service.GetMatchByChannel(s.ctx, &GetMatchByChannelInput{ChannelID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestHumanTurn_ThreeRollsThenBank() {
	s.seedMatch(models.ModeRandom, nil)

	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{6, 2, 6, 1, 3})
	s.mockDiceRoller.EXPECT().RollDice(3).Return([]int{5, 4, 4})
	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{1, 1, 2, 2, 3})

	roll, err := s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(1, roll.RollNumber)
	s.False(roll.MustBank)

	for _, idx := range []int{0, 2} {
		_, err = s.service.HumanHold(s.ctx, &HumanHoldInput{MatchID: s.testMatchID, DieIndex: idx})
		s.Require().NoError(err)
	}

	roll, err = s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal([]int{5, 4, 4}, roll.Faces)
	s.Equal([]int{6, 5, 6, 4, 4}, roll.Match.HumanTurn.Dice.Values())
	s.Equal(2, roll.RollNumber)

	roll, err = s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(3, roll.RollNumber)
	s.True(roll.MustBank)

	_, err = s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.ErrorIs(err, models.ErrInvalidState)

	bank, err := s.service.HumanBank(s.ctx, &HumanBankInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(9, bank.Total)

	_, err = s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.ErrorIs(err, models.ErrTurnBanked)

	stored := s.storedMatch()
	s.True(stored.HumanTurn.Banked)
	s.Equal(9, stored.Human.TotalScore)
}

func (s *MatchServiceTestSuite) TestHumanHold_OutOfRange() {
	s.seedMatch(models.ModeRandom, nil)

	_, err := s.service.HumanHold(s.ctx, &HumanHoldInput{MatchID: s.testMatchID, DieIndex: 5})
	s.ErrorIs(err, models.ErrInvalidInput)
}

func (s *MatchServiceTestSuite) TestHumanBank_BeforeRoll() {
	s.seedMatch(models.ModeRandom, nil)

	_, err := s.service.HumanBank(s.ctx, &HumanBankInput{MatchID: s.testMatchID})
	s.ErrorIs(err, models.ErrInvalidState)
}

func (s *MatchServiceTestSuite) TestComputerRoll_RandomKeepsEverything() {
	s.seedMatch(models.ModeRandom, nil)

	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{2, 3, 4, 5, 6})
	s.mockCoin.EXPECT().Flip().Return(false)

	out, err := s.service.ComputerRoll(s.ctx, &ComputerRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal([]int{0, 1, 2, 3, 4}, out.Rerolled)

	out, err = s.service.ComputerRoll(s.ctx, &ComputerRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Empty(out.Rerolled)
	s.Equal(2, out.RollNumber)
	s.Equal([]int{2, 3, 4, 5, 6}, out.Match.ComputerTurn.Dice.Values())
	s.Zero(out.Match.ComputerTurn.Dice.HeldCount())
}

func (s *MatchServiceTestSuite) TestComputerRoll_RandomCoinPicksDice() {
	s.seedMatch(models.ModeRandom, nil)

	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{2, 3, 4, 5, 6})
	gomock.InOrder(
		s.mockCoin.EXPECT().Flip().Return(true),
		s.mockCoin.EXPECT().Flip().Return(true),
		s.mockCoin.EXPECT().Flip().Return(false),
		s.mockCoin.EXPECT().Flip().Return(true),
		s.mockCoin.EXPECT().Flip().Return(false),
		s.mockCoin.EXPECT().Flip().Return(true),
	)
	s.mockDiceRoller.EXPECT().RollDice(2).Return([]int{1, 1})

	_, err := s.service.ComputerRoll(s.ctx, &ComputerRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	out, err := s.service.ComputerRoll(s.ctx, &ComputerRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal([]int{1, 3}, out.Rerolled)
	s.Equal([]int{2, 1, 4, 1, 6}, out.Match.ComputerTurn.Dice.Values())
}

func (s *MatchServiceTestSuite) TestComputerTurn_HeuristicFinishesAndBanks() {
	s.seedMatch(models.ModeHeuristic, nil)

	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{1, 4, 5, 2, 6})
	s.mockDiceRoller.EXPECT().RollDice(2).Return([]int{6, 3})
	s.mockDiceRoller.EXPECT().RollDice(1).Return([]int{5})

	out, err := s.service.ComputerTurn(s.ctx, &ComputerTurnInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	s.Equal(3, out.Rolls)
	s.Equal([]int{6, 4, 5, 5, 6}, out.Match.ComputerTurn.Dice.Values())
	s.Equal(26, out.Total)
	s.True(out.Match.ComputerTurn.Banked)

	_, err = s.service.ComputerTurn(s.ctx, &ComputerTurnInput{MatchID: s.testMatchID})
	s.ErrorIs(err, models.ErrTurnBanked)
}

func (s *MatchServiceTestSuite) TestComputerTurn_ContinuesAfterLockstepRolls() {
	s.seedMatch(models.ModeHeuristic, nil)

	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{4, 4, 5, 5, 6})

	_, err := s.service.ComputerRoll(s.ctx, &ComputerRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	// nothing below 4, so the remaining rolls keep every die
	out, err := s.service.ComputerTurn(s.ctx, &ComputerTurnInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(2, out.Rolls)
	s.Equal(24, out.Total)
}

func (s *MatchServiceTestSuite) TestEvaluateMatch_RoundIncomplete() {
	s.seedMatch(models.ModeRandom, func(m *models.Match) {
		m.HumanTurn.Banked = true
	})

	_, err := s.service.EvaluateMatch(s.ctx, &EvaluateMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, models.ErrRoundIncomplete)
	s.ErrorIs(err, models.ErrInvalidState)
}

func (s *MatchServiceTestSuite) TestEvaluateMatch_OngoingStartsNextRound() {
	s.seedMatch(models.ModeRandom, func(m *models.Match) {
		m.Human.TotalScore = 40
		m.Computer.TotalScore = 38
		m.HumanTurn.Banked = true
		m.ComputerTurn.Banked = true
	})

	out, err := s.service.EvaluateMatch(s.ctx, &EvaluateMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	s.Equal(models.OutcomeOngoing, out.Outcome)
	s.True(out.Delta.IsZero())
	s.Nil(out.Tally)
	s.Equal(2, out.Match.Round)
	s.False(out.Match.HumanTurn.Banked)
	s.False(out.Match.ComputerTurn.Banked)
	s.Equal(models.MatchStatusActive, out.Match.Status)
}

func (s *MatchServiceTestSuite) TestFullRound_HumanWins() {
	s.seedMatch(models.ModeHeuristic, func(m *models.Match) {
		m.Human.TotalScore = 85
		m.Computer.TotalScore = 80
	})

	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{3, 3, 3, 3, 6})
	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{1, 4, 5, 2, 6})
	s.mockDiceRoller.EXPECT().RollDice(2).Return([]int{1, 1})
	s.mockDiceRoller.EXPECT().RollDice(2).Return([]int{2, 2})

	_, err := s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	_, err = s.service.ComputerRoll(s.ctx, &ComputerRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	bank, err := s.service.HumanBank(s.ctx, &HumanBankInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(103, bank.Total)

	comp, err := s.service.ComputerTurn(s.ctx, &ComputerTurnInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(99, comp.Total)

	out, err := s.service.EvaluateMatch(s.ctx, &EvaluateMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(models.OutcomeHumanWin, out.Outcome)
	s.Equal(models.WinDelta{Computer: 0, Human: 1}, out.Delta)
	s.Equal(models.MatchStatusCompleted, out.Match.Status)
	s.Require().NotNil(out.Tally)
	s.Equal(models.WinTally{Human: 1}, *out.Tally)

	tally, err := s.service.GetWinTally(s.ctx, &GetWinTallyInput{PlayerID: s.testPlayerID})
	s.Require().NoError(err)
	s.Equal(models.WinTally{Human: 1}, *tally.Tally)

	_, err = s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.ErrorIs(err, models.ErrMatchCompleted)
	_, err = s.service.EvaluateMatch(s.ctx, &EvaluateMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, models.ErrInvalidState)
}

func (s *MatchServiceTestSuite) TestTieGoesToTieBreaker() {
	s.seedMatch(models.ModeHeuristic, func(m *models.Match) {
		m.Human.TotalScore = 110
		m.Computer.TotalScore = 110
		m.HumanTurn.Banked = true
		m.ComputerTurn.Banked = true
	})

	out, err := s.service.EvaluateMatch(s.ctx, &EvaluateMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(models.OutcomeTie, out.Outcome)
	s.True(out.Delta.IsZero())
	s.Equal(models.MatchStatusTieBreaker, out.Match.Status)
	s.Equal(1, out.Match.TieBreakerRounds)
	s.Equal(110, out.Match.Human.TotalScore)
	s.True(out.Match.HumanTurn.TieBreaker)
	s.Equal(1, out.Match.HumanTurn.RollsRemaining())

	// holds are ignored during a tie-breaker
	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{2, 2, 2, 2, 2})
	_, err = s.service.HumanHold(s.ctx, &HumanHoldInput{MatchID: s.testMatchID, DieIndex: 0})
	s.Require().NoError(err)
	roll, err := s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.True(roll.MustBank)

	_, err = s.service.HumanBank(s.ctx, &HumanBankInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{3, 3, 3, 3, 3})
	comp, err := s.service.ComputerTurn(s.ctx, &ComputerTurnInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(1, comp.Rolls)
	s.Equal(125, comp.Total)

	out, err = s.service.EvaluateMatch(s.ctx, &EvaluateMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(models.OutcomeComputerWin, out.Outcome)
	s.Equal(models.WinDelta{Computer: 1}, out.Delta)
}

func (s *MatchServiceTestSuite) TestRepeatedTieBreakers() {
	s.seedMatch(models.ModeRandom, func(m *models.Match) {
		m.Human.TotalScore = 101
		m.Computer.TotalScore = 101
		m.HumanTurn.Banked = true
		m.ComputerTurn.Banked = true
	})

	_, err := s.service.EvaluateMatch(s.ctx, &EvaluateMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	s.mockDiceRoller.EXPECT().RollDice(5).Return([]int{4, 4, 4, 4, 4}).Times(2)
	_, err = s.service.HumanRoll(s.ctx, &HumanRollInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	_, err = s.service.HumanBank(s.ctx, &HumanBankInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	_, err = s.service.ComputerTurn(s.ctx, &ComputerTurnInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	out, err := s.service.EvaluateMatch(s.ctx, &EvaluateMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(models.OutcomeTie, out.Outcome)
	s.Equal(2, out.Match.TieBreakerRounds)
	s.Equal(121, out.Match.Human.TotalScore)
}

func (s *MatchServiceTestSuite) TestAbandonMatch() {
	s.seedMatch(models.ModeRandom, nil)

	_, err := s.service.AbandonMatch(s.ctx, &AbandonMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	_, err = s.service.GetMatch(s.ctx, &GetMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.service.AbandonMatch(s.ctx, &AbandonMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, ErrMatchNotFound)
}

func TestHumanRoll_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matchRepoMocks.NewMockRepository(ctrl)
	clock := clockMocks.NewMockClock(ctrl)

	svc, err := New(&Config{
		MatchRepo:     repo,
		TallyRepo:     tallyRepo.NewMemory(),
		DiceRoller:    diceMocks.NewMockRoller(ctrl),
		Coin:          diceMocks.NewMockCoin(ctrl),
		Clock:         clock,
		UUIDGenerator: uuidMocks.NewMockUUID(ctrl),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	boom := errors.New("connection refused")
	repo.EXPECT().
		GetMatch(gomock.Any(), &matchRepo.GetMatchInput{MatchID: "match-1"}).
		Return(nil, boom)

	_, err = svc.HumanRoll(context.Background(), &HumanRollInput{MatchID: "match-1"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

// bankedWin returns a match where both players banked and the human passed the target
func bankedWin() *models.Match {
	return &models.Match{
		ID:           "match-1",
		PlayerID:     "player-1",
		TargetScore:  101,
		Mode:         models.ModeHeuristic,
		Status:       models.MatchStatusActive,
		Outcome:      models.OutcomeOngoing,
		Round:        4,
		Human:        models.Player{TotalScore: 103},
		Computer:     models.Player{TotalScore: 95},
		HumanTurn:    models.TurnState{Banked: true},
		ComputerTurn: models.TurnState{Banked: true},
	}
}

func TestEvaluateMatch_SaveFailureLeavesTallyUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matchRepoMocks.NewMockRepository(ctrl)
	clock := clockMocks.NewMockClock(ctrl)
	tallies := tallyRepo.NewMemory()

	svc, err := New(&Config{
		MatchRepo:     repo,
		TallyRepo:     tallies,
		DiceRoller:    diceMocks.NewMockRoller(ctrl),
		Coin:          diceMocks.NewMockCoin(ctrl),
		Clock:         clock,
		UUIDGenerator: uuidMocks.NewMockUUID(ctrl),
		Logger:        zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	boom := errors.New("redis down")
	clock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()
	repo.EXPECT().
		GetMatch(gomock.Any(), &matchRepo.GetMatchInput{MatchID: "match-1"}).
		DoAndReturn(func(context.Context, *matchRepo.GetMatchInput) (*models.Match, error) {
			return bankedWin(), nil
		}).
		Times(2)
	repo.EXPECT().SaveMatch(gomock.Any(), gomock.Any()).Return(boom).Times(2)

	for attempt := 0; attempt < 2; attempt++ {
		_, err = svc.EvaluateMatch(context.Background(), &EvaluateMatchInput{MatchID: "match-1"})
		if !errors.Is(err, boom) {
			t.Fatalf("attempt %d: expected save error, got %v", attempt, err)
		}
	}

	tally, err := tallies.GetTally(context.Background(), &tallyRepo.GetTallyInput{PlayerID: "player-1"})
	if err != nil {
		t.Fatalf("GetTally: %v", err)
	}
	if *tally != (models.WinTally{}) {
		t.Fatalf("expected empty tally, got %+v", *tally)
	}
}

func TestEvaluateMatch_TallyFailureKeepsMatchCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := clockMocks.NewMockClock(ctrl)
	tallies := tallyRepoMocks.NewMockRepository(ctrl)
	matches := matchRepo.NewMemory()
	ctx := context.Background()

	svc, err := New(&Config{
		MatchRepo:     matches,
		TallyRepo:     tallies,
		DiceRoller:    diceMocks.NewMockRoller(ctrl),
		Coin:          diceMocks.NewMockCoin(ctrl),
		Clock:         clock,
		UUIDGenerator: uuidMocks.NewMockUUID(ctrl),
		Logger:        zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()
	if err := matches.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: bankedWin()}); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}

	boom := errors.New("redis down")
	tallies.EXPECT().
		RecordResult(gomock.Any(), &tallyRepo.RecordResultInput{
			PlayerID: "player-1",
			Delta:    models.WinDelta{Human: 1},
		}).
		Return(nil, boom)

	_, err = svc.EvaluateMatch(ctx, &EvaluateMatchInput{MatchID: "match-1"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected tally error, got %v", err)
	}

	stored, err := matches.GetMatch(ctx, &matchRepo.GetMatchInput{MatchID: "match-1"})
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if stored.Status != models.MatchStatusCompleted {
		t.Fatalf("expected completed match, got %s", stored.Status)
	}

	// the decided match cannot be evaluated, and counted, again
	_, err = svc.EvaluateMatch(ctx, &EvaluateMatchInput{MatchID: "match-1"})
	if !errors.Is(err, models.ErrMatchCompleted) {
		t.Fatalf("expected ErrMatchCompleted, got %v", err)
	}
}
