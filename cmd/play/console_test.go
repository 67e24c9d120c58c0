package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KirkDiggler/diceroller/internal/config"
	"github.com/KirkDiggler/diceroller/internal/models"
	matchService "github.com/KirkDiggler/diceroller/internal/services/match"
	matchMocks "github.com/KirkDiggler/diceroller/internal/services/match/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConsole(t *testing.T, input string) (*console, *bytes.Buffer) {
	t.Helper()

	tbl, matches, err := newTable(&config.Config{DefaultTargetScore: 30, DiceSeed: 7})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &console{
		table:   tbl,
		matches: matches,
		in:      strings.NewReader(input),
		out:     out,
		target:  30,
	}, out
}

func TestConsole_StartsMatchAndQuits(t *testing.T) {
	c, out := newTestConsole(t, "quit\n")

	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "round 1, target 30")
	assert.NotEmpty(t, c.matchID)
}

func TestConsole_PlaysUntilDecided(t *testing.T) {
	// every round adds at least 5 to both totals, so a target of 30 is
	// reached well within twenty rounds
	input := strings.Repeat("roll\nroll\nroll\n", 20) + "tally\nquit\n"
	c, out := newTestConsole(t, input)

	require.NoError(t, c.Run(context.Background()))

	current, err := c.matches.GetMatch(context.Background(), &matchService.GetMatchInput{MatchID: c.matchID})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCompleted, current.Match.Status)
	assert.Contains(t, out.String(), "match over")
	assert.Regexp(t, `You [01] - [01] Computer`, out.String())
}

func TestConsole_RejectsBadHold(t *testing.T) {
	c, out := newTestConsole(t, "hold\nhold x\nhold 9\nquit\n")

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, 2, strings.Count(out.String(), "usage: hold N"))
	// die 9 does not exist
	text := out.String()
	assert.True(t,
		strings.Contains(text, "That didn't make sense to the dice.") ||
			strings.Contains(text, "Try that again with something the dice understand."),
		text,
	)
}

func TestConsole_NewReplacesUnfinishedMatch(t *testing.T) {
	c, out := newTestConsole(t, "roll\nnew 50 hard\nquit\n")

	require.NoError(t, c.Run(context.Background()))

	current, err := c.matches.GetMatch(context.Background(), &matchService.GetMatchInput{MatchID: c.matchID})
	require.NoError(t, err)
	assert.Equal(t, 50, current.Match.TargetScore)
	assert.Equal(t, models.ModeHeuristic, current.Match.Mode)
	assert.Contains(t, out.String(), "target 50")
}

func TestConsole_NewReportsAbandonFailure(t *testing.T) {
	c, out := newTestConsole(t, "new 50\nquit\n")
	service := c.matches

	ctrl := gomock.NewController(t)
	matches := matchMocks.NewMockService(ctrl)
	c.matches = matches

	matches.EXPECT().
		GetMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *matchService.GetMatchInput) (*matchService.GetMatchOutput, error) {
			return service.GetMatch(ctx, input)
		})
	matches.EXPECT().
		AbandonMatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "Something went wrong with the dice. Try again.")
	assert.NotContains(t, out.String(), "target 50")
	assert.NotContains(t, out.String(), "There's already a match going in this channel.")

	current, err := service.GetMatch(context.Background(), &matchService.GetMatchInput{MatchID: c.matchID})
	require.NoError(t, err)
	assert.Equal(t, 30, current.Match.TargetScore)
}

func TestBoard(t *testing.T) {
	m := &models.Match{TargetScore: 101, Round: 2, Status: models.MatchStatusActive}
	m.HumanTurn.RollsTaken = 1
	m.HumanTurn.Dice = models.DiceSet{{Value: 1}, {Value: 4, Held: true}, {Value: 5}, {Value: 2}, {Value: 6}}
	m.Human.TotalScore = 40

	got := board(m)
	assert.Contains(t, got, " 1 (4) 5  2  6 ")
	assert.Contains(t, got, "2 rolls left")
	assert.Contains(t, got, "round 2, target 101")
}
