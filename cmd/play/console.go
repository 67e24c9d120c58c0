package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/diceroller/internal/models"
	matchService "github.com/KirkDiggler/diceroller/internal/services/match"
	"github.com/KirkDiggler/diceroller/internal/services/table"
)

const (
	channelID  = "terminal"
	playerID   = "local"
	playerName = "You"
)

const help = `commands:
  new [target] [hard]  start a match
  roll                 roll your free dice
  hold N               toggle die N (1-5) before the next roll
  bank                 add your dice to your total
  tally                show wins against the computer
  quit                 leave`

// console is a line-oriented front end over a Table
type console struct {
	table   *table.Table
	matches matchService.Service
	in      io.Reader
	out     io.Writer
	target  int

	matchID string
}

// Run reads commands until quit or end of input
func (c *console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, help)
	c.start(ctx, c.target, models.ModeRandom)

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}

		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		c.dispatch(ctx, fields)
	}
}

func (c *console) dispatch(ctx context.Context, fields []string) {
	switch fields[0] {
	case "new":
		target, mode := c.target, models.ModeRandom
		for _, arg := range fields[1:] {
			if arg == "hard" {
				mode = models.ModeHeuristic
				continue
			}
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(c.out, "not a target score: %s\n", arg)
				return
			}
			target = n
		}
		if err := c.abandon(ctx); err != nil {
			fmt.Fprintln(c.out, c.table.Explain(ctx, err))
			return
		}
		c.start(ctx, target, mode)
	case "roll":
		c.show(c.table.Roll(ctx, c.matchID, playerName))
	case "bank":
		c.show(c.table.Bank(ctx, c.matchID, playerName))
	case "hold":
		if len(fields) != 2 {
			fmt.Fprintln(c.out, "usage: hold N")
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintln(c.out, "usage: hold N")
			return
		}
		c.show(c.table.Hold(ctx, c.matchID, n-1))
	case "tally":
		tally, err := c.table.Tally(ctx, playerID)
		if err != nil {
			fmt.Fprintln(c.out, c.table.Explain(ctx, err))
			return
		}
		fmt.Fprintf(c.out, "%s %d - %d Computer\n", playerName, tally.Human, tally.Computer)
	default:
		fmt.Fprintln(c.out, help)
	}
}

func (c *console) start(ctx context.Context, target int, mode models.Mode) {
	c.show(c.table.Start(ctx, &matchService.CreateMatchInput{
		ChannelID:   channelID,
		PlayerID:    playerID,
		TargetScore: target,
		Mode:        mode,
	}, playerName))
}

// abandon drops an unfinished match so "new" can replace it
func (c *console) abandon(ctx context.Context) error {
	if c.matchID == "" {
		return nil
	}
	current, err := c.matches.GetMatch(ctx, &matchService.GetMatchInput{MatchID: c.matchID})
	if errors.Is(err, matchService.ErrMatchNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if current.Match.Status.IsCompleted() {
		return nil
	}
	_, err = c.matches.AbandonMatch(ctx, &matchService.AbandonMatchInput{MatchID: c.matchID})
	if errors.Is(err, matchService.ErrMatchNotFound) {
		return nil
	}
	return err
}

func (c *console) show(report *table.Report, err error) {
	if err != nil {
		fmt.Fprintln(c.out, c.table.Explain(context.Background(), err))
		return
	}

	c.matchID = report.Match.ID
	if report.Title != "" {
		fmt.Fprintf(c.out, "== %s ==\n", report.Title)
	}
	for _, line := range report.Lines {
		fmt.Fprintln(c.out, line)
	}
	fmt.Fprint(c.out, board(report.Match))
}

// board renders both players' dice and totals
func board(m *models.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-9s %3d  %s  %s\n", playerName, m.Human.TotalScore, formatDice(m.HumanTurn.Dice), turnStatus(&m.HumanTurn))
	fmt.Fprintf(&b, "  %-9s %3d  %s  %s\n", "Computer", m.Computer.TotalScore, formatDice(m.ComputerTurn.Dice), turnStatus(&m.ComputerTurn))
	switch {
	case m.Status.IsCompleted():
		b.WriteString("  match over, type new to play again\n")
	case m.Status == models.MatchStatusTieBreaker:
		fmt.Fprintf(&b, "  tie-breaker, target %d\n", m.TargetScore)
	default:
		fmt.Fprintf(&b, "  round %d, target %d\n", m.Round, m.TargetScore)
	}
	return b.String()
}

func formatDice(set models.DiceSet) string {
	parts := make([]string, len(set))
	for i, die := range set {
		switch {
		case die.Value == 0:
			parts[i] = " - "
		case die.Held:
			parts[i] = "(" + strconv.Itoa(die.Value) + ")"
		default:
			parts[i] = " " + strconv.Itoa(die.Value) + " "
		}
	}
	return strings.Join(parts, "")
}

func turnStatus(turn *models.TurnState) string {
	if turn.Banked {
		return "banked"
	}
	return fmt.Sprintf("%d rolls left", turn.RollsRemaining())
}
