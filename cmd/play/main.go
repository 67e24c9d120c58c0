// Command play runs a match against the computer in the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/KirkDiggler/diceroller/internal/common/clock"
	"github.com/KirkDiggler/diceroller/internal/common/obslog"
	"github.com/KirkDiggler/diceroller/internal/common/uuid"
	"github.com/KirkDiggler/diceroller/internal/config"
	"github.com/KirkDiggler/diceroller/internal/dice"
	matchRepo "github.com/KirkDiggler/diceroller/internal/repositories/match"
	tallyRepo "github.com/KirkDiggler/diceroller/internal/repositories/tally"
	matchService "github.com/KirkDiggler/diceroller/internal/services/match"
	"github.com/KirkDiggler/diceroller/internal/services/messaging"
	"github.com/KirkDiggler/diceroller/internal/services/table"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the terminal belongs to the game, so logs only go to LOG_FILE
	if cfg.LogFile != "" {
		logger, err := obslog.Init(obslog.Options{
			Level:          cfg.LogLevel,
			Format:         cfg.LogFormat,
			File:           cfg.LogFile,
			DisableConsole: true,
		})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	tbl, matches, err := newTable(cfg)
	if err != nil {
		return err
	}

	c := &console{
		table:   tbl,
		matches: matches,
		in:      os.Stdin,
		out:     os.Stdout,
		target:  cfg.DefaultTargetScore,
	}
	return c.Run(context.Background())
}

// newTable wires the services over in-memory repositories
func newTable(cfg *config.Config) (*table.Table, matchService.Service, error) {
	roller := dice.New(&dice.Config{Seed: cfg.DiceSeed})

	matches, err := matchService.New(&matchService.Config{
		MatchRepo:     matchRepo.NewMemory(),
		TallyRepo:     tallyRepo.NewMemory(),
		DiceRoller:    roller,
		Coin:          roller,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        obslog.L(),
	})
	if err != nil {
		return nil, nil, err
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{
		Roller:      roller,
		OverrideDir: cfg.MessagesDir,
		Errors: map[error]messaging.ErrorKind{
			matchService.ErrMatchNotFound:      messaging.ErrorKindMatchNotFound,
			matchService.ErrMatchAlreadyExists: messaging.ErrorKindMatchExists,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	tbl, err := table.New(&table.Config{
		MatchService:     matches,
		MessagingService: messages,
		Logger:           obslog.L(),
	})
	if err != nil {
		return nil, nil, err
	}
	return tbl, matches, nil
}
