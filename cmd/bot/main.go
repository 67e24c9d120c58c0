package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/diceroller/internal/common/clock"
	"github.com/KirkDiggler/diceroller/internal/common/obslog"
	"github.com/KirkDiggler/diceroller/internal/common/uuid"
	"github.com/KirkDiggler/diceroller/internal/config"
	"github.com/KirkDiggler/diceroller/internal/dice"
	"github.com/KirkDiggler/diceroller/internal/handlers/discord"
	matchRepo "github.com/KirkDiggler/diceroller/internal/repositories/match"
	tallyRepo "github.com/KirkDiggler/diceroller/internal/repositories/tally"
	matchService "github.com/KirkDiggler/diceroller/internal/services/match"
	"github.com/KirkDiggler/diceroller/internal/services/messaging"
	"github.com/KirkDiggler/diceroller/internal/services/table"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config", zap.Error(err))
	}

	logger, err := obslog.Init(obslog.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		zap.NewExample().Fatal("logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.RequireDiscord(); err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis_unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	// Initialize repositories
	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("match_repository", zap.Error(err))
	}

	tallies, err := tallyRepo.NewRedis(&tallyRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("tally_repository", zap.Error(err))
	}

	roller := dice.New(&dice.Config{Seed: cfg.DiceSeed})

	matchSvc, err := matchService.New(&matchService.Config{
		MatchRepo:     matches,
		TallyRepo:     tallies,
		DiceRoller:    roller,
		Coin:          roller,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("match_service", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Roller:      roller,
		OverrideDir: cfg.MessagesDir,
		Errors: map[error]messaging.ErrorKind{
			matchService.ErrMatchNotFound:      messaging.ErrorKindMatchNotFound,
			matchService.ErrMatchAlreadyExists: messaging.ErrorKindMatchExists,
		},
	})
	if err != nil {
		logger.Fatal("messaging_service", zap.Error(err))
	}

	tbl, err := table.New(&table.Config{
		MatchService:     matchSvc,
		MessagingService: messagingSvc,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal("table", zap.Error(err))
	}

	bot, err := discord.New(&discord.Config{
		Token:              cfg.DiscordToken,
		ApplicationID:      cfg.ApplicationID,
		GuildID:            cfg.GuildID,
		DefaultTargetScore: cfg.DefaultTargetScore,
		MatchService:       matchSvc,
		Table:              tbl,
		Logger:             logger,
	})
	if err != nil {
		logger.Fatal("discord_bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		logger.Fatal("discord_start", zap.Error(err))
	}

	reportActiveMatches(matches, logger)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("discord_stop", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		logger.Error("redis_close", zap.Error(err))
	}

	logger.Info("bot_stopped")
}

// reportActiveMatches logs matches left unfinished by a previous run; their
// boards keep working since state lives in Redis
func reportActiveMatches(repo matchRepo.Repository, logger *zap.Logger) {
	out, err := repo.GetActiveMatches(context.Background(), &matchRepo.GetActiveMatchesInput{})
	if err != nil {
		logger.Warn("active_matches_unavailable", zap.Error(err))
		return
	}
	logger.Info("active_matches", zap.Int("count", len(out.Matches)))
}
