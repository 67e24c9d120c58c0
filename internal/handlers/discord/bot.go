package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/diceroller/internal/common/obslog"
	"github.com/KirkDiggler/diceroller/internal/models"
	"github.com/KirkDiggler/diceroller/internal/services/match"
	"github.com/KirkDiggler/diceroller/internal/services/table"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	commandIDs   map[string]string // Maps command name to command ID
	matchService match.Service
	table        *table.Table
	logger       *zap.Logger
	config       *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// DefaultTargetScore is used when /dice start has no target
	DefaultTargetScore int

	MatchService match.Service
	Table        *table.Table
	Logger       *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	if cfg.Table == nil {
		return nil, errors.New("table cannot be nil")
	}

	if cfg.DefaultTargetScore <= 0 {
		return nil, errors.New("default target score must be positive")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = obslog.L()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		matchService: cfg.MatchService,
		table:        cfg.Table,
		logger:       logger.Named("discord"),
		config:       cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	diceCmd := NewDiceCommand(b.table, b.matchService, b.config.DefaultTargetScore, b.logger)
	if err := b.RegisterCommand(diceCmd); err != nil {
		return fmt.Errorf("failed to register dice command: %w", err)
	}

	b.logger.Info("bot_started")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID, guildID := b.commandScope()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.Warn("command_delete_failed", zap.String("command", cmdName), zap.String("command_id", cmdID), zap.Error(err))
		} else {
			b.logger.Info("command_deleted", zap.String("command", cmdName), zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

// commandScope returns where commands are registered. An empty guild ID
// registers globally.
func (b *Bot) commandScope() (appID, guildID string) {
	appID = b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID, guildID := b.commandScope()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("command_registered",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", guildID),
	)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("command_failed", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("component_failed", zap.String("custom_id", i.MessageComponentData().CustomID), zap.Error(err))
		}
	}
}

// handleComponentInteraction handles the board's buttons
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	customID := i.MessageComponentData().CustomID
	userID, username := interactionUser(i)

	current, err := b.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, b.table.Explain(ctx, err))
	}
	m := current.Match

	if m.PlayerID != userID {
		return RespondWithEphemeralMessage(s, i, "This isn't your match. Start your own with `/dice start`.")
	}

	var report *table.Report
	switch {
	case customID == ButtonRoll:
		report, err = b.table.Roll(ctx, m.ID, username)
	case customID == ButtonBank:
		report, err = b.table.Bank(ctx, m.ID, username)
	case customID == ButtonNewMatch:
		return b.handleNewMatch(s, i, m, username)
	default:
		index, ok := parseHoldButtonID(customID)
		if !ok {
			return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
		}
		report, err = b.table.Hold(ctx, m.ID, index)
	}
	if err != nil {
		b.logger.Info("action_rejected",
			zap.String("match_id", m.ID),
			zap.String("custom_id", customID),
			zap.Error(err),
		)
		return RespondWithEphemeralMessage(s, i, b.table.Explain(ctx, err))
	}

	return UpdateWithEmbed(s, i,
		renderMatchEmbed(report.Match, username, report.Title, report.Lines),
		renderMatchComponents(report.Match),
	)
}

// handleNewMatch starts a rematch with the finished match's settings
func (b *Bot) handleNewMatch(s *discordgo.Session, i *discordgo.InteractionCreate, previous *models.Match, username string) error {
	ctx := context.Background()

	report, err := b.table.Start(ctx, &match.CreateMatchInput{
		ChannelID:   previous.ChannelID,
		PlayerID:    previous.PlayerID,
		TargetScore: previous.TargetScore,
		Mode:        previous.Mode,
	}, username)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, b.table.Explain(ctx, err))
	}

	return RespondWithEmbed(s, i,
		renderMatchEmbed(report.Match, username, "", report.Lines),
		renderMatchComponents(report.Match),
	)
}
