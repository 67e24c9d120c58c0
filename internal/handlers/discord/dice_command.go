package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/diceroller/internal/models"
	"github.com/KirkDiggler/diceroller/internal/services/match"
	"github.com/KirkDiggler/diceroller/internal/services/table"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// DiceCommand handles the /dice command
type DiceCommand struct {
	BaseCommand
	table         *table.Table
	matchService  match.Service
	defaultTarget int
	logger        *zap.Logger
}

// NewDiceCommand creates a new dice command handler
func NewDiceCommand(t *table.Table, matchService match.Service, defaultTarget int, logger *zap.Logger) *DiceCommand {
	minTarget := float64(1)

	return &DiceCommand{
		BaseCommand: BaseCommand{
			Name:        "dice",
			Description: "Race the computer to a target score with five dice",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a match against the computer",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "target",
							Description: "Score to reach",
							MinValue:    &minTarget,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "hard",
							Description: "The computer always re-rolls its low dice",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "tally",
					Description: "Show your wins against the computer",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Abandon the match in this channel",
				},
			},
		},
		table:         t,
		matchService:  matchService,
		defaultTarget: defaultTarget,
		logger:        logger,
	}
}

// Handle processes a Discord interaction for the dice command
func (c *DiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)
	sub := data.Options[0]

	switch sub.Name {
	case "start":
		target, mode := startOptions(sub.Options, c.defaultTarget)
		return c.handleStart(s, i, userID, username, target, mode)
	case "tally":
		return c.handleTally(s, i, userID, username)
	case "abandon":
		return c.handleAbandon(s, i, userID)
	default:
		return errors.New("unknown subcommand")
	}
}

// startOptions reads the start subcommand options
func startOptions(options []*discordgo.ApplicationCommandInteractionDataOption, defaultTarget int) (int, models.Mode) {
	target := defaultTarget
	mode := models.ModeRandom
	for _, opt := range options {
		switch opt.Name {
		case "target":
			target = int(opt.IntValue())
		case "hard":
			if opt.BoolValue() {
				mode = models.ModeHeuristic
			}
		}
	}
	return target, mode
}

func (c *DiceCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, target int, mode models.Mode) error {
	ctx := context.Background()

	report, err := c.table.Start(ctx, &match.CreateMatchInput{
		ChannelID:   i.ChannelID,
		PlayerID:    userID,
		TargetScore: target,
		Mode:        mode,
	}, username)
	if err != nil {
		c.logger.Warn("start_failed", zap.String("channel_id", i.ChannelID), zap.Error(err))
		return RespondWithError(s, i, c.table.Explain(ctx, err))
	}

	return RespondWithEmbed(s, i,
		renderMatchEmbed(report.Match, username, "", report.Lines),
		renderMatchComponents(report.Match),
	)
}

func (c *DiceCommand) handleTally(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	ctx := context.Background()

	tally, err := c.table.Tally(ctx, userID)
	if err != nil {
		c.logger.Warn("tally_failed", zap.String("player_id", userID), zap.Error(err))
		return RespondWithError(s, i, c.table.Explain(ctx, err))
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderTallyEmbed(username, tally)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func (c *DiceCommand) handleAbandon(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	existing, err := c.matchService.GetMatchByChannel(ctx, &match.GetMatchByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, c.table.Explain(ctx, err))
	}
	if existing.Match.PlayerID != userID {
		return RespondWithEphemeralMessage(s, i, "Only the player who started this match can abandon it.")
	}

	if _, err := c.matchService.AbandonMatch(ctx, &match.AbandonMatchInput{
		MatchID: existing.Match.ID,
	}); err != nil {
		return RespondWithError(s, i, c.table.Explain(ctx, err))
	}

	return RespondWithEphemeralMessage(s, i, "Match abandoned. No result was recorded.")
}
