package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/diceroller/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	colorActive     = 0x00ff00
	colorTieBreaker = 0xffa500
	colorWin        = 0xffd700
	colorLoss       = 0x808080
	colorError      = 0xff0000
)

// Button IDs
const (
	ButtonRoll       = "dice_roll"
	ButtonBank       = "dice_bank"
	ButtonNewMatch   = "dice_new"
	ButtonHoldPrefix = "dice_hold_"
)

// holdButtonID returns the custom ID of the hold toggle for die index
func holdButtonID(index int) string {
	return ButtonHoldPrefix + strconv.Itoa(index)
}

// parseHoldButtonID extracts the die index from a hold toggle custom ID
func parseHoldButtonID(customID string) (int, bool) {
	if !strings.HasPrefix(customID, ButtonHoldPrefix) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(customID, ButtonHoldPrefix))
	if err != nil || index < 0 || index >= models.DiceCount {
		return 0, false
	}
	return index, true
}

// rollLabel names the next roll of a turn
func rollLabel(turn *models.TurnState) string {
	switch {
	case turn.TieBreaker:
		return "Tie-Breaker Roll"
	case turn.RollsTaken == 0 || turn.Banked:
		return "Roll"
	case turn.RollsTaken >= models.MaxRolls:
		return "No Rolls Left"
	default:
		return fmt.Sprintf("Re-roll %d", turn.RollsTaken)
	}
}

// formatDice shows faces with held dice marked, or a placeholder before the first roll
func formatDice(set models.DiceSet) string {
	parts := make([]string, len(set))
	for i, die := range set {
		switch {
		case die.Value == 0:
			parts[i] = "[ ]"
		case die.Held:
			parts[i] = fmt.Sprintf("**[%d]**", die.Value)
		default:
			parts[i] = fmt.Sprintf("[%d]", die.Value)
		}
	}
	return strings.Join(parts, " ")
}

func matchTitle(m *models.Match, headline string) string {
	if headline != "" {
		return headline
	}
	switch m.Status {
	case models.MatchStatusTieBreaker:
		return "Tie-Breaker!"
	case models.MatchStatusCompleted:
		return "Match Over"
	default:
		return fmt.Sprintf("Race to %d", m.TargetScore)
	}
}

func matchColor(m *models.Match) int {
	switch {
	case m.Outcome == models.OutcomeHumanWin:
		return colorWin
	case m.Outcome == models.OutcomeComputerWin:
		return colorLoss
	case m.Status == models.MatchStatusTieBreaker:
		return colorTieBreaker
	default:
		return colorActive
	}
}

func turnSummary(player models.Player, turn models.TurnState) string {
	status := fmt.Sprintf("%d rolls left", turn.RollsRemaining())
	if turn.Banked {
		status = "banked"
	}
	return fmt.Sprintf("**%d** total\n%s\n%s", player.TotalScore, formatDice(turn.Dice), status)
}

// renderMatchEmbed renders the board for a match with the narration lines
func renderMatchEmbed(m *models.Match, playerName, headline string, lines []string) *discordgo.MessageEmbed {
	if playerName == "" {
		playerName = "You"
	}

	mode := "Easy"
	if m.Mode == models.ModeHeuristic {
		mode = "Hard"
	}

	return &discordgo.MessageEmbed{
		Title:       matchTitle(m, headline),
		Description: strings.Join(lines, "\n"),
		Color:       matchColor(m),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   playerName,
				Value:  turnSummary(m.Human, m.HumanTurn),
				Inline: true,
			},
			{
				Name:   "Computer",
				Value:  turnSummary(m.Computer, m.ComputerTurn),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Target %d · %s · Round %d", m.TargetScore, mode, m.Round),
		},
	}
}

// renderMatchComponents builds the buttons for the human's next action
func renderMatchComponents(m *models.Match) []discordgo.MessageComponent {
	if m.Status.IsCompleted() {
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "New Match",
						Style:    discordgo.SuccessButton,
						CustomID: ButtonNewMatch,
						Emoji:    &discordgo.ComponentEmoji{Name: "🎮"},
					},
				},
			},
		}
	}

	turn := &m.HumanTurn
	canRoll := !turn.Banked && turn.RollsTaken < models.MaxRolls
	canBank := !turn.Banked && turn.HasRolled()
	canHold := canRoll && turn.RollsTaken > 0 && !turn.TieBreaker

	actions := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    rollLabel(turn),
				Style:    discordgo.PrimaryButton,
				CustomID: ButtonRoll,
				Disabled: !canRoll,
				Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
			},
			discordgo.Button{
				Label:    "Bank",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonBank,
				Disabled: !canBank,
			},
		},
	}

	holds := make([]discordgo.MessageComponent, 0, models.DiceCount)
	for i, die := range turn.Dice {
		style := discordgo.SecondaryButton
		label := fmt.Sprintf("Hold %d", i+1)
		if die.Held {
			style = discordgo.SuccessButton
			label = fmt.Sprintf("Held %d", i+1)
		}
		holds = append(holds, discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: holdButtonID(i),
			Disabled: !canHold,
		})
	}

	return []discordgo.MessageComponent{
		actions,
		discordgo.ActionsRow{Components: holds},
	}
}

// renderTallyEmbed renders a player's record against the computer
func renderTallyEmbed(playerName string, tally *models.WinTally) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Win Tally",
		Color: colorActive,
		Fields: []*discordgo.MessageEmbedField{
			{Name: playerName, Value: strconv.Itoa(tally.Human), Inline: true},
			{Name: "Computer", Value: strconv.Itoa(tally.Computer), Inline: true},
		},
	}
}
