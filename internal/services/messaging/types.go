package messaging

import (
	"github.com/KirkDiggler/diceroller/internal/dice"
	"github.com/KirkDiggler/diceroller/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller picks which alternative line is used
	Roller dice.Roller

	// OverrideDir optionally holds YAML files replacing catalog entries
	OverrideDir string

	// Errors maps caller-defined errors to catalog entries, checked before
	// the rule errors
	Errors map[error]ErrorKind
}

type GetMatchStartMessageInput struct {
	PlayerName  string
	TargetScore int
	Mode        models.Mode
}

type GetMatchStartMessageOutput struct {
	Message string
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerName string

	// Dice are all five values after the roll
	Dice []int

	// RollNumber is 1..3 within the turn
	RollNumber int

	TieBreaker bool
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ComputerEvent identifies what the computer just did
type ComputerEvent string

const (
	ComputerEventFirstRoll ComputerEvent = "first"
	ComputerEventKept      ComputerEvent = "kept"
	ComputerEventRerolled  ComputerEvent = "rerolled"
	ComputerEventBanked    ComputerEvent = "banked"
)

type GetComputerMessageInput struct {
	Event ComputerEvent
	Dice  []int

	// RerolledCount is the number of dice sent back, for ComputerEventRerolled
	RerolledCount int

	// Total is the computer's score after banking
	Total int
}

type GetComputerMessageOutput struct {
	Message string
}

type GetOutcomeMessageInput struct {
	PlayerName    string
	Outcome       models.Outcome
	HumanTotal    int
	ComputerTotal int
	TargetScore   int
}

type GetOutcomeMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
