package models

import (
	"time"
)

// Mode selects the computer's re-roll strategy
type Mode string

const (
	// ModeRandom re-rolls on coin flips ("easy")
	ModeRandom Mode = "random"

	// ModeHeuristic always re-rolls low dice ("hard")
	ModeHeuristic Mode = "heuristic"
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeRandom || m == ModeHeuristic
}

// MatchStatus represents the lifecycle of a match
type MatchStatus string

const (
	// MatchStatusActive indicates normal turns are being played
	MatchStatusActive MatchStatus = "active"

	// MatchStatusTieBreaker indicates a single-roll tie-breaker round is in play
	MatchStatusTieBreaker MatchStatus = "tie_breaker"

	// MatchStatusCompleted indicates a winner was decided
	MatchStatusCompleted MatchStatus = "completed"
)

// IsCompleted returns true if the match has a winner
func (s MatchStatus) IsCompleted() bool {
	return s == MatchStatusCompleted
}

// Outcome is the referee's verdict after a round
type Outcome string

const (
	OutcomeOngoing     Outcome = "ongoing"
	OutcomeHumanWin    Outcome = "human_win"
	OutcomeComputerWin Outcome = "computer_win"
	OutcomeTie         Outcome = "tie"
)

// IsDecided reports whether the outcome ends the match
func (o Outcome) IsDecided() bool {
	return o == OutcomeHumanWin || o == OutcomeComputerWin
}

// Match is one human-versus-computer game
type Match struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	// ChannelID is where the match is being played
	ChannelID string `json:"channel_id"`

	// PlayerID identifies the human, used to key win counters
	PlayerID string `json:"player_id"`

	// TargetScore is the total to reach; fixed at creation
	TargetScore int `json:"target_score"`

	// Mode is the computer strategy; fixed at creation
	Mode Mode `json:"mode"`

	Status  MatchStatus `json:"status"`
	Outcome Outcome     `json:"outcome"`

	Human    Player `json:"human"`
	Computer Player `json:"computer"`

	HumanTurn    TurnState `json:"human_turn"`
	ComputerTurn TurnState `json:"computer_turn"`

	// Round counts normal and tie-breaker rounds, starting at 1
	Round int `json:"round"`

	// TieBreakerRounds counts how many tie-breakers were entered
	TieBreakerRounds int `json:"tie_breaker_rounds"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoundBanked reports whether both players banked this round
func (m *Match) RoundBanked() bool {
	return m.HumanTurn.Banked && m.ComputerTurn.Banked
}
