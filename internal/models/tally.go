package models

// Keys of the persisted win counters
const (
	ComputerWinsKey = "COMPUTER-SCORE"
	HumanWinsKey    = "HUMAN-SCORE"
)

// WinDelta is the change to apply to cumulative win counters after a match.
// Each side is 0 or 1.
type WinDelta struct {
	Computer int `json:"computer"`
	Human    int `json:"human"`
}

// IsZero reports whether the delta changes nothing
func (d WinDelta) IsZero() bool {
	return d.Computer == 0 && d.Human == 0
}

// WinTally holds cumulative wins across matches
type WinTally struct {
	Computer int `json:"computer"`
	Human    int `json:"human"`
}
