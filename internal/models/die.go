package models

const (
	// DiceCount is the number of dice each player rolls
	DiceCount = 5

	// MaxRolls is the number of rolls allowed in a turn
	MaxRolls = 3

	// MinFace and MaxFace bound a die value
	MinFace = 1
	MaxFace = 6
)

// Die is a single die owned by a player's turn
type Die struct {
	// Value is the face showing, 0 before the first roll of a match
	Value int `json:"value"`

	// Held excludes the die from the next re-roll
	Held bool `json:"held"`
}

// DiceSet is the ordered set of dice a player rolls
type DiceSet [DiceCount]Die

// Values returns the face values in order
func (d DiceSet) Values() []int {
	values := make([]int, 0, DiceCount)
	for _, die := range d {
		values = append(values, die.Value)
	}
	return values
}

// Sum adds up the face values
func (d DiceSet) Sum() int {
	total := 0
	for _, die := range d {
		total += die.Value
	}
	return total
}

// HeldCount reports how many dice are held
func (d DiceSet) HeldCount() int {
	n := 0
	for _, die := range d {
		if die.Held {
			n++
		}
	}
	return n
}

// ReleaseAll clears every held flag
func (d *DiceSet) ReleaseAll() {
	for i := range d {
		d[i].Held = false
	}
}

// ValidFace reports whether v is a legal die value
func ValidFace(v int) bool {
	return v >= MinFace && v <= MaxFace
}
