package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/diceroller/internal/dice Roller,Coin

// DefaultSides is the number of faces on a standard die
const DefaultSides = 6

// Roller produces die faces
type Roller interface {
	// Roll returns a single face in 1..sides
	Roll(sides int) int

	// RollDice returns count independent faces of a six-sided die
	RollDice(count int) []int
}

// Coin produces unbiased true/false decisions
type Coin interface {
	Flip() bool
}

// RandomRoller implements Roller and Coin over a single random source.
// It is safe for concurrent use.
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = DefaultSides
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// RollDice rolls count six-sided dice. A non-positive count yields no faces.
func (r *RandomRoller) RollDice(count int) []int {
	if count <= 0 {
		return []int{}
	}

	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.Roll(DefaultSides)
	}
	return faces
}

// Flip returns true or false with equal probability
func (r *RandomRoller) Flip() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(2) == 1
}
