package match

// GameError is a custom error type for match service errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrMatchNotFound      GameError = "match not found"
	ErrMatchAlreadyExists GameError = "an unfinished match already exists for this channel"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilMatchRepo       GameError = "match repository cannot be nil"
	ErrNilTallyRepo       GameError = "tally repository cannot be nil"
	ErrNilDiceRoller      GameError = "dice roller cannot be nil"
	ErrNilCoin            GameError = "coin cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
