package game

// Options provides options for a session
type Options struct {
	// HandSize is how many cards the player holds
	HandSize int
	// HandsPerRound is how many plays the player gets each round
	HandsPerRound int
	// DrawsPerRound is how many discard-and-draws the player gets each round
	DrawsPerRound int
	// MaxSelected is how many cards may be selected for a single play
	MaxSelected int
	// Blinds are the score thresholds, in increasing order
	Blinds []Blind
	// Seed forces deterministic shuffles for tests and replayable
	// simulations; 0 uses crypto randomness
	Seed int64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		HandSize:      8,
		HandsPerRound: 4,
		DrawsPerRound: 4,
		MaxSelected:   5,
		Blinds:        DefaultBlinds(),
	}
}
