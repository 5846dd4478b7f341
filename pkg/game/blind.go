package game

// Blind is a score threshold the player must reach to clear a round
type Blind struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// DefaultBlinds returns the standard three-blind progression
func DefaultBlinds() []Blind {
	return []Blind{
		{Name: "Small Blind", Score: 100},
		{Name: "Big Blind", Score: 200},
		{Name: "Super Blind", Score: 500},
	}
}
