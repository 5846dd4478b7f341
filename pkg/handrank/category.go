package handrank

import "fmt"

// Category is a poker hand category, i.e., straight flush
type Category int

// Category constants
const (
	NoCards Category = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case NoCards:
		return "No cards"
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Value is the base chips and multiplier a category scores
type Value struct {
	Chips      int `json:"chips"`
	Multiplier int `json:"multiplier"`
}

var values = map[Category]Value{
	NoCards:       {Chips: 0, Multiplier: 0},
	HighCard:      {Chips: 5, Multiplier: 1},
	OnePair:       {Chips: 10, Multiplier: 2},
	TwoPair:       {Chips: 15, Multiplier: 2},
	ThreeOfAKind:  {Chips: 20, Multiplier: 3},
	Straight:      {Chips: 30, Multiplier: 4},
	Flush:         {Chips: 35, Multiplier: 4},
	FullHouse:     {Chips: 40, Multiplier: 4},
	FourOfAKind:   {Chips: 60, Multiplier: 7},
	StraightFlush: {Chips: 100, Multiplier: 8},
}

// CategoryValue returns the base chips and multiplier for the category
func CategoryValue(c Category) Value {
	return values[c]
}

// Categories returns the scoreable categories from strongest to weakest.
// Intended for a rules-reference display.
func Categories() []Category {
	return []Category{
		StraightFlush,
		FourOfAKind,
		FullHouse,
		Flush,
		Straight,
		ThreeOfAKind,
		TwoPair,
		OnePair,
		HighCard,
	}
}
