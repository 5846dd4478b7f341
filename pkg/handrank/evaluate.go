package handrank

import (
	"sort"

	"blindpoker/pkg/deck"
)

// Hand is the result of evaluating a set of played cards
type Hand struct {
	Category   Category `json:"category"`
	Name       string   `json:"name"`
	ChipValue  int      `json:"chipValue"`
	Multiplier int      `json:"multiplier"`

	// Scores contains all input rank values sorted descending, for kicker comparisons
	Scores []int `json:"scores"`

	// ScoringRanks are the ranks that formed the category, one entry per matching card
	ScoringRanks []deck.Rank `json:"scoringRanks"`

	// NonScoringRanks are the input ranks left over after the scoring ranks are removed
	NonScoringRanks []deck.Rank `json:"nonScoringRanks"`
}

// Evaluate classifies one to five cards into the best matching category.
// Straight and flush detection requires exactly five cards; the pair-family
// categories match on any input size. An empty input returns the NoCards
// sentinel, which is not reachable through guarded play.
func Evaluate(cards []*deck.Card) *Hand {
	if len(cards) == 0 {
		return &Hand{
			Category:        NoCards,
			Name:            NoCards.String(),
			Scores:          []int{},
			ScoringRanks:    []deck.Rank{},
			NonScoringRanks: []deck.Rank{},
		}
	}

	ranks := make([]deck.Rank, len(cards))
	for i, card := range cards {
		ranks[i] = card.Rank
	}
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i] < ranks[j]
	})

	scores := make([]int, len(ranks))
	for i, rank := range ranks {
		scores[i] = int(rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))

	if len(cards) == 5 {
		flush := isFlush(cards)
		straight := isStraight(ranks)

		switch {
		case flush && straight:
			return newHand(StraightFlush, ranks, ranks, scores)
		case flush:
			return newHand(Flush, ranks, ranks, scores)
		case straight:
			return newHand(Straight, ranks, ranks, scores)
		}
	}

	quads := ranksWithCount(ranks, 4)
	trips := ranksWithCount(ranks, 3)
	pairs := ranksWithCount(ranks, 2)

	switch {
	case len(quads) > 0:
		return newHand(FourOfAKind, ranks, quads, scores)
	case len(trips) > 0 && len(pairs) > 0:
		return newHand(FullHouse, ranks, append(trips, pairs...), scores)
	case len(trips) > 0:
		return newHand(ThreeOfAKind, ranks, trips, scores)
	case len(pairs) == 4:
		return newHand(TwoPair, ranks, pairs, scores)
	case len(pairs) > 0:
		return newHand(OnePair, ranks, pairs, scores)
	}

	high := ranks[len(ranks)-1]
	return newHand(HighCard, ranks, []deck.Rank{high}, scores)
}

func newHand(category Category, allRanks, scoringRanks []deck.Rank, scores []int) *Hand {
	value := CategoryValue(category)

	return &Hand{
		Category:        category,
		Name:            category.String(),
		ChipValue:       value.Chips,
		Multiplier:      value.Multiplier,
		Scores:          scores,
		ScoringRanks:    scoringRanks,
		NonScoringRanks: multisetDifference(allRanks, scoringRanks),
	}
}

// ranksWithCount returns the ranks appearing exactly count times, with each
// matching rank listed once per occurrence, ascending
func ranksWithCount(sortedRanks []deck.Rank, count int) []deck.Rank {
	counts := make(map[deck.Rank]int)
	for _, rank := range sortedRanks {
		counts[rank]++
	}

	var matched []deck.Rank
	for _, rank := range sortedRanks {
		if counts[rank] == count {
			matched = append(matched, rank)
		}
	}

	return matched
}

// multisetDifference removes one occurrence from all for each scoring rank
func multisetDifference(all, scoring []deck.Rank) []deck.Rank {
	remaining := make([]deck.Rank, len(all))
	copy(remaining, all)

	for _, rank := range scoring {
		for i, r := range remaining {
			if r == rank {
				remaining = append(remaining[0:i], remaining[i+1:]...)
				break
			}
		}
	}

	return remaining
}

func isFlush(cards []*deck.Card) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// isStraight expects exactly five ranks sorted ascending. The wheel
// (2,3,4,5,A) counts as a straight.
func isStraight(ranks []deck.Rank) bool {
	consecutive := true
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			consecutive = false
			break
		}
	}

	if consecutive {
		return true
	}

	return ranks[0] == deck.Two &&
		ranks[1] == deck.Three &&
		ranks[2] == deck.Four &&
		ranks[3] == deck.Five &&
		ranks[4] == deck.Ace
}
