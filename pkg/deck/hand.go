package deck

import "sort"

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Remove will remove the specified card from the hand
// Returns true if the card was found and removed
func (h *Hand) Remove(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[0:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// SortByRank sorts the hand by rank ascending, breaking ties on the fixed suit order
func (h Hand) SortByRank() {
	sort.SliceStable(h, func(i, j int) bool {
		if h[i].Rank != h[j].Rank {
			return h[i].Rank < h[j].Rank
		}

		return suitOrder[h[i].Suit] < suitOrder[h[j].Suit]
	})
}

// SortBySuit sorts the hand by the fixed suit order, breaking ties on rank ascending
func (h Hand) SortBySuit() {
	sort.SliceStable(h, func(i, j int) bool {
		if h[i].Suit != h[j].Suit {
			return suitOrder[h[i].Suit] < suitOrder[h[j].Suit]
		}

		return h[i].Rank < h[j].Rank
	})
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
