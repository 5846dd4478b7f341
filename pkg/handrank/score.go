package handrank

import "blindpoker/pkg/deck"

// CardChips returns the chips the played cards themselves contribute.
// High card counts only the single best card by chip value; every other
// category counts each played card whose rank is among the scoring ranks.
func CardChips(h *Hand, played []*deck.Card) int {
	if len(played) == 0 {
		return 0
	}

	if h.Category == HighCard {
		best := played[0]
		for _, card := range played[1:] {
			if card.ChipValue() > best.ChipValue() {
				best = card
			}
		}

		return best.ChipValue()
	}

	scoring := make(map[deck.Rank]bool)
	for _, rank := range h.ScoringRanks {
		scoring[rank] = true
	}

	chips := 0
	for _, card := range played {
		if scoring[card.Rank] {
			chips += card.ChipValue()
		}
	}

	return chips
}

// Score returns the round score delta for a played hand:
// base chips times the multiplier, plus the card chips.
func Score(h *Hand, played []*deck.Card) int {
	return h.ChipValue*h.Multiplier + CardChips(h, played)
}
