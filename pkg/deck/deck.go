package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"blindpoker/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards in canonical suit-major order.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// SetRNG overrides the deck's random source
func (d *Deck) SetRNG(g rng.Generator) {
	d.rng = g
}

// SetSeed swaps the random source for a deterministic, seeded one.
// This should only be used by tests and replayable simulations.
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.NewSeeded(seed)
}

// Shuffle performs a backward Fisher-Yates pass over the remaining cards.
// Every permutation of the current cards is equally likely. The deck is not
// rebuilt; cards previously drawn stay out until returned.
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawCount will draw the next count cards from the top of the deck
func (d *Deck) DrawCount(count int) ([]*Card, error) {
	if !d.CanDraw(count) {
		return nil, ErrEndOfDeck
	}

	cards := make([]*Card, count)
	copy(cards, d.Cards[0:count])
	d.Cards = d.Cards[count:]

	return cards, nil
}

// ReturnToBottom places the cards at the bottom of the deck
func (d *Deck) ReturnToBottom(cards []*Card) {
	d.Cards = append(d.Cards, cards...)
}

// RemoveCard removes the card from the deck
// Returns true if the card was found and removed
func (d *Deck) RemoveCard(card *Card) bool {
	for i, c := range d.Cards {
		if c.Equal(card) {
			d.Cards = append(d.Cards[0:i], d.Cards[i+1:]...)
			return true
		}
	}

	return false
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
