package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	deck := New()

	a.Equal(52, deck.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Spades}, *deck.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Diamonds}, *deck.Cards[51])

	assertFullSet(t, deck.Cards)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.SetSeed(1)
	before := d1.HashCode()
	d1.Shuffle()
	a.NotEqual(before, d1.HashCode())
	assertFullSet(t, d1.Cards)

	// same seed yields the same order
	d2 := New()
	d2.SetSeed(1)
	d2.Shuffle()
	a.Equal(d1.HashCode(), d2.HashCode())

	// a different seed yields a different order
	d3 := New()
	d3.SetSeed(2)
	d3.Shuffle()
	a.NotEqual(d1.HashCode(), d3.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}
}

func TestDeck_DrawCount(t *testing.T) {
	a := assert.New(t)
	deck := New()

	cards, err := deck.DrawCount(8)
	a.NoError(err)
	a.Equal(8, len(cards))
	a.Equal(44, deck.CardsLeft())
	a.Equal("2s,3s,4s,5s,6s,7s,8s,9s", CardsToString(cards))

	_, err = deck.DrawCount(45)
	a.Equal(ErrEndOfDeck, err)
	a.Equal(44, deck.CardsLeft())
}

func TestDeck_ReturnToBottom(t *testing.T) {
	a := assert.New(t)
	deck := New()
	deck.SetSeed(0)

	drawn, err := deck.DrawCount(5)
	a.NoError(err)
	a.Equal(47, deck.CardsLeft())

	deck.ReturnToBottom(drawn)
	a.Equal(52, deck.CardsLeft())
	a.Equal("2s,3s,4s,5s,6s", CardsToString(deck.Cards[47:]))
	assertFullSet(t, deck.Cards)

	deck.Shuffle()
	assertFullSet(t, deck.Cards)
}

func TestDeck_RemoveCard(t *testing.T) {
	a := assert.New(t)
	d := New()
	a.True(d.RemoveCard(CardFromString("5s")))
	a.False(d.RemoveCard(CardFromString("5s")))
	a.Equal(51, len(d.Cards))

	a.True(d.RemoveCard(CardFromString("5c")))
	a.False(d.RemoveCard(CardFromString("5c")))
	a.Equal(50, len(d.Cards))
}

func TestDeck_ShuffleUniformity(t *testing.T) {
	// over many seeded shuffles, each card should land in the first
	// position a roughly uniform number of times
	counts := make(map[int]int)
	const trials = 5200

	for seed := int64(1); seed <= trials; seed++ {
		d := New()
		d.SetSeed(seed)
		d.Shuffle()
		counts[d.Cards[0].Index()]++
	}

	for index, count := range counts {
		if count < 50 || count > 150 {
			t.Errorf("card index %d appeared first %d times, expected ~100", index, count)
		}
	}
}

// assertFullSet asserts the cards are exactly the 52 canonical cards
func assertFullSet(t *testing.T, cards []*Card) {
	t.Helper()

	assert.Equal(t, 52, len(cards))

	seen := make(map[int]bool)
	for _, card := range cards {
		index := card.Index()
		assert.False(t, seen[index], "duplicate card: %s", card)
		seen[index] = true
	}

	assert.Equal(t, 52, len(seen))
}
