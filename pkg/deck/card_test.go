package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_ChipValue(t *testing.T) {
	a := assert.New(t)

	a.Equal(2, CardFromString("2c").ChipValue())
	a.Equal(9, CardFromString("9d").ChipValue())
	a.Equal(10, CardFromString("10h").ChipValue())
	a.Equal(10, CardFromString("11s").ChipValue())
	a.Equal(10, CardFromString("12c").ChipValue())
	a.Equal(10, CardFromString("13d").ChipValue())
	a.Equal(11, CardFromString("14h").ChipValue())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCard_Index(t *testing.T) {
	a := assert.New(t)

	seen := make(map[int]bool)
	for _, card := range New().Cards {
		index := card.Index()
		a.GreaterOrEqual(index, 0)
		a.Less(index, 52)
		a.False(seen[index])
		seen[index] = true
	}

	a.Equal(0, CardFromString("2s").Index())
	a.Equal(12, CardFromString("14s").Index())
	a.Equal(51, CardFromString("14d").Index())
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2♣", CardFromString("2c").String())
	a.Equal("T♢", CardFromString("10d").String())
	a.Equal("J♡", CardFromString("11h").String())
	a.Equal("Q♠", CardFromString("12s").String())
	a.Equal("K♣", CardFromString("13c").String())
	a.Equal("A♠", CardFromString("14s").String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(&Card{Rank: Two, Suit: Clubs}, CardFromString("2c"))
	a.Equal(&Card{Rank: Ace, Suit: Spades}, CardFromString("14s"))
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("1x")
	})

	a.Panics(func() {
		CardFromString("15c")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,3h,14s")
	a.Equal(3, len(cards))
	a.Equal("2c,3h,14s", CardsToString(cards))
	a.Equal(0, len(CardsFromString("")))
}
