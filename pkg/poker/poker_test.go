package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("High Card", HighCard.String())
	a.Equal("One Pair", OnePair.String())
	a.Equal("Two Pair", TwoPair.String())
	a.Equal("Three of a Kind", ThreeOfAKind.String())
	a.Equal("Straight", Straight.String())
	a.Equal("Flush", Flush.String())
	a.Equal("Full House", FullHouse.String())
	a.Equal("Four of a Kind", FourOfAKind.String())
	a.Equal("Straight Flush", StraightFlush.String())
	a.Equal("Royal Flush", RoyalFlush.String())

	a.PanicsWithValue("unknown category: -1", func() {
		_ = Category(-1).String()
	})
}

func TestCategory_Order(t *testing.T) {
	order := []Category{HighCard, OnePair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush}
	for i := 1; i < len(order); i++ {
		assert.Less(t, int(order[i-1]), int(order[i]))
	}
}
