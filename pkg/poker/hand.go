package poker

import (
	"fmt"
	"sort"

	"fivecarddraw/pkg/deck"
)

// Hand is five cards along with their classification.
// A hand never changes after it has been created.
type Hand struct {
	cards     [HandSize]deck.Card
	category  Category
	highValue deck.Rank
}

// NewHand creates a hand from exactly five distinct cards
func NewHand(cards []deck.Card) (*Hand, error) {
	if len(cards) < HandSize {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientCards, HandSize, len(cards))
	}

	if len(cards) > HandSize {
		return nil, fmt.Errorf("%w: need %d cards, got %d", ErrInvalidHand, HandSize, len(cards))
	}

	var five [HandSize]deck.Card
	for i, card := range cards {
		if !card.Rank.Valid() || card.Suit < deck.Clubs || card.Suit > deck.Spades {
			return nil, fmt.Errorf("%w: unknown card %d/%d", ErrInvalidHand, card.Rank, card.Suit)
		}

		for _, prev := range five[:i] {
			if prev == card {
				return nil, fmt.Errorf("%w: %s appears more than once", ErrInvalidHand, card)
			}
		}

		five[i] = card
	}

	sort.Sort(sortByRank(five[:]))
	analysis := Analyze(five)

	return &Hand{
		cards:     five,
		category:  analysis.Category,
		highValue: analysis.HighValue,
	}, nil
}

// DealHand draws five cards from the deck and creates a hand
func DealHand(d *deck.Deck) (*Hand, error) {
	if !d.CanDraw(HandSize) {
		return nil, fmt.Errorf("%w: deck has %d cards left", ErrInsufficientCards, d.CardsLeft())
	}

	cards := make([]deck.Card, 0, HandSize)
	for i := 0; i < HandSize; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, fmt.Errorf("could not deal card %d: %w", i+1, err)
		}

		cards = append(cards, card)
	}

	return NewHand(cards)
}

// Cards returns the cards in ascending order
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, HandSize)
	copy(cards, h.cards[:])

	return cards
}

// Category returns the category of the hand
func (h *Hand) Category() Category {
	return h.category
}

// HighValue returns the rank used to break ties between hands of the same category
func (h *Hand) HighValue() deck.Rank {
	return h.highValue
}

// Compare returns 1 if h beats other, -1 if other beats h, and 0 on a tie.
// Only the category and the high value are considered; kickers are not.
func (h *Hand) Compare(other *Hand) int {
	switch {
	case h.category > other.category:
		return 1
	case h.category < other.category:
		return -1
	case h.highValue > other.highValue:
		return 1
	case h.highValue < other.highValue:
		return -1
	}

	return 0
}

// Beats returns true if h is strictly better than other
func (h *Hand) Beats(other *Hand) bool {
	return h.Compare(other) > 0
}

// Summary returns the category and high value, i.e., "Full House - Seven"
func (h *Hand) Summary() string {
	return fmt.Sprintf("%s - %s", h.category, h.highValue)
}

func (h *Hand) String() string {
	return fmt.Sprintf("%s (%s)", deck.CardsToString(h.cards[:]), h.Summary())
}
