package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"fivecarddraw/internal/rng"
)

// Size is the number of cards in a standard deck
const Size = 52

// ErrEmptyDeck is an error when Draw() is attempted and every card has been drawn
var ErrEmptyDeck = errors.New("every card in the deck has been drawn")

// Deck represents a playing deck
// Cards keep their position when drawn; a parallel flag tracks what has been dealt.
type Deck struct {
	cards []Card
	drawn []bool
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{
		cards: cards,
		drawn: make([]bool, len(cards)),
	}
}

// Shuffle will shuffle the order of the cards using gen.
// Cards that have already been drawn stay drawn.
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		d.drawn[i], d.drawn[j] = d.drawn[j], d.drawn[i]
	}
}

// Draw will draw the first card that hasn't been drawn yet.
// If there are no more cards, ErrEmptyDeck is returned.
func (d *Deck) Draw() (Card, error) {
	for i, drawn := range d.drawn {
		if drawn {
			continue
		}

		d.drawn[i] = true
		return d.cards[i], nil
	}

	return Card{}, ErrEmptyDeck
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return d.CardsLeft() >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	n := 0
	for _, drawn := range d.drawn {
		if !drawn {
			n++
		}
	}

	return n
}

// Cards returns a copy of the cards in their current order, drawn or not
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)

	return cards
}

// HashCode returns a SHA1 hash code of the deck order.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
