package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Rank is the face value of a card
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks returns every rank in ascending order
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}

	return ranks
}

// Valid returns true if the rank is between Two and Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the name of the rank, i.e., "Queen"
func (r Rank) String() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		panic(fmt.Sprintf("unknown rank: %d", int(r)))
	}
}

// Suit represents a card suit
type Suit int

// suit constants, in tie-break order
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits returns every suit in ascending order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		panic(fmt.Sprintf("unknown suit: %d", int(s)))
	}
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Compare orders cards by rank, then by suit.
// It returns -1, 0 or 1.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	}

	return 0
}

// Less returns true if c sorts before other
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// String returns the long form of the card, i.e., "Ace of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Symbol returns the short form of the card, i.e., "A♠"
func (c Card) Symbol() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(int(c.Rank))
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return rank + suit
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// ParseCard parses a card in the format of <rank><suit> where rank >= 2 and <= 14
// and suit is one of [cdhs], i.e., "14s" is the Ace of Spades
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: Rank(rank), Suit: suit}, nil
}

// ParseCards parses a comma separated list of cards, i.e., "2c,3h,14s"
func ParseCards(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		card, err := ParseCard(part)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString is like ParseCard, but panics on error.
// Only use this with known-good input (tests, fixtures)
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString is like ParseCards, but panics on error
func CardsFromString(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
