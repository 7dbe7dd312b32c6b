package poker

import (
	"errors"
	"fmt"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrInsufficientCards is returned when fewer than five cards are available for a hand
var ErrInsufficientCards = errors.New("not enough cards to make a hand")

// ErrInvalidHand is returned when the cards cannot form a hand (too many, duplicates, bad values)
var ErrInvalidHand = errors.New("invalid hand")

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for category, weakest to strongest
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}
