package game

import (
	"fmt"

	"fivecarddraw/internal/rng"
	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/poker"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game is a single round of five-card poker.
// It owns its deck and hands and is discarded once the winner is known.
type Game struct {
	id      uuid.UUID
	options Options
	gen     rng.Generator
	deck    *deck.Deck
	result  *Result

	logger logrus.FieldLogger
}

// Result is the outcome of a round. Winner is an index into Hands.
type Result struct {
	ID       string
	Hands    []*poker.Hand
	Winner   int
	DeckHash string
}

// WinningHand returns the hand of the winner
func (r *Result) WinningHand() *poker.Hand {
	return r.Hands[r.Winner]
}

// New returns a new game. If gen is nil, a crypto source is used to shuffle.
func New(logger logrus.FieldLogger, gen rng.Generator, opts Options) (*Game, error) {
	if opts.PlayerCount < MinPlayers || opts.PlayerCount > MaxPlayers || opts.PlayerCount*poker.HandSize > deck.Size {
		return nil, PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: opts.PlayerCount,
		}
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	id := uuid.New()
	return &Game{
		id:      id,
		options: opts,
		gen:     gen,
		deck:    deck.New(),
		logger:  logger.WithField("game", id.String()),
	}, nil
}

// ID returns the unique id of the round
func (g *Game) ID() string {
	return g.id.String()
}

// PlayerCount returns the number of hands that will be dealt
func (g *Game) PlayerCount() int {
	return g.options.PlayerCount
}

// Play shuffles the deck, deals a hand to each player in order and picks the winner.
// A tie goes to the player who was dealt first.
func (g *Game) Play() (*Result, error) {
	if g.result != nil {
		return nil, ErrAlreadyPlayed
	}

	g.deck.Shuffle(g.gen)
	deckHash := g.deck.HashCode()
	g.logger.WithField("deckHash", deckHash).Debug("shuffled deck")

	hands := make([]*poker.Hand, 0, g.options.PlayerCount)
	for i := 0; i < g.options.PlayerCount; i++ {
		hand, err := poker.DealHand(g.deck)
		if err != nil {
			return nil, fmt.Errorf("could not deal hand to player %d: %w", i+1, err)
		}

		g.logger.WithFields(logrus.Fields{
			"player":    i + 1,
			"hand":      deck.CardsToString(hand.Cards()),
			"category":  hand.Category().String(),
			"highValue": hand.HighValue().String(),
		}).Debug("dealt hand")

		hands = append(hands, hand)
	}

	winner := PickWinner(hands)

	g.result = &Result{
		ID:       g.ID(),
		Hands:    hands,
		Winner:   winner,
		DeckHash: deckHash,
	}

	g.logger.WithFields(logrus.Fields{
		"player":    winner + 1,
		"category":  hands[winner].Category().String(),
		"highValue": hands[winner].HighValue().String(),
	}).Info("round complete")

	return g.result, nil
}

// Result returns the result of the round, or nil if it hasn't been played
func (g *Game) Result() *Result {
	return g.result
}

// PickWinner returns the index of the best hand. Ties go to the lowest index.
// It returns -1 if there are no hands.
func PickWinner(hands []*poker.Hand) int {
	winner := -1
	for i, hand := range hands {
		if winner < 0 || hand.Beats(hands[winner]) {
			winner = i
		}
	}

	return winner
}
