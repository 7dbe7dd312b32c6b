package poker

import (
	"sort"

	"fivecarddraw/pkg/deck"
)

// Analysis is the result of classifying five cards
type Analysis struct {
	Category  Category
	HighValue deck.Rank
}

// HandAnalyzer can analyze a five card hand
type HandAnalyzer struct {
	// sorted ascending
	cards [HandSize]deck.Card

	// number of cards per rank, indexed by rank
	counts [deck.Ace + 1]int

	// ranks of each group, highest first
	quads []deck.Rank
	trips []deck.Rank
	pairs []deck.Rank

	straight deck.Rank
	flush    bool

	analysis Analysis
}

// NewHandAnalyzer will return a new HandAnalyzer instance.
// The cards are copied and sorted; the caller's array is left untouched.
func NewHandAnalyzer(cards [HandSize]deck.Card) *HandAnalyzer {
	h := &HandAnalyzer{
		cards: cards,
	}

	sort.Sort(sortByRank(h.cards[:]))

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// Analyze returns the category and high value of the five cards
func Analyze(cards [HandSize]deck.Card) Analysis {
	return NewHandAnalyzer(cards).GetAnalysis()
}

// analyzeHand counts ranks and looks for flushes and straights
func (h *HandAnalyzer) analyzeHand() {
	for _, card := range h.cards {
		h.counts[card.Rank]++
	}

	// walk from the top so the groups come out highest first
	for rank := deck.Ace; rank >= deck.Two; rank-- {
		switch h.counts[rank] {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}

	h.flush = h.checkFlush()
	h.straight = h.checkStraight()
}

func (h *HandAnalyzer) checkFlush() bool {
	suit := h.cards[0].Suit
	for _, card := range h.cards[1:] {
		if card.Suit != suit {
			return false
		}
	}

	return true
}

// checkStraight returns the high rank of the straight, or 0 if there isn't one.
// An ace only plays low in 2-3-4-5-A, which is five high.
func (h *HandAnalyzer) checkStraight() deck.Rank {
	for i := 1; i < HandSize; i++ {
		if h.cards[i].Rank == h.cards[i-1].Rank {
			return 0
		}
	}

	low, high := h.cards[0].Rank, h.cards[HandSize-1].Rank
	if high-low == HandSize-1 {
		return high
	}

	if high == deck.Ace && low == deck.Two && h.cards[HandSize-2].Rank == deck.Five {
		return deck.Five
	}

	return 0
}

// GetAnalysis returns the category and the rank used to break ties within it
func (h *HandAnalyzer) GetAnalysis() Analysis {
	return h.analysis
}

// GetCategory will return the category of the hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.analysis.Category
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.flush && h.straight == deck.Ace
}

// GetStraightFlush will return the high rank of the straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (deck.Rank, bool) {
	if h.flush && h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (deck.Rank, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and pair ranks of a full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]deck.Rank, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return nil, false
	}

	return []deck.Rank{h.trips[0], h.pairs[0]}, true
}

// GetFlush will return the top rank of the flush, if possible
func (h *HandAnalyzer) GetFlush() (deck.Rank, bool) {
	if h.flush {
		return h.cards[HandSize-1].Rank, true
	}

	return 0, false
}

// GetStraight will return the high rank of the straight, if possible
func (h *HandAnalyzer) GetStraight() (deck.Rank, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (deck.Rank, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return both pair ranks, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]deck.Rank, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (deck.Rank, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the high card
func (h *HandAnalyzer) GetHighCard() deck.Rank {
	return h.cards[HandSize-1].Rank
}

// calculateHand will determine the category and high value
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.analysis = Analysis{Category: RoyalFlush, HighValue: deck.Ace}
	} else if r, ok := h.GetStraightFlush(); ok {
		h.analysis = Analysis{Category: StraightFlush, HighValue: r}
	} else if r, ok := h.GetFlush(); ok {
		// five suited cards can't share a rank, so grouping doesn't matter here
		h.analysis = Analysis{Category: Flush, HighValue: r}
	} else if r, ok := h.GetStraight(); ok {
		h.analysis = Analysis{Category: Straight, HighValue: r}
	} else if r, ok := h.GetFourOfAKind(); ok {
		h.analysis = Analysis{Category: FourOfAKind, HighValue: r}
	} else if r, ok := h.GetFullHouse(); ok {
		h.analysis = Analysis{Category: FullHouse, HighValue: r[0]}
	} else if r, ok := h.GetThreeOfAKind(); ok {
		h.analysis = Analysis{Category: ThreeOfAKind, HighValue: r}
	} else if r, ok := h.GetTwoPair(); ok {
		h.analysis = Analysis{Category: TwoPair, HighValue: r[0]}
	} else if r, ok := h.GetPair(); ok {
		h.analysis = Analysis{Category: OnePair, HighValue: r}
	} else {
		h.analysis = Analysis{Category: HighCard, HighValue: h.GetHighCard()}
	}
}
