package poker

import "fivecarddraw/pkg/deck"

// sortByRank sorts ascending by rank, with suit breaking ties
type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Less(s[j])
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
