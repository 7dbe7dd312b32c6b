package game

import (
	"fmt"
	"io"
	"strings"

	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/poker"

	"github.com/pterm/pterm"
)

const winnerDivider = "-------------------"

// WriteReport writes each hand followed by the winning hand as plain text
func WriteReport(w io.Writer, r *Result) error {
	var b strings.Builder
	for i, hand := range r.Hands {
		fmt.Fprintf(&b, "Hand %d\n", i+1)
		writeHand(&b, hand)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\nWinning Hand number %d:\n\n", winnerDivider, r.Winner+1)
	writeHand(&b, r.WinningHand())

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteHand writes a single hand as plain text
func WriteHand(w io.Writer, hand *poker.Hand) error {
	var b strings.Builder
	writeHand(&b, hand)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeHand(b *strings.Builder, hand *poker.Hand) {
	for _, card := range hand.Cards() {
		b.WriteString(card.String())
		b.WriteString("\n")
	}

	b.WriteString(hand.Summary())
	b.WriteString("\n")
}

// RenderStyled renders the result with boxes and colors for a terminal
func RenderStyled(r *Result) string {
	boxes := make([]string, 0, len(r.Hands)+1)
	for i, hand := range r.Hands {
		title := fmt.Sprintf("Hand %d", i+1)
		if i == r.Winner {
			title = pterm.LightGreen(title + " ★")
		}

		boxes = append(boxes, styledHand(title, hand))
	}

	winner := pterm.LightGreen(fmt.Sprintf("|WINNER: HAND %d|", r.Winner+1))
	boxes = append(boxes, styledHand(winner, r.WinningHand()))

	return strings.Join(boxes, "\n")
}

// RenderStyledHand renders a single hand with a box around it
func RenderStyledHand(title string, hand *poker.Hand) string {
	return styledHand(title, hand)
}

func styledHand(title string, hand *poker.Hand) string {
	cards := hand.Cards()
	symbols := make([]string, len(cards))
	for i, card := range cards {
		symbols[i] = styledCard(card)
	}

	body := pterm.Sprintf("%s\n%s", strings.Join(symbols, " "), pterm.LightCyan(hand.Summary()))
	return pterm.DefaultBox.
		WithTitle(title).
		WithTitleTopLeft().
		WithLeftPadding(2).
		WithRightPadding(2).
		Sprint(body)
}

func styledCard(card deck.Card) string {
	switch card.Suit {
	case deck.Hearts, deck.Diamonds:
		return pterm.LightRed(card.Symbol())
	default:
		return pterm.LightWhite(card.Symbol())
	}
}
