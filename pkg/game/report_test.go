package game

import (
	"strings"
	"testing"

	"fivecarddraw/pkg/poker"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func testResult(t *testing.T) *Result {
	return &Result{
		ID: "test",
		Hands: []*poker.Hand{
			handFromString(t, "2c,5d,9h,11s,13c"),
			handFromString(t, "3c,3d,7h,7s,7c"),
		},
		Winner: 1,
	}
}

func TestWriteReport(t *testing.T) {
	var b strings.Builder
	assert.NoError(t, WriteReport(&b, testResult(t)))

	expected := `Hand 1
Two of Clubs
Five of Diamonds
Nine of Hearts
Jack of Spades
King of Clubs
High Card - King

Hand 2
Three of Clubs
Three of Diamonds
Seven of Clubs
Seven of Hearts
Seven of Spades
Full House - Seven

-------------------
Winning Hand number 2:

Three of Clubs
Three of Diamonds
Seven of Clubs
Seven of Hearts
Seven of Spades
Full House - Seven
`
	assert.Equal(t, expected, b.String())
}

func TestWriteHand(t *testing.T) {
	var b strings.Builder
	assert.NoError(t, WriteHand(&b, handFromString(t, "10s,11s,12s,13s,14s")))
	assert.Equal(t, "Ten of Spades\nJack of Spades\nQueen of Spades\nKing of Spades\nAce of Spades\nRoyal Flush - Ace\n", b.String())
}

func TestRenderStyled(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	out := RenderStyled(testResult(t))
	assert.Contains(t, out, "High Card - King")
	assert.Equal(t, 2, strings.Count(out, "Full House - Seven"))
	assert.Contains(t, out, "3♣ 3♢ 7♣ 7♡ 7♠")
	assert.Contains(t, out, "WINNER: HAND 2")
}
