package game

import (
	"errors"
	"fmt"
)

// ErrAlreadyPlayed is returned when Play() is called on a game that has already been played
var ErrAlreadyPlayed = errors.New("round has already been played")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}
