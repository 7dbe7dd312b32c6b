package game

// player limits
const (
	MinPlayers     = 1
	MaxPlayers     = 4
	DefaultPlayers = MaxPlayers
)

// Options are options for creating a new game
type Options struct {
	PlayerCount int // Default: 4
}

// DefaultOptions returns the default options for a game
func DefaultOptions() Options {
	return Options{
		PlayerCount: DefaultPlayers,
	}
}
