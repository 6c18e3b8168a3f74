package config

import "strings"

// PlayerKind selects who makes the moves for one side.
type PlayerKind int

const (
	EnginePlayer PlayerKind = iota
	RandomPlayer
	HumanPlayer
)

var playerNames = map[string]PlayerKind{
	"engine": EnginePlayer,
	"random": RandomPlayer,
	"human":  HumanPlayer,
}

// String returns the flag name of the player kind.
func (k PlayerKind) String() string {
	for name, kind := range playerNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// ParsePlayerKind reads engine, random or human.
func ParsePlayerKind(s string) (PlayerKind, error) {
	kind, ok := playerNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, invalid("unknown player %q (want engine, random or human)", s)
	}
	return kind, nil
}

// PlayConfig holds settings for a played game.
type PlayConfig struct {
	// Enabled runs a game instead of a single search.
	Enabled bool

	White PlayerKind
	Black PlayerKind

	// MaxPlies ends the game unfinished after this many half-moves.
	MaxPlies int

	// Seed seeds the random player.
	Seed int64
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		White:    EnginePlayer,
		Black:    EnginePlayer,
		MaxPlies: 400,
		Seed:     1,
	}
}

// SetPlayers parses "white,black", for example "human,engine".
func (c *PlayConfig) SetPlayers(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return invalid("players %q must be two comma-separated names", s)
	}
	white, err := ParsePlayerKind(parts[0])
	if err != nil {
		return err
	}
	black, err := ParsePlayerKind(parts[1])
	if err != nil {
		return err
	}
	c.White, c.Black = white, black
	return nil
}

// Validate checks the play settings.
func (c *PlayConfig) Validate() error {
	if c.MaxPlies < 1 {
		return invalid("max plies must be at least 1, got %d", c.MaxPlies)
	}
	return nil
}
