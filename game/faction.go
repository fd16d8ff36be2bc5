package game

import "fmt"

// Faction is one of the two sides of the game.
type Faction int

const (
	Allies Faction = iota
	Axis
)

var factionNames = map[string]Faction{
	"allies": Allies,
	"axis":   Axis,
}

func (f Faction) String() string {
	switch f {
	case Allies:
		return "Allies"
	case Axis:
		return "Axis"
	default:
		return fmt.Sprintf("Faction(%d)", int(f))
	}
}

// Opposes reports whether f and other are enemies.
func (f Faction) Opposes(other Faction) bool {
	return f != other
}

// ParseFaction converts a faction name (case insensitive) to a Faction.
func ParseFaction(name string) (Faction, error) {
	return parseName(factionNames, name, ErrUnknownFaction)
}
