package game

import "fmt"

// Terrain is the ground type of a tile.
type Terrain int

const (
	Plain Terrain = iota
	Forest
	River
	Town
)

var terrainNames = map[string]Terrain{
	"plain":  Plain,
	"forest": Forest,
	"river":  River,
	"town":   Town,
}

func (t Terrain) String() string {
	switch t {
	case Plain:
		return "Plain"
	case Forest:
		return "Forest"
	case River:
		return "River"
	case Town:
		return "Town"
	default:
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
}

// ParseTerrain converts a terrain name (case insensitive) to a Terrain.
func ParseTerrain(name string) (Terrain, error) {
	return parseName(terrainNames, name, ErrUnknownTerrain)
}

// Impassable reports whether the terrain alone forbids entry. A bridge
// lifts the restriction, see Tile.BlocksMovement.
func (t Terrain) Impassable() bool {
	return t == River
}

// StopsMovement reports whether a unit entering the terrain must end its move.
func (t Terrain) StopsMovement() bool {
	return t == Forest || t == Town
}

// BlocksSight reports whether the terrain hides whatever lies beyond it.
// Features never affect sight.
func (t Terrain) BlocksSight() bool {
	return t == Forest || t == Town
}

// Protection is the number of dice removed from an attack against a unit
// of the given type standing on this terrain.
func (t Terrain) Protection(target UnitType) int {
	switch t {
	case Forest, Town:
		switch target {
		case Infantry:
			return 1
		case Armor:
			return 2
		}
	}
	return 0
}
