package game

import (
	"fmt"

	"wargame/hex"
)

// VictoryPoint marks an objective on a tile.
type VictoryPoint int

const (
	HoldPoint VictoryPoint = iota
)

var victoryNames = map[string]VictoryPoint{
	"holdpoint": HoldPoint,
}

// ParseVictoryPoint converts a victory point name (case insensitive).
func ParseVictoryPoint(name string) (VictoryPoint, error) {
	return parseName(victoryNames, name, ErrUnknownVictory)
}

func (v VictoryPoint) String() string {
	if v == HoldPoint {
		return "HoldPoint"
	}
	return fmt.Sprintf("VictoryPoint(%d)", int(v))
}

// Tile is one cell of the board.
type Tile struct {
	pos hex.Hex

	Terrain  Terrain
	Features FeatureSet
	Unit     *Unit
	Victory  *VictoryPoint

	// View annotations for the renderer. They carry no rules and are
	// cleared by Board.ResetView.
	Selected bool
	Distance *int // steps needed to move here from the selected tile
	Dice     *int // dice the selected unit would roll against this tile
}

// Pos is the coordinate of the tile.
func (t Tile) Pos() hex.Hex {
	return t.pos
}

// Occupied reports whether a unit stands on the tile.
func (t Tile) Occupied() bool {
	return t.Unit != nil
}

// BlocksMovement reports whether the ground forbids entry. Occupancy is
// checked separately.
func (t Tile) BlocksMovement() bool {
	return t.Terrain.Impassable() && !t.Features.Has(Bridge)
}

// StopsMovement reports whether a unit of the given type entering the tile
// must end its move there.
func (t Tile) StopsMovement(kind UnitType) bool {
	return t.Terrain.StopsMovement() || t.Features.StopsMovement(kind)
}

// BlocksSight reports whether the tile hides what lies beyond it.
func (t Tile) BlocksSight() bool {
	return t.Terrain.BlocksSight()
}

// Protection is the dice reduction granted by terrain or features,
// whichever is larger, to a defender of the given type.
func (t Tile) Protection(target UnitType) (terrain, features int) {
	return t.Terrain.Protection(target), t.Features.Protection()
}

// RemoveUnit takes the unit off the tile. Sandbags belong to the occupant
// and go with it.
func (t *Tile) RemoveUnit() *Unit {
	u := t.Unit
	if u != nil {
		t.Unit = nil
		t.Features = t.Features.Remove(Sandbags)
	}
	return u
}

// ClearView drops every view annotation.
func (t *Tile) ClearView() {
	t.Selected = false
	t.Distance = nil
	t.Dice = nil
}

func (t *Tile) clone() *Tile {
	c := *t
	c.Unit = t.Unit.clone()
	if t.Victory != nil {
		v := *t.Victory
		c.Victory = &v
	}
	if t.Distance != nil {
		d := *t.Distance
		c.Distance = &d
	}
	if t.Dice != nil {
		d := *t.Dice
		c.Dice = &d
	}
	return &c
}
