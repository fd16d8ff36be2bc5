package game

import "fmt"

// UnitType is the kind of a unit. Every type has a fixed row in unitStats.
type UnitType int

const (
	Infantry UnitType = iota
	Armor
	Artillery
)

type stats struct {
	movement  int
	threshold int
	reach     int
	dice      []int // dice rolled at distance 1, 2, ...
	health    int
}

var unitStats = [...]stats{
	Infantry:  {movement: 2, threshold: 1, reach: 3, dice: []int{3, 2, 1}, health: 4},
	Armor:     {movement: 3, threshold: 3, reach: 3, dice: []int{3, 3, 3}, health: 3},
	Artillery: {movement: 1, threshold: 0, reach: 6, dice: []int{3, 3, 2, 2, 1, 1}, health: 2},
}

var unitTypeNames = map[string]UnitType{
	"infantry":  Infantry,
	"armor":     Armor,
	"artillery": Artillery,
}

func (k UnitType) String() string {
	switch k {
	case Infantry:
		return "Infantry"
	case Armor:
		return "Armor"
	case Artillery:
		return "Artillery"
	default:
		return fmt.Sprintf("UnitType(%d)", int(k))
	}
}

// ParseUnitType converts a unit type name (case insensitive) to a UnitType.
func ParseUnitType(name string) (UnitType, error) {
	return parseName(unitTypeNames, name, ErrUnknownUnitType)
}

func (k UnitType) stats() stats {
	if k < 0 || int(k) >= len(unitStats) {
		panic(fmt.Sprintf("game: invalid unit type %d", int(k)))
	}
	return unitStats[k]
}

// Movement is the number of steps the unit may move in one turn.
func (k UnitType) Movement() int { return k.stats().movement }

// MovementThreshold is how far the unit may move and still fire in the
// same turn.
func (k UnitType) MovementThreshold() int { return k.stats().threshold }

// Range is the weapon range in steps.
func (k UnitType) Range() int { return k.stats().reach }

// MaxHealth is the health a fresh unit starts with.
func (k UnitType) MaxHealth() int { return k.stats().health }

// Effectiveness returns the number of dice the unit rolls against a target
// at the given distance, before any protection. Adjacent targets use the
// first bracket; targets out of range get zero dice.
func (k UnitType) Effectiveness(distance int) int {
	dice := k.stats().dice
	i := max(distance-1, 0)
	if i >= len(dice) {
		return 0
	}
	return dice[i]
}

// Unit is a single counter on the board.
type Unit struct {
	Type      UnitType
	Faction   Faction
	Health    int
	Destroyed bool // set at zero health, swept by Board.ResetView
}

// NewUnit returns a unit at full health.
func NewUnit(kind UnitType, faction Faction) *Unit {
	return &Unit{
		Type:    kind,
		Faction: faction,
		Health:  kind.MaxHealth(),
	}
}

// Damage removes up to n health and marks the unit destroyed when none is
// left. It returns the health actually lost.
func (u *Unit) Damage(n int) int {
	lost := min(n, u.Health)
	u.Health -= lost
	if u.Health == 0 {
		u.Destroyed = true
	}
	return lost
}

// CanFireAfter reports whether the unit may still fire after moving the
// given number of steps this turn.
func (u *Unit) CanFireAfter(moved int) bool {
	return moved <= u.Type.MovementThreshold()
}

func (u *Unit) clone() *Unit {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s %s (%d/%d)", u.Faction, u.Type, u.Health, u.Type.MaxHealth())
}
