package game

import (
	"wargame/hex"
)

// Reach maps each coordinate found by a flood fill to the number of steps
// taken to reach it. The source is included at zero steps.
type Reach map[hex.Hex]int

// Has reports whether h was reached.
func (r Reach) Has(h hex.Hex) bool {
	_, ok := r[h]
	return ok
}

// step decides, for a tile adjacent to the fringe, whether the fill records
// it and whether the fill may continue from it.
type step func(t *Tile) (visit, expand bool)

// flood runs a breadth-first fill from src bounded by limit steps. Each
// depth keeps its own fringe so no tile is expanded beyond the limit.
func flood(b Reader, src hex.Hex, limit int, next step) Reach {
	visited := Reach{src: 0}
	fringe := []hex.Hex{src}

	for k := 1; k <= limit && len(fringe) > 0; k++ {
		var frontier []hex.Hex
		for _, cur := range fringe {
			for _, n := range cur.Neighbors() {
				if visited.Has(n) {
					continue
				}
				t, ok := b.Tile(n)
				if !ok {
					continue
				}
				visit, expand := next(&t)
				if !visit {
					continue
				}
				visited[n] = k
				if expand {
					frontier = append(frontier, n)
				}
			}
		}
		fringe = frontier
	}
	return visited
}

// MoveRange returns every tile a unit of the given type at src can end its
// move on with the given movement points, src included. Rivers without a
// bridge and occupied tiles cannot be entered; tiles that stop movement
// can be entered but not moved through.
func MoveRange(b Reader, src hex.Hex, kind UnitType, points int) Reach {
	return flood(b, src, points, func(t *Tile) (bool, bool) {
		if t.BlocksMovement() || t.Occupied() {
			return false, false
		}
		return true, !t.StopsMovement(kind)
	})
}

// SightRange returns every tile within reach steps of src that is not
// hidden behind sight-blocking terrain. A blocking tile is itself visible.
func SightRange(b Reader, src hex.Hex, reach int) Reach {
	return flood(b, src, reach, func(t *Tile) (bool, bool) {
		return true, !t.BlocksSight()
	})
}

// FireTargets returns the occupied tiles, of either faction, that the unit
// at src can see within its weapon range. The unit's own tile is excluded.
// It returns nil if src holds no unit.
func FireTargets(b Reader, src hex.Hex) Reach {
	t, ok := b.Tile(src)
	if !ok || t.Unit == nil {
		return nil
	}
	targets := Reach{}
	for h, steps := range SightRange(b, src, t.Unit.Type.Range()) {
		if h == src {
			continue
		}
		if target, _ := b.Tile(h); target.Occupied() {
			targets[h] = steps
		}
	}
	return targets
}

// AssignDice returns the dice attacker rolls against defender standing on
// tile at the given distance. Terrain and feature protection do not stack:
// the larger one applies. Units of the same faction get zero dice.
func AssignDice(attacker, defender Unit, distance int, tile Tile) int {
	if !attacker.Faction.Opposes(defender.Faction) {
		return 0
	}
	dice := attacker.Type.Effectiveness(distance)
	terrain, features := tile.Protection(defender.Type)
	return min(max(dice-terrain, 0), max(dice-features, 0))
}
