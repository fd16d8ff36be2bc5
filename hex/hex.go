// Package hex implements cube coordinates for a hexagonal grid.
package hex

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Hex is a cube coordinate. The three components always sum to zero.
type Hex struct {
	q, r, s int
}

var directions = [6]Hex{
	{1, 0, -1}, {1, -1, 0}, {0, -1, 1},
	{-1, 0, 1}, {-1, 1, 0}, {0, 1, -1},
}

// New returns the coordinate (q, r, s). It panics if q+r+s != 0.
func New(q, r, s int) Hex {
	if q+r+s != 0 {
		panic(fmt.Sprintf("hex: invalid coordinate (%d, %d, %d): components must sum to zero", q, r, s))
	}
	return Hex{q, r, s}
}

// Axial returns the coordinate with the given q and r, deriving s.
func Axial(q, r int) Hex {
	return Hex{q, r, -q - r}
}

func (h Hex) Q() int { return h.q }
func (h Hex) R() int { return h.r }
func (h Hex) S() int { return h.s }

func (h Hex) Add(o Hex) Hex {
	return Hex{h.q + o.q, h.r + o.r, h.s + o.s}
}

func (h Hex) Sub(o Hex) Hex {
	return Hex{h.q - o.q, h.r - o.r, h.s - o.s}
}

// Scale multiplies every component by k.
func (h Hex) Scale(k int) Hex {
	return Hex{h.q * k, h.r * k, h.s * k}
}

// Length is the distance from the origin.
func (h Hex) Length() int {
	return (abs(h.q) + abs(h.r) + abs(h.s)) / 2
}

// Distance returns the number of steps between a and b.
func Distance(a, b Hex) int {
	return a.Sub(b).Length()
}

// Direction returns the unit vector for direction d in [0,6).
func Direction(d int) Hex {
	if d < 0 || d >= len(directions) {
		panic(fmt.Sprintf("hex: direction %d out of range [0,6)", d))
	}
	return directions[d]
}

// Neighbor returns the adjacent coordinate in direction d.
func (h Hex) Neighbor(d int) Hex {
	return h.Add(Direction(d))
}

// Neighbors returns all six adjacent coordinates in direction order.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range directions {
		result[i] = h.Add(dir)
	}
	return result
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h.q, h.r, h.s)
}

// Sort orders coordinates by row, then column. Used wherever a set has to be
// reported in a stable order.
func Sort(hexes []Hex) {
	slices.SortFunc(hexes, func(a, b Hex) int {
		if a.r != b.r {
			return a.r - b.r
		}
		return a.q - b.q
	})
}

// Sorted returns the keys of set in Sort order.
func Sorted[V any](set map[Hex]V) []Hex {
	keys := make([]Hex, 0, len(set))
	for h := range set {
		keys = append(keys, h)
	}
	Sort(keys)
	return keys
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
