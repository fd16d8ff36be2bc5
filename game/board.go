package game

import (
	"wargame/hex"
)

// Reader gives read access to the board. Returned tiles are copies; their
// Unit pointers are shared and must not be modified.
type Reader interface {
	Tile(h hex.Hex) (Tile, bool)
}

// Transform mutates a pair of tiles. src and dest are private copies; view
// shows the board as it was before the call.
type Transform func(src, dest *Tile, view Reader)

// Board maps every playable coordinate to its tile. The set of coordinates
// is fixed at construction.
type Board struct {
	Name   string
	Biome  string
	Width  int
	Height int

	tiles map[hex.Hex]*Tile
}

// NewBoard generates a width x height board of empty plain tiles. Row r
// spans q in [-(r/2), width-(r/2)), which lays the rows out as a dense
// rectangle of hexes.
func NewBoard(width, height int) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		tiles:  make(map[hex.Hex]*Tile, width*height),
	}
	for r := 0; r < height; r++ {
		offset := r >> 1
		for q := -offset; q < width-offset; q++ {
			h := hex.Axial(q, r)
			b.tiles[h] = &Tile{pos: h}
		}
	}
	return b
}

// Tile returns a copy of the tile at h, or false if h is off the board.
func (b *Board) Tile(h hex.Hex) (Tile, bool) {
	t, ok := b.tiles[h]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// Contains reports whether h is on the board.
func (b *Board) Contains(h hex.Hex) bool {
	_, ok := b.tiles[h]
	return ok
}

// Len is the number of tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Coords returns every coordinate on the board in row order.
func (b *Board) Coords() []hex.Hex {
	return hex.Sorted(b.tiles)
}

// Units returns the coordinates of every occupied tile in row order.
func (b *Board) Units() []hex.Hex {
	var occupied []hex.Hex
	for _, h := range b.Coords() {
		if b.tiles[h].Occupied() {
			occupied = append(occupied, h)
		}
	}
	return occupied
}

// Edit applies fn to a copy of the tile at h and stores the result. It
// returns false if h is off the board.
func (b *Board) Edit(h hex.Hex, fn func(t *Tile)) bool {
	t, ok := b.tiles[h]
	if !ok {
		return false
	}
	c := t.clone()
	fn(c)
	c.pos = h
	b.tiles[h] = c
	return true
}

// ApplyPair runs fn on copies of the tiles at src and dest and then commits
// both copies. If fn panics, nothing is committed. It returns false without
// calling fn when either coordinate is off the board or they are equal.
func (b *Board) ApplyPair(src, dest hex.Hex, fn Transform) bool {
	if src == dest {
		return false
	}
	s, ok := b.tiles[src]
	if !ok {
		return false
	}
	d, ok := b.tiles[dest]
	if !ok {
		return false
	}

	sc, dc := s.clone(), d.clone()
	fn(sc, dc, b)
	sc.pos, dc.pos = src, dest

	b.tiles[src], b.tiles[dest] = sc, dc
	return true
}

// ResetView clears every view annotation and removes destroyed units. It
// returns the coordinates the destroyed units were removed from.
func (b *Board) ResetView() []hex.Hex {
	var removed []hex.Hex
	for h, t := range b.tiles {
		t.ClearView()
		if t.Unit != nil && t.Unit.Destroyed {
			t.RemoveUnit()
			removed = append(removed, h)
		}
	}
	hex.Sort(removed)
	return removed
}

// Overlay is what Annotate computed for the selected tile.
type Overlay struct {
	Source  hex.Hex
	Moves   Reach           // reachable tiles and their step counts
	Targets map[hex.Hex]int // enemy tiles and the dice assigned to each
}

// Annotate marks src as selected and, if a unit stands there, labels its
// movement range with step counts and its valid targets with dice counts.
// Callers reset the view first.
func (b *Board) Annotate(src hex.Hex, rules Rules) (Overlay, bool) {
	t, ok := b.tiles[src]
	if !ok {
		return Overlay{}, false
	}
	t.Selected = true

	overlay := Overlay{Source: src, Targets: map[hex.Hex]int{}}
	if t.Unit == nil {
		return overlay, true
	}
	attacker := *t.Unit

	overlay.Moves = MoveRange(b, src, attacker.Type, attacker.Type.Movement())
	for h, steps := range overlay.Moves {
		if h == src {
			continue
		}
		b.tiles[h].Distance = &steps
	}

	for h := range FireTargets(b, src) {
		target := b.tiles[h]
		dice := rules.Dice(attacker, *target.Unit, hex.Distance(src, h), *target)
		if dice == 0 {
			continue
		}
		target.Dice = &dice
		overlay.Targets[h] = dice
	}
	return overlay, true
}
