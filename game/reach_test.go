package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wargame/hex"
)

// strip returns a single-row board: every tile has at most two neighbors.
func strip(width int) *Board {
	return NewBoard(width, 1)
}

func TestMoveRange(t *testing.T) {
	t.Run("zero points reach only the source", func(t *testing.T) {
		b := NewBoard(5, 5)
		src := hex.Axial(1, 2)
		require.Equal(t, Reach{src: 0}, MoveRange(b, src, Armor, 0))
	})

	t.Run("open ground reaches the full disk", func(t *testing.T) {
		b := NewBoard(9, 9)
		src := hex.Axial(2, 4)
		got := MoveRange(b, src, Armor, 3)
		require.Len(t, got, 1+3*3*4)
		for h, steps := range got {
			require.Equal(t, hex.Distance(src, h), steps)
		}
	})

	t.Run("a river strip without a bridge cannot be crossed", func(t *testing.T) {
		b := NewBoard(7, 5)
		for _, h := range b.Coords() {
			if h.R() == 2 {
				setTerrain(t, b, River, h)
			}
		}
		src := hex.Axial(2, 0)
		got := MoveRange(b, src, Armor, 10)
		for h := range got {
			require.Less(t, h.R(), 2, "%v lies on or beyond the river", h)
		}
		require.Len(t, got, 14, "both rows before the river should be reachable")
	})

	t.Run("a bridge lets units cross", func(t *testing.T) {
		b := strip(5)
		river := hex.Axial(2, 0)
		setTerrain(t, b, River, river)
		got := MoveRange(b, hex.Axial(0, 0), Armor, 3)
		require.False(t, got.Has(river))

		b.Edit(river, func(tile *Tile) { tile.Features = NewFeatureSet(Bridge) })
		got = MoveRange(b, hex.Axial(0, 0), Armor, 3)
		require.Equal(t, Reach{hex.Axial(0, 0): 0, hex.Axial(1, 0): 1, river: 2, hex.Axial(3, 0): 3}, got)
	})

	t.Run("forest and town end the move", func(t *testing.T) {
		for _, terrain := range []Terrain{Forest, Town} {
			b := strip(6)
			setTerrain(t, b, terrain, hex.Axial(2, 0))
			got := MoveRange(b, hex.Axial(0, 0), Armor, 3)
			require.Equal(t, Reach{hex.Axial(0, 0): 0, hex.Axial(1, 0): 1, hex.Axial(2, 0): 2}, got, "terrain %v", terrain)
		}
	})

	t.Run("barbed wire stops infantry only", func(t *testing.T) {
		b := strip(6)
		wire := hex.Axial(1, 0)
		b.Edit(wire, func(tile *Tile) { tile.Features = NewFeatureSet(BarbedWire) })

		infantry := MoveRange(b, hex.Axial(0, 0), Infantry, 3)
		require.Equal(t, Reach{hex.Axial(0, 0): 0, wire: 1}, infantry)

		armor := MoveRange(b, hex.Axial(0, 0), Armor, 3)
		require.True(t, armor.Has(hex.Axial(3, 0)))
	})

	t.Run("occupied tiles cannot be entered or crossed", func(t *testing.T) {
		b := strip(6)
		place(t, b, hex.Axial(2, 0), Infantry, Allies)
		got := MoveRange(b, hex.Axial(0, 0), Armor, 3)
		require.Equal(t, Reach{hex.Axial(0, 0): 0, hex.Axial(1, 0): 1}, got)
	})

	t.Run("stopping terrain still reached by another path", func(t *testing.T) {
		b := NewBoard(6, 6)
		src := hex.Axial(1, 2)
		forest := hex.Axial(2, 2)
		setTerrain(t, b, Forest, forest)
		got := MoveRange(b, src, Armor, 2)
		require.Equal(t, 1, got[forest])
		require.Equal(t, 2, got[hex.Axial(3, 1)], "reached around the forest")
		require.False(t, got.Has(hex.Axial(3, 2)), "straight behind the forest")
	})
}

func TestSightRange(t *testing.T) {
	t.Run("open board sees the full disk", func(t *testing.T) {
		b := NewBoard(13, 13)
		src := hex.Axial(3, 6)
		got := SightRange(b, src, Artillery.Range())

		want := Reach{}
		for _, h := range b.Coords() {
			if d := hex.Distance(src, h); d <= 6 {
				want[h] = d
			}
		}
		require.Len(t, want, 1+3*6*7)
		require.Equal(t, want, got)
	})

	t.Run("blocking terrain is visible but hides what is behind", func(t *testing.T) {
		b := strip(6)
		setTerrain(t, b, Forest, hex.Axial(2, 0))
		got := SightRange(b, hex.Axial(0, 0), 5)
		require.Equal(t, Reach{hex.Axial(0, 0): 0, hex.Axial(1, 0): 1, hex.Axial(2, 0): 2}, got)
	})

	t.Run("rivers and features do not block sight", func(t *testing.T) {
		b := strip(5)
		setTerrain(t, b, River, hex.Axial(1, 0))
		b.Edit(hex.Axial(2, 0), func(tile *Tile) { tile.Features = NewFeatureSet(Sandbags, BarbedWire) })
		got := SightRange(b, hex.Axial(0, 0), 4)
		require.Len(t, got, 5)
	})
}

func TestFireTargets(t *testing.T) {
	t.Run("artillery on open ground sees every unit within six", func(t *testing.T) {
		b := NewBoard(13, 13)
		src := hex.Axial(3, 6)
		place(t, b, src, Artillery, Allies)
		near := hex.Axial(9, 6)
		far := hex.Axial(4, 12)
		own := hex.Axial(3, 7)
		place(t, b, near, Infantry, Axis)
		place(t, b, far, Infantry, Axis)
		place(t, b, own, Infantry, Allies)

		got := FireTargets(b, src)
		require.Equal(t, Reach{near: 6, own: 1}, got, "targets include both factions, never the source")
	})

	t.Run("units behind a town are hidden", func(t *testing.T) {
		b := strip(6)
		place(t, b, hex.Axial(0, 0), Infantry, Allies)
		setTerrain(t, b, Town, hex.Axial(1, 0))
		place(t, b, hex.Axial(1, 0), Infantry, Axis)
		place(t, b, hex.Axial(2, 0), Infantry, Axis)

		got := FireTargets(b, hex.Axial(0, 0))
		require.Equal(t, Reach{hex.Axial(1, 0): 1}, got)
	})

	t.Run("no unit on the source", func(t *testing.T) {
		b := strip(3)
		require.Nil(t, FireTargets(b, hex.Axial(0, 0)))
		require.Nil(t, FireTargets(b, hex.Axial(7, 0)))
	})
}

func TestAssignDice(t *testing.T) {
	plain := Tile{Terrain: Plain}
	forest := Tile{Terrain: Forest}
	town := Tile{Terrain: Town}
	sandbags := Tile{Terrain: Plain, Features: NewFeatureSet(Sandbags)}
	fortified := Tile{Terrain: Forest, Features: NewFeatureSet(Sandbags, BarbedWire)}

	allied := func(kind UnitType) Unit { return *NewUnit(kind, Allies) }
	axis := func(kind UnitType) Unit { return *NewUnit(kind, Axis) }

	tests := []struct {
		name     string
		attacker Unit
		defender Unit
		distance int
		tile     Tile
		want     int
	}{
		{"infantry adjacent on plain", allied(Infantry), axis(Infantry), 1, plain, 3},
		{"infantry at long range", allied(Infantry), axis(Infantry), 3, plain, 1},
		{"infantry beyond range", allied(Infantry), axis(Infantry), 4, plain, 0},
		{"distance zero uses the first bracket", allied(Infantry), axis(Armor), 0, plain, 3},
		{"forest shields infantry", allied(Armor), axis(Infantry), 2, forest, 2},
		{"town shields armor", allied(Armor), axis(Armor), 1, town, 1},
		{"town does not shield artillery", allied(Armor), axis(Artillery), 1, town, 3},
		{"sandbags protect any type", allied(Infantry), axis(Artillery), 1, sandbags, 2},
		{"protections do not stack", allied(Infantry), axis(Infantry), 1, fortified, 2},
		{"never below zero", allied(Infantry), axis(Armor), 3, town, 0},
		{"artillery at five", allied(Artillery), axis(Infantry), 5, plain, 1},
		{"artillery at three", allied(Artillery), axis(Armor), 3, plain, 2},
		{"same faction", allied(Infantry), allied(Infantry), 1, plain, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AssignDice(tt.attacker, tt.defender, tt.distance, tt.tile))
		})
	}
}
