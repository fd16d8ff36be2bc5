package game

import (
	"fmt"

	"wargame/hex"
)

// Layout is a scenario as handed over by a map loader: a board size and
// the cells that differ from empty plain ground.
type Layout struct {
	Name   string
	Biome  string
	Width  int
	Height int
	Cells  []Cell
}

// Cell overrides a single tile of the generated board.
type Cell struct {
	Pos      hex.Hex
	Terrain  Terrain
	Features FeatureSet
	Unit     *Unit
	Victory  *VictoryPoint
}

// FromLayout generates the board and applies every cell override. A cell
// outside the generated shape is an error.
func FromLayout(layout Layout) (*Board, error) {
	b := NewBoard(layout.Width, layout.Height)
	b.Name = layout.Name
	b.Biome = layout.Biome

	for i, cell := range layout.Cells {
		ok := b.Edit(cell.Pos, func(t *Tile) {
			t.Terrain = cell.Terrain
			t.Features = cell.Features
			t.Unit = cell.Unit.clone()
			if cell.Victory != nil {
				v := *cell.Victory
				t.Victory = &v
			}
		})
		if !ok {
			return nil, fmt.Errorf("cell %d at %v: %w", i, cell.Pos, ErrOffBoard)
		}
	}
	return b, nil
}
