package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wargame/game"
	"wargame/hex"
)

const scenario = `
board:
  name: bridgehead
  biome: plains
  width: 7
  height: 5
dice:
  seed: 99
rules:
  enforce_phases: true
metrics: true
cells:
  - {q: 2, r: 2, terrain: river, features: [bridge]}
  - {q: 1, r: 1, terrain: forest, unit: {type: infantry, faction: allies}}
  - {q: 3, r: 0, features: [Sandbags], unit: {type: armor, faction: axis, health: 2}, victory: holdpoint}
orders:
  - {from: {q: 1, r: 1}, to: {q: 2, r: 1}}
  - {kind: end_phase}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(scenario))
	require.NoError(t, err)

	require.Equal(t, "bridgehead", cfg.Board.Name)
	require.Equal(t, 7, cfg.Board.Width)
	require.Equal(t, uint64(99), cfg.Dice.Seed)
	require.True(t, cfg.Rules.EnforcePhases)
	require.True(t, cfg.Metrics)
	require.Equal(t, "info", cfg.Log.Level, "level should default")
	require.Len(t, cfg.Cells, 3)
	require.Equal(t, hex.Axial(3, 0), cfg.Cells[2].Hex())
	require.Equal(t, OrderMove, cfg.Orders[0].Kind, "kind should default to move")
	require.Equal(t, Coord{Q: 2, R: 1}, cfg.Orders[0].To)
	require.Equal(t, OrderEndPhase, cfg.Orders[1].Kind)

	_, err = Parse([]byte("board: [1, 2"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 13, cfg.Board.Width)
	require.Equal(t, 9, cfg.Board.Height)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Rules.EnforcePhases)

	b, err := cfg.NewBoard()
	require.NoError(t, err)
	require.Equal(t, 13*9, b.Len())
}

func TestNewBoard(t *testing.T) {
	cfg, err := Parse([]byte(scenario))
	require.NoError(t, err)

	b, err := cfg.NewBoard()
	require.NoError(t, err)
	require.Equal(t, "plains", b.Biome)

	bridge, _ := b.Tile(hex.Axial(2, 2))
	require.Equal(t, game.River, bridge.Terrain)
	require.True(t, bridge.Features.Has(game.Bridge))

	forest, _ := b.Tile(hex.Axial(1, 1))
	require.Equal(t, game.Forest, forest.Terrain)
	require.Equal(t, game.Infantry, forest.Unit.Type)
	require.Equal(t, 4, forest.Unit.Health)

	hold, _ := b.Tile(hex.Axial(3, 0))
	require.Equal(t, game.Axis, hold.Unit.Faction)
	require.Equal(t, 2, hold.Unit.Health)
	require.True(t, hold.Features.Has(game.Sandbags))
	require.Equal(t, game.HoldPoint, *hold.Victory)
}

func TestUnitHealth(t *testing.T) {
	cfg := Default()
	cfg.Cells = []CellConfig{
		{Coord: Coord{Q: 0, R: 0}, Unit: &UnitConfig{Type: "armor", Faction: "allies", Health: 3}},
		{Coord: Coord{Q: 1, R: 0}, Unit: &UnitConfig{Type: "armor", Faction: "allies"}},
	}
	b, err := cfg.NewBoard()
	require.NoError(t, err)

	full, _ := b.Tile(hex.Axial(0, 0))
	require.Equal(t, 3, full.Unit.Health, "max health is accepted")
	fresh, _ := b.Tile(hex.Axial(1, 0))
	require.Equal(t, 3, fresh.Unit.Health, "zero means full health")
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		cell CellConfig
		want error
	}{
		{"terrain", CellConfig{Terrain: "swamp"}, game.ErrUnknownTerrain},
		{"feature", CellConfig{Features: []string{"mines"}}, game.ErrUnknownFeature},
		{"unit type", CellConfig{Unit: &UnitConfig{Type: "cavalry", Faction: "axis"}}, game.ErrUnknownUnitType},
		{"faction", CellConfig{Unit: &UnitConfig{Type: "armor", Faction: "neutral"}}, game.ErrUnknownFaction},
		{"victory", CellConfig{Victory: "flag"}, game.ErrUnknownVictory},
		{"health above max", CellConfig{Unit: &UnitConfig{Type: "armor", Faction: "axis", Health: 4}}, ErrInvalidHealth},
		{"negative health", CellConfig{Unit: &UnitConfig{Type: "infantry", Faction: "axis", Health: -1}}, ErrInvalidHealth},
		{"off board", CellConfig{Coord: Coord{Q: 40, R: 0}}, game.ErrOffBoard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Cells = []CellConfig{tt.cell}
			_, err := cfg.NewBoard()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Board.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
