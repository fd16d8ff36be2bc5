package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wargame/game"
	"wargame/hex"
)

// Config holds everything needed to set up and play a scenario
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Dice    DiceConfig    `yaml:"dice"`
	Log     LogConfig     `yaml:"log"`
	Rules   RulesConfig   `yaml:"rules"`
	Cells   []CellConfig  `yaml:"cells"`
	Orders  []OrderConfig `yaml:"orders"`
	Metrics bool          `yaml:"metrics"`
}

// BoardConfig holds the generated board shape
type BoardConfig struct {
	Name   string `yaml:"name"`
	Biome  string `yaml:"biome"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DiceConfig seeds the combat dice
type DiceConfig struct {
	Seed uint64 `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type RulesConfig struct {
	EnforcePhases bool `yaml:"enforce_phases"`
}

// Coord is an axial coordinate
type Coord struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

func (c Coord) Hex() hex.Hex {
	return hex.Axial(c.Q, c.R)
}

// CellConfig overrides one tile of the generated board
type CellConfig struct {
	Coord    `yaml:",inline"`
	Terrain  string      `yaml:"terrain"`
	Features []string    `yaml:"features"`
	Unit     *UnitConfig `yaml:"unit"`
	Victory  string      `yaml:"victory"`
}

type UnitConfig struct {
	Type    string `yaml:"type"`
	Faction string `yaml:"faction"`
	Health  int    `yaml:"health"` // 0 means full health
}

// OrderConfig is one scripted step for the headless runner
type OrderConfig struct {
	Kind string `yaml:"kind"` // move, attack or end_phase
	From Coord  `yaml:"from"`
	To   Coord  `yaml:"to"`
}

const (
	OrderMove     = "move"
	OrderAttack   = "attack"
	OrderEndPhase = "end_phase"
)

var ErrInvalidHealth = errors.New("unit health out of range")

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills in defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (cfg *Config) setDefaults() {
	if cfg.Board.Width == 0 {
		cfg.Board.Width = 13
	}
	if cfg.Board.Height == 0 {
		cfg.Board.Height = 9
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	for i := range cfg.Orders {
		if cfg.Orders[i].Kind == "" {
			cfg.Orders[i].Kind = OrderMove
		}
	}
}

// Layout converts the board and cell sections into a game layout
func (cfg *Config) Layout() (game.Layout, error) {
	layout := game.Layout{
		Name:   cfg.Board.Name,
		Biome:  cfg.Board.Biome,
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
	}
	for i, c := range cfg.Cells {
		cell, err := c.cell()
		if err != nil {
			return game.Layout{}, fmt.Errorf("cell %d at %v: %w", i, c.Hex(), err)
		}
		layout.Cells = append(layout.Cells, cell)
	}
	return layout, nil
}

func (c CellConfig) cell() (game.Cell, error) {
	cell := game.Cell{Pos: c.Hex()}

	if c.Terrain != "" {
		terrain, err := game.ParseTerrain(c.Terrain)
		if err != nil {
			return cell, err
		}
		cell.Terrain = terrain
	}

	for _, name := range c.Features {
		f, err := game.ParseFeature(name)
		if err != nil {
			return cell, err
		}
		cell.Features = cell.Features.Add(f)
	}

	if c.Unit != nil {
		kind, err := game.ParseUnitType(c.Unit.Type)
		if err != nil {
			return cell, err
		}
		faction, err := game.ParseFaction(c.Unit.Faction)
		if err != nil {
			return cell, err
		}
		if c.Unit.Health < 0 || c.Unit.Health > kind.MaxHealth() {
			return cell, fmt.Errorf("%w: %d for %v (max %d)", ErrInvalidHealth, c.Unit.Health, kind, kind.MaxHealth())
		}
		cell.Unit = game.NewUnit(kind, faction)
		if c.Unit.Health > 0 {
			cell.Unit.Health = c.Unit.Health
		}
	}

	if c.Victory != "" {
		v, err := game.ParseVictoryPoint(c.Victory)
		if err != nil {
			return cell, err
		}
		cell.Victory = &v
	}
	return cell, nil
}

// NewBoard builds the scenario board
func (cfg *Config) NewBoard() (*game.Board, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	b, err := game.FromLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}
	return b, nil
}
