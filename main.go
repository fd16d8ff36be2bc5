package main

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wargame/config"
	"wargame/engine"
	"wargame/game"
	"wargame/metrics"
)

func main() {
	path := flag.String("config", "", "Scenario YAML file (defaults to an empty board)")
	seed := flag.Uint64("seed", 0, "Dice seed, overrides the scenario")
	level := flag.String("level", "", "Log level, overrides the scenario")
	out := flag.String("metrics-out", "", "Folder for a battle metrics CSV, enables metrics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *path != "" {
		var err error
		cfg, err = config.Load(*path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load scenario")
		}
	}
	if *seed != 0 {
		cfg.Dice.Seed = *seed
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if *out != "" {
		cfg.Metrics = true
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		log.Fatal().Err(err).Msgf("unknown log level %q", cfg.Log.Level)
	}
	zerolog.SetGlobalLevel(lvl)

	board, err := cfg.NewBoard()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build board")
	}

	e := engine.New(board, options(cfg)...)
	log.Info().Msgf("board %q (%s): %dx%d, %d units", board.Name, board.Biome, board.Width, board.Height, len(board.Units()))

	report(e)
	play(e, cfg.Orders)

	if cfg.Metrics {
		m := e.Metrics()
		log.Info().
			Int("moves", m.Moves).
			Int("attacks", m.Attacks).
			Int("dice", m.DiceRolled).
			Int("hits", m.Hits).
			Int("destroyed", m.Destroyed).
			Dur("duration", m.Duration).
			Msg("battle metrics")

		if *out != "" {
			write(*out, metrics.BattleRecord{Scenario: board.Name, Seed: cfg.Dice.Seed, BattleMetric: m})
		}
	}
}

func write(dir string, record metrics.BattleRecord) {
	w, err := metrics.NewWriter(dir)
	if err != nil {
		log.Error().Err(err).Msg("failed to write battle metrics")
		return
	}
	if err := w.WriteBattleRecords([]metrics.BattleRecord{record}); err != nil {
		log.Error().Err(err).Msg("failed to write battle metrics")
		return
	}
	log.Info().Msgf("battle metrics written to %s", w.Dir())
}

func options(cfg *config.Config) []engine.Option {
	options := []engine.Option{engine.WithRoller(game.NewRoller(cfg.Dice.Seed))}
	if cfg.Rules.EnforcePhases {
		options = append(options, engine.WithPhaseGating())
	}
	if cfg.Metrics {
		options = append(options, engine.WithMetrics())
	}
	return options
}

// report logs the overlay of every unit on the board.
func report(e *engine.Engine) {
	for _, h := range e.Board.Units() {
		tile, _ := e.Board.Tile(h)
		e.Select(h)
		overlay := e.Overlay()
		log.Info().Msgf("%v at %v (%v offset %v): %d moves, targets %v",
			tile.Unit, h, tile.Terrain, h.ToOffset(), len(overlay.Moves)-1, overlay.Targets)
	}
	e.Deselect()
}

// play runs the scripted orders and returns how many took effect. A move
// order only targets a cell labelled with a distance, an attack order only
// a cell labelled with dice.
func play(e *engine.Engine, orders []config.OrderConfig) int {
	applied := 0
	for i, order := range orders {
		switch order.Kind {
		case config.OrderEndPhase:
			e.EndPhase()
			applied++
		case config.OrderMove, config.OrderAttack:
			from, to := order.From.Hex(), order.To.Hex()
			if !e.Select(from) {
				log.Warn().Msgf("order %d: %s from %v is off the board", i, order.Kind, from)
				continue
			}
			tile, _ := e.Board.Tile(to)
			labelled := tile.Distance != nil
			if order.Kind == config.OrderAttack {
				labelled = tile.Dice != nil
			}
			if !labelled || !e.Act(to) {
				log.Warn().Msgf("order %d: %s %v -> %v ignored", i, order.Kind, from, to)
				e.Deselect()
				continue
			}
			applied++
		default:
			log.Warn().Msgf("order %d: unknown kind %q", i, order.Kind)
		}
	}
	return applied
}
