package engine

import (
	"wargame/game"
	"wargame/hex"
	"wargame/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithRoller replaces the seeded default roller.
func WithRoller(roller game.Roller) Option {
	return func(e *Engine) {
		if roller != nil {
			e.roller = roller
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithPhaseGating restricts moves to the move phase and attacks to the
// battle phase.
func WithPhaseGating() Option {
	return func(e *Engine) {
		e.gated = true
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// Engine drives a board through player selections and actions. It is not
// safe for concurrent use.
type Engine struct {
	Board *game.Board
	Phase game.Phase

	rules    game.Rules
	roller   game.Roller
	gated    bool
	metrics  metrics.Collector
	selected *hex.Hex
	overlay  game.Overlay
}

func New(board *game.Board, options ...Option) *Engine {
	e := &Engine{ // Default values
		Board:   board,
		rules:   game.NewStandardRules(),
		roller:  game.NewRoller(1),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Select clears the previous overlay and selects h. If a unit stands on h
// its movement range and targets are annotated on the board.
func (e *Engine) Select(h hex.Hex) bool {
	e.Deselect()
	overlay, ok := e.Board.Annotate(h, e.rules)
	if !ok {
		log.Debug().Msgf("select %v: off the board", h)
		return false
	}
	e.selected = &h
	e.overlay = overlay
	log.Debug().Msgf("selected %v: %d moves, %d targets", h, len(overlay.Moves), len(overlay.Targets))
	return true
}

// Deselect drops the selection and every annotation.
func (e *Engine) Deselect() {
	e.sweep()
	e.selected = nil
	e.overlay = game.Overlay{}
}

// Selected returns the selected coordinate, if any.
func (e *Engine) Selected() (hex.Hex, bool) {
	if e.selected == nil {
		return hex.Hex{}, false
	}
	return *e.selected, true
}

// Overlay is what the last Select annotated.
func (e *Engine) Overlay() game.Overlay {
	return e.overlay
}

// Act performs the action the overlay offers on dest: an attack if dest
// carries a dice label, a move if it carries a distance label. Afterwards
// the view is reset and the selection dropped. Act returns false and
// leaves the selection in place if nothing happened.
func (e *Engine) Act(dest hex.Hex) bool {
	src, ok := e.Selected()
	if !ok {
		return false
	}
	tile, ok := e.Board.Tile(dest)
	if !ok {
		return false
	}

	var done bool
	switch {
	case tile.Dice != nil:
		done = e.attack(src, dest)
	case tile.Distance != nil && !tile.Occupied():
		done = e.move(src, dest)
	}
	if done {
		e.Deselect()
	}
	return done
}

func (e *Engine) move(src, dest hex.Hex) bool {
	if e.gated && e.Phase != game.MovePhase {
		log.Warn().Msgf("move %v -> %v outside the move phase (%v)", src, dest, e.Phase)
		return false
	}
	moved := -1
	e.Board.ApplyPair(src, dest, game.MoveTransform(&moved))
	if moved < 0 {
		return false
	}
	e.metrics.AddMove(moved)
	log.Info().Msgf("moved %v -> %v in %d steps", src, dest, moved)
	return true
}

func (e *Engine) attack(src, dest hex.Hex) bool {
	if e.gated && e.Phase != game.BattlePhase {
		log.Warn().Msgf("attack %v -> %v outside the battle phase (%v)", src, dest, e.Phase)
		return false
	}
	var battle game.Battle
	e.Board.ApplyPair(src, dest, game.AttackTransform(e.rules, e.roller, &battle))
	if battle.Faces == nil {
		return false
	}
	e.metrics.AddAttack(len(battle.Faces), battle.Hits, battle.Destroyed)
	log.Info().
		Strs("faces", faceNames(battle.Faces)).
		Int("hits", battle.Hits).
		Bool("destroyed", battle.Destroyed).
		Msgf("attack %v -> %v", src, dest)
	return true
}

// EndPhase moves on to the next phase of the turn.
func (e *Engine) EndPhase() game.Phase {
	from := e.Phase
	e.Phase.Advance()
	log.Debug().Msgf("phase %v -> %v", from, e.Phase)
	return e.Phase
}

// Metrics returns the collected battle metrics.
func (e *Engine) Metrics() metrics.BattleMetric {
	return e.metrics.Complete()
}

func (e *Engine) sweep() {
	for _, h := range e.Board.ResetView() {
		log.Info().Msgf("unit destroyed at %v removed", h)
	}
}

func faceNames(faces []game.Face) []string {
	names := make([]string, len(faces))
	for i, f := range faces {
		names[i] = f.String()
	}
	return names
}
