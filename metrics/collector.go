package metrics

import (
	"sync/atomic"
	"time"
)

// BattleMetric summarises what happened on the board since Start.
type BattleMetric struct {
	Duration   time.Duration
	Moves      int
	Steps      int
	Attacks    int
	DiceRolled int
	Hits       int
	Destroyed  int
}

type Collector interface {
	Start()
	AddMove(steps int)
	AddAttack(dice, hits int, destroyed bool)
	Complete() BattleMetric
}

type collector struct {
	startTime  time.Time
	moves      atomic.Int32
	steps      atomic.Int32
	attacks    atomic.Int32
	diceRolled atomic.Int32
	hits       atomic.Int32
	destroyed  atomic.Int32
}

func NewCollector() Collector {
	c := &collector{}
	c.Start()
	return c
}

// Start resets the counters and the clock.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.moves.Store(0)
	m.steps.Store(0)
	m.attacks.Store(0)
	m.diceRolled.Store(0)
	m.hits.Store(0)
	m.destroyed.Store(0)
}

func (m *collector) AddMove(steps int) {
	m.moves.Add(1)
	m.steps.Add(int32(steps))
}

func (m *collector) AddAttack(dice, hits int, destroyed bool) {
	m.attacks.Add(1)
	m.diceRolled.Add(int32(dice))
	m.hits.Add(int32(hits))
	if destroyed {
		m.destroyed.Add(1)
	}
}

func (m *collector) Complete() BattleMetric {
	return BattleMetric{
		Duration:   time.Since(m.startTime),
		Moves:      int(m.moves.Load()),
		Steps:      int(m.steps.Load()),
		Attacks:    int(m.attacks.Load()),
		DiceRolled: int(m.diceRolled.Load()),
		Hits:       int(m.hits.Load()),
		Destroyed:  int(m.destroyed.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                   {}
func (m *dummyCollector) AddMove(steps int)                        {}
func (m *dummyCollector) AddAttack(dice, hits int, destroyed bool) {}
func (m *dummyCollector) Complete() BattleMetric                   { return BattleMetric{} }
