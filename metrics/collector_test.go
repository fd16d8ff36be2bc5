package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.AddMove(2)
	c.AddMove(1)
	c.AddAttack(3, 2, false)
	c.AddAttack(2, 2, true)

	m := c.Complete()
	require.Equal(t, 2, m.Moves)
	require.Equal(t, 3, m.Steps)
	require.Equal(t, 2, m.Attacks)
	require.Equal(t, 5, m.DiceRolled)
	require.Equal(t, 4, m.Hits)
	require.Equal(t, 1, m.Destroyed)
	require.GreaterOrEqual(t, m.Duration.Nanoseconds(), int64(0))

	c.Start()
	require.Zero(t, c.Complete().Attacks)
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.AddAttack(1, 1, false)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 800, c.Complete().Hits)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.AddMove(3)
	c.AddAttack(3, 3, true)
	require.Equal(t, BattleMetric{}, c.Complete())
}
