package experiments

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTurnStats(t *testing.T) {
	t.Run("computing sample statistics", func(t *testing.T) {
		var s turnStats
		for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
			s.Add(x)
		}

		require.InDelta(t, 5.0, s.Mean(), 1e-12)
		require.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev(), 1e-12)
	})

	t.Run("single sample has no spread", func(t *testing.T) {
		var s turnStats
		s.Add(17)

		require.Equal(t, 17.0, s.Mean())
		require.Zero(t, s.StdDev())
	})

	t.Run("empty", func(t *testing.T) {
		var s turnStats

		require.Zero(t, s.Mean())
		require.Zero(t, s.StdDev())
	})
}
