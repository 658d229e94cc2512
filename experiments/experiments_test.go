package experiments

import (
	"testing"

	"lrc/config"

	"github.com/stretchr/testify/require"
)

func testConfig(games, maxPlayers int, seed uint64) config.Config {
	cfg := config.Default()
	cfg.NumGames = games
	cfg.MaxPlayers = maxPlayers
	cfg.RandomSeed = &seed
	return cfg
}

func TestNewExperiment(t *testing.T) {
	t.Run("rejecting invalid configuration", func(t *testing.T) {
		_, err := NewExperiment(testConfig(0, 21, 1))

		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("using the configured seed", func(t *testing.T) {
		e, err := NewExperiment(testConfig(10, 4, 99))

		require.NoError(t, err)
		require.Equal(t, uint64(99), e.Seed())
	})
}

func TestRun(t *testing.T) {
	e, err := NewExperiment(testConfig(2000, 7, 7))
	require.NoError(t, err)

	summaries := e.Run()

	require.Len(t, summaries, 5, "Should cover 2 to 6 players")
	for i, s := range summaries {
		n := i + 2
		require.Equal(t, n, s.Players)
		require.Equal(t, 2000, s.Games)
		require.Len(t, s.WinProbs, n)
		require.Len(t, s.Deviations, n)
		require.Greater(t, s.MeanTurns, 0.0)
		require.Greater(t, s.StdDevTurns, 0.0)

		probSum, devSum := 0.0, 0.0
		for seat := range s.WinProbs {
			require.InDelta(t, s.WinProbs[seat]-1/float64(n), s.Deviations[seat], 1e-12)
			probSum += s.WinProbs[seat]
			devSum += s.Deviations[seat]
		}
		require.InDelta(t, 1.0, probSum, 1e-9, "Win probabilities should sum to 1")
		require.InDelta(t, 0.0, devSum, 1e-9, "Fairness deviations should sum to 0")

		best := s.BestSeat()
		for _, p := range s.WinProbs {
			require.LessOrEqual(t, p, s.WinProbs[best])
		}
	}
}

func TestRunReproducible(t *testing.T) {
	first, err := NewExperiment(testConfig(500, 5, 12345))
	require.NoError(t, err)
	second, err := NewExperiment(testConfig(500, 5, 12345))
	require.NoError(t, err)

	require.Equal(t, first.Run(), second.Run(), "Same seed should produce the same summaries")
}

func TestRunOptions(t *testing.T) {
	t.Run("reporting progress in order", func(t *testing.T) {
		var seen []int
		e, err := NewExperiment(testConfig(50, 6, 3), WithProgress(func(s Summary) {
			seen = append(seen, s.Players)
		}))
		require.NoError(t, err)

		e.Run()

		require.Equal(t, []int{2, 3, 4, 5}, seen)
	})

	t.Run("collecting metrics", func(t *testing.T) {
		e, err := NewExperiment(testConfig(50, 4, 3), WithMetrics())
		require.NoError(t, err)

		summaries := e.Run()

		require.Len(t, summaries, 2)
	})

	t.Run("ignoring nil progress", func(t *testing.T) {
		e, err := NewExperiment(testConfig(5, 3, 3), WithProgress(nil))
		require.NoError(t, err)

		require.NotPanics(t, func() { e.Run() })
	})
}

func TestRunPlayers(t *testing.T) {
	t.Run("single game", func(t *testing.T) {
		e, err := NewExperiment(testConfig(1, 3, 8))
		require.NoError(t, err)

		s := e.RunPlayers(4)

		require.Zero(t, s.StdDevTurns, "One game should have no spread")
		require.Contains(t, s.WinProbs, 1.0, "The only winner should win every game")
		require.InDelta(t, 0.75, s.Deviations[s.BestSeat()], 1e-12)
	})

	t.Run("panics with one player", func(t *testing.T) {
		e, err := NewExperiment(testConfig(1, 3, 8))
		require.NoError(t, err)

		require.Panics(t, func() { e.RunPlayers(1) })
	})
}

func TestSummarize(t *testing.T) {
	var turns turnStats
	turns.Add(10)
	turns.Add(20)

	s := summarize(4, 8, []int{4, 2, 2, 0}, &turns)

	require.Equal(t, []float64{0.5, 0.25, 0.25, 0}, s.WinProbs)
	require.Equal(t, []float64{0.25, 0, 0, -0.25}, s.Deviations)
	require.Equal(t, 15.0, s.MeanTurns)
	require.Equal(t, 0, s.BestSeat())
}
