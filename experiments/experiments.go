package experiments

import (
	"fmt"
	"lrc/config"
	"lrc/engine"
	"lrc/experiments/metrics"
	"lrc/meta"
	"lrc/utils"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary holds the statistics of every game played with one player count.
type Summary struct {
	Players     int
	Games       int
	MeanTurns   float64
	StdDevTurns float64
	WinProbs    []float64 // Indexed by seat
	Deviations  []float64 // WinProbs minus the fair share 1/Players
}

// BestSeat is the seat with the highest win probability, lowest seat first.
func (s Summary) BestSeat() int {
	return utils.ArgMax(s.WinProbs)
}

type Option func(e *Experiment)

func WithMetrics() Option {
	return func(e *Experiment) {
		e.metrics = metrics.NewCollector()
	}
}

// WithProgress calls fn with each summary as soon as its player count completes.
func WithProgress(fn func(Summary)) Option {
	return func(e *Experiment) {
		if fn != nil {
			e.progress = fn
		}
	}
}

type Experiment struct {
	numGames   int
	maxPlayers int
	seed       uint64
	rng        *rand.Rand
	metrics    metrics.Collector
	progress   func(Summary)
}

// NewExperiment validates cfg and seeds the experiment's random generator.
func NewExperiment(cfg config.Config, options ...Option) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.RandomSeed != nil {
		seed = *cfg.RandomSeed
	}

	e := &Experiment{ // Default values
		numGames:   cfg.NumGames,
		maxPlayers: cfg.MaxPlayers,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
		metrics:    metrics.NewDummyCollector(),
		progress:   func(Summary) {},
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Seed returns the seed the experiment's generator started from.
func (e *Experiment) Seed() uint64 {
	return e.seed
}

// Run sweeps every player count and returns one summary per count, in order.
func (e *Experiment) Run() []Summary {
	log.Info().Msgf("starting sweep of %d to %d players with %s games each (seed %d)...",
		meta.MIN_PLAYERS, e.maxPlayers-1, humanize.Comma(int64(e.numGames)), e.seed)

	summaries := make([]Summary, 0, e.maxPlayers-meta.MIN_PLAYERS)
	for n := meta.MIN_PLAYERS; n < e.maxPlayers; n++ {
		summary := e.RunPlayers(n)
		summaries = append(summaries, summary)
		e.progress(summary)
	}

	log.Info().Msg("completed sweep")
	return summaries
}

// RunPlayers plays the configured number of games with numPlayers seats.
func (e *Experiment) RunPlayers(numPlayers int) Summary {
	if numPlayers < meta.MIN_PLAYERS {
		panic(fmt.Sprintf("need at least %d players, got %d", meta.MIN_PLAYERS, numPlayers))
	}

	log.Debug().Msgf("starting %d player games...", numPlayers)
	e.metrics.Start(numPlayers)

	wins := make([]int, numPlayers)
	var turns turnStats
	for i := 0; i < e.numGames; i++ {
		result := engine.Play(numPlayers, e.rng)
		wins[result.Winner()]++
		turns.Add(float64(result.Turns))
		e.metrics.AddGame(result.Turns)
	}

	summary := summarize(numPlayers, e.numGames, wins, &turns)

	metric := e.metrics.Complete()
	if metric.Games > 0 {
		log.Info().
			Int("players", metric.Players).
			Str("games", humanize.Comma(int64(metric.Games))).
			Str("turns", humanize.Comma(metric.TotalTurns)).
			Dur("duration", metric.Duration).
			Float64("games_per_sec", metric.GamesPerSecond()).
			Msg("run metrics")
	}
	log.Info().Msgf("completed %d player games: mean turns %.2f, best seat %d",
		numPlayers, summary.MeanTurns, summary.BestSeat())

	return summary
}

func summarize(numPlayers, numGames int, wins []int, turns *turnStats) Summary {
	fair := 1 / float64(numPlayers)
	probs := make([]float64, numPlayers)
	deviations := make([]float64, numPlayers)
	for seat, count := range wins {
		probs[seat] = float64(count) / float64(numGames)
		deviations[seat] = probs[seat] - fair
	}

	return Summary{
		Players:     numPlayers,
		Games:       numGames,
		MeanTurns:   turns.Mean(),
		StdDevTurns: turns.StdDev(),
		WinProbs:    probs,
		Deviations:  deviations,
	}
}
