package metrics

import (
	"sync/atomic"
	"time"
)

// RunMetric summarizes the games played for one player count.
type RunMetric struct {
	Players    int
	Games      int
	TotalTurns int64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// GamesPerSecond is the simulation throughput.
func (m RunMetric) GamesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Games) / m.Duration.Seconds()
}

type Collector interface {
	Start(players int)
	AddGame(turns int)
	Complete() RunMetric
}

type collector struct {
	players   int
	startTime time.Time
	games     atomic.Int64
	turns     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(players int) {
	m.startTime = time.Now()
	m.players = players
	m.games.Store(0)
	m.turns.Store(0)
}

func (m *collector) AddGame(turns int) {
	m.games.Add(1)
	m.turns.Add(int64(turns))
}

func (m *collector) Complete() RunMetric {
	end := time.Now()
	return RunMetric{
		Players:    m.players,
		Games:      int(m.games.Load()),
		TotalTurns: m.turns.Load(),
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(players int)   {}
func (m *dummyCollector) AddGame(turns int)   {}
func (m *dummyCollector) Complete() RunMetric { return RunMetric{} }
