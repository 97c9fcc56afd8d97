package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one SelectAction call
type SearchMetric struct {
	Strategy     string
	Duration     time.Duration
	Nodes        int // Positions evaluated or expanded
	Episodes     int // MCTS iterations
	FullPlayouts int // Playouts that had to be simulated to the end
}

type MoveMetric struct {
	Step   int
	Player int // 1 or 2
	SearchMetric
}

type GameMetric struct {
	Game        string
	Status      string
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalMoves  int
	Player1Time time.Duration
	Player2Time time.Duration
}

type Collector interface {
	Start(strategy string)
	AddNode()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	strategy     string
	startTime    time.Time
	nodes        atomic.Int64
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search
func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:     m.strategy,
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
