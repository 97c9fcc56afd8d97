package searcher

import (
	"boardgameai/experiments/metrics"

	"golang.org/x/exp/rand"
)

const (
	DefaultDepth    = 4
	DefaultPlayouts = 100
)

type Option func(c *config)

type config struct {
	depth     int
	alphaBeta bool
	playouts  int
	seed      uint64
	seeded    bool
	metrics   bool
}

func defaultConfig() config {
	return config{
		depth:     DefaultDepth,
		alphaBeta: true,
		playouts:  DefaultPlayouts,
	}
}

// WithDepth sets the minimax search depth, not counting the root ply
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.depth = depth
		}
	}
}

func WithAlphaBeta(enabled bool) Option {
	return func(c *config) {
		c.alphaBeta = enabled
	}
}

// WithPlayouts sets the number of MCTS iterations per move
func WithPlayouts(playouts int) Option {
	return func(c *config) {
		if playouts > 0 {
			c.playouts = playouts
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

// base carries the state shared by every strategy: options, randomness and
// the metrics of the last search.
type base struct {
	config
	rng       *rand.Rand
	collector metrics.Collector
	last      metrics.SearchMetric
}

func newBase(options []Option) base {
	b := base{config: defaultConfig()}
	b.apply(options...)
	return b
}

func (b *base) apply(options ...Option) {
	for _, option := range options {
		option(&b.config)
	}

	b.rng = nil
	if b.seeded {
		b.rng = rand.New(rand.NewSource(b.seed))
	}

	b.collector = metrics.NewDummyCollector()
	if b.metrics {
		b.collector = metrics.NewCollector()
	}
}

// intn draws from the strategy's own source when seeded, otherwise from the
// shared package source.
func (b *base) intn(n int) int {
	if b.rng != nil {
		return b.rng.Intn(n)
	}
	return rand.Intn(n)
}

func (b *base) begin(name string) {
	b.collector.Start(name)
}

func (b *base) finish() {
	b.last = b.collector.Complete()
}

func (b *base) LastMetric() metrics.SearchMetric {
	return b.last
}

// Configure applies a runtime configuration on top of the current options
func (b *base) Configure(conf Config) error {
	options, err := conf.Options()
	if err != nil {
		return err
	}
	b.apply(options...)
	return nil
}
