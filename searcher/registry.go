package searcher

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type Constructor[S any, A comparable] func(options ...Option) Strategy[S, A]

// Registry builds strategies by name for one game
type Registry[S any, A comparable] map[string]Constructor[S, A]

// DefaultRegistry registers every strategy of this package. The heuristic is
// used by the minimax variants.
func DefaultRegistry[S any, A comparable](heuristic Heuristic[S, A]) Registry[S, A] {
	return Registry[S, A]{
		"Random": func(options ...Option) Strategy[S, A] {
			return NewRandom[S, A](options...)
		},
		"MinMax": func(options ...Option) Strategy[S, A] {
			return NewMinMax(heuristic, append([]Option{WithAlphaBeta(false)}, options...)...)
		},
		"MinMaxAB": func(options ...Option) Strategy[S, A] {
			return NewMinMax(heuristic, append([]Option{WithAlphaBeta(true)}, options...)...)
		},
		"IterativeMinMax": func(options ...Option) Strategy[S, A] {
			return NewIterativeMinMax(heuristic, options...)
		},
		"MCTS": func(options ...Option) Strategy[S, A] {
			return NewMCTS[S, A](options...)
		},
	}
}

func (r Registry[S, A]) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r Registry[S, A]) New(name string, options ...Option) (Strategy[S, A], error) {
	constructor, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownStrategy, name, r.Names())
	}
	return constructor(options...), nil
}

// Build resolves the configuration's name, then configures the new strategy
func (r Registry[S, A]) Build(conf Config, options ...Option) (Strategy[S, A], error) {
	name, err := conf.Name()
	if err != nil {
		return nil, err
	}

	strategy, err := r.New(name, options...)
	if err != nil {
		return nil, err
	}

	if c, ok := strategy.(Configurable); ok {
		if err := c.Configure(conf); err != nil {
			return nil, fmt.Errorf("failed to configure %s: %w", name, err)
		}
	}
	return strategy, nil
}
