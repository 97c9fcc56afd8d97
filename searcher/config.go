package searcher

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Config is a structured strategy configuration, usually a decoded JSON
// object such as {"name": "MinMaxAB", "depth": 5}.
type Config map[string]any

const (
	KeyName      = "name"
	KeyDepth     = "depth"
	KeyAlphaBeta = "alphaBeta"
	KeyPlayouts  = "playouts"
	KeySeed      = "seed"
)

// Name returns the strategy name of the configuration
func (c Config) Name() (string, error) {
	value, ok := c[KeyName]
	if !ok {
		return "", errors.New("strategy configuration has no name")
	}
	name, ok := value.(string)
	if !ok {
		return "", errors.Errorf("strategy name must be a string, got %T", value)
	}
	return name, nil
}

// Options converts the recognized keys into strategy options
func (c Config) Options() ([]Option, error) {
	var options []Option
	for key, value := range c {
		switch key {
		case KeyName:
		case KeyDepth:
			depth, err := toInt(value)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse configuration %s=%v", key, value)
			}
			if depth < 0 {
				return nil, errors.Errorf("configuration %s must not be negative, got %d", key, depth)
			}
			options = append(options, WithDepth(depth))
		case KeyAlphaBeta:
			enabled, ok := value.(bool)
			if !ok {
				return nil, errors.Errorf("failed to parse configuration %s=%v to bool", key, value)
			}
			options = append(options, WithAlphaBeta(enabled))
		case KeyPlayouts:
			playouts, err := toInt(value)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse configuration %s=%v", key, value)
			}
			if playouts < 1 {
				return nil, errors.Errorf("configuration %s must be positive, got %d", key, playouts)
			}
			options = append(options, WithPlayouts(playouts))
		case KeySeed:
			seed, err := toInt(value)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse configuration %s=%v", key, value)
			}
			options = append(options, WithSeed(uint64(seed)))
		default:
			log.Debug().Msgf("ignoring unknown strategy configuration %s=%v", key, value)
		}
	}
	return options, nil
}

// With returns a copy of c with key set to value
func (c Config) With(key string, value any) Config {
	clone := make(Config, len(c)+1)
	for k, v := range c {
		clone[k] = v
	}
	clone[key] = value
	return clone
}

// WithSeedOffset returns a copy of c whose seed is shifted by offset.
// Unseeded configurations are returned as they are.
func (c Config) WithSeedOffset(offset int) (Config, error) {
	value, ok := c[KeySeed]
	if !ok {
		return c, nil
	}
	seed, err := toInt(value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse configuration %s=%v", KeySeed, value)
	}
	return c.With(KeySeed, seed+offset), nil
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, errors.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, errors.Wrap(err, "not an integer")
		}
		return int(n), nil
	default:
		return 0, errors.Errorf("expected a number, got %T", value)
	}
}
