package experiments

import (
	"encoding/json"
	"io"
	"os"

	"boardgameai/searcher"

	"github.com/pkg/errors"
)

// Test is one benchmark entry: a number of matches of one game between two
// configured strategies.
type Test struct {
	Label      string
	Game       string
	P1Strat    searcher.Config
	P2Strat    searcher.Config
	Iterations int
}

// LoadTestsFile reads test definitions from a JSON file
func LoadTestsFile(path string) ([]Test, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open test definitions")
	}
	defer f.Close()

	tests, err := LoadTests(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "in %s", path)
	}
	return tests, nil
}

// LoadTests decodes a JSON array of test definitions:
//
//	[{"label": "...", "game": "tic-tac-toe",
//	  "p1Strat": {"name": "MCTS", "playouts": 200},
//	  "p2Strat": {"name": "Random"},
//	  "iterations": 10}]
func LoadTests(r io.Reader) ([]Test, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var root any
	if err := decoder.Decode(&root); err != nil {
		return nil, errors.Wrap(err, "malformed JSON")
	}
	definitions, ok := root.([]any)
	if !ok {
		return nil, errors.New("malformed JSON, expected the root to be an array")
	}

	tests := make([]Test, 0, len(definitions))
	for i, d := range definitions {
		test, err := parseTest(d)
		if err != nil {
			return nil, errors.WithMessagef(err, "test %d", i)
		}
		tests = append(tests, test)
	}
	return tests, nil
}

func parseTest(definition any) (Test, error) {
	fields, ok := definition.(map[string]any)
	if !ok {
		return Test{}, errors.Errorf("expected an object, got %T", definition)
	}

	var test Test
	var err error

	if test.Label, ok = fields["label"].(string); !ok {
		return Test{}, errors.New("label must be a string")
	}
	if test.Game, ok = fields["game"].(string); !ok {
		return Test{}, errors.New("game must be a string")
	}
	if _, err = Lookup(test.Game); err != nil {
		return Test{}, err
	}
	if test.P1Strat, err = parseStrategy(fields, "p1Strat"); err != nil {
		return Test{}, err
	}
	if test.P2Strat, err = parseStrategy(fields, "p2Strat"); err != nil {
		return Test{}, err
	}

	number, ok := fields["iterations"].(json.Number)
	if !ok {
		return Test{}, errors.New("iterations must be a number")
	}
	iterations, err := number.Int64()
	if err != nil || iterations < 1 {
		return Test{}, errors.Errorf("iterations must be a positive integer, got %s", number)
	}
	test.Iterations = int(iterations)

	return test, nil
}

func parseStrategy(fields map[string]any, key string) (searcher.Config, error) {
	conf, ok := fields[key].(map[string]any)
	if !ok {
		return nil, errors.Errorf("%s must be an object", key)
	}
	if _, err := searcher.Config(conf).Name(); err != nil {
		return nil, errors.WithMessage(err, key)
	}
	return searcher.Config(conf), nil
}
