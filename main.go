package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"boardgameai/engine"
	"boardgameai/experiments"
	"boardgameai/experiments/metrics"
	"boardgameai/game"
	"boardgameai/games/chess"
	"boardgameai/games/tictactoe"
	"boardgameai/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type playConfig struct {
	game     string
	p1       string
	p2       string
	depth    int
	playouts int
	seed     int64
}

func main() {
	mode := flag.String("mode", "bench", "bench runs test definitions, play renders a single match")
	testsPath := flag.String("tests", "tests.json", "Benchmark test definitions (bench)")
	workers := flag.Int("workers", experiments.DefaultWorkers, "Matches played in parallel (bench)")
	outDir := flag.String("out", "", "Directory for CSV results, none if empty (bench)")
	verbose := flag.Bool("v", false, "Debug logging")

	var play playConfig
	flag.StringVar(&play.game, "game", "tic-tac-toe", "Game to play (play)")
	flag.StringVar(&play.p1, "p1", "MCTS", "Strategy of Player1 (play)")
	flag.StringVar(&play.p2, "p2", "Random", "Strategy of Player2 (play)")
	flag.IntVar(&play.depth, "depth", searcher.DefaultDepth, "MinMax search depth (play)")
	flag.IntVar(&play.playouts, "playouts", searcher.DefaultPlayouts, "MCTS iterations per move (play)")
	flag.Int64Var(&play.seed, "seed", -1, "Random seed, unseeded if negative (play)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *mode {
	case "bench":
		err = runBenchmark(ctx, *testsPath, *workers, *outDir)
	case "play":
		err = runPlay(play)
	default:
		err = fmt.Errorf("unknown mode %q, expected bench or play", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func runBenchmark(ctx context.Context, path string, workers int, outDir string) error {
	tests, err := experiments.LoadTestsFile(path)
	if err != nil {
		return err
	}

	results, err := experiments.RunBenchmark(ctx, tests, workers)
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Println(result)
	}
	_, _, moves := experiments.Records(results)
	fmt.Print(experiments.FormatThroughput(experiments.MeasureThroughput(moves)))

	if outDir == "" {
		return nil
	}
	writer, err := metrics.NewWriter(outDir, "benchmark")
	if err != nil {
		return err
	}
	if err := experiments.WriteResults(writer, results); err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", writer.Dir())
	return nil
}

func runPlay(conf playConfig) error {
	options := []searcher.Option{
		searcher.WithDepth(conf.depth),
		searcher.WithPlayouts(conf.playouts),
	}
	if conf.seed >= 0 {
		options = append(options, searcher.WithSeed(uint64(conf.seed)))
	}

	out := termenv.NewOutput(os.Stdout)
	switch conf.game {
	case "tic-tac-toe":
		return playMatch(out, tictactoe.New(), tictactoe.Strategies(), conf, options)
	case "chess":
		return playMatch(out, chess.New(), chess.Strategies(), conf, options)
	default:
		return fmt.Errorf("%w %q, expected one of %v", experiments.ErrUnknownGame, conf.game, experiments.GameNames())
	}
}

// playMatch runs one match and renders every position
func playMatch[S fmt.Stringer, A comparable](out *termenv.Output, g game.Game[S, A], registry searcher.Registry[S, A], conf playConfig, options []searcher.Option) error {
	p1, err := registry.New(conf.p1, options...)
	if err != nil {
		return err
	}
	p2, err := registry.New(conf.p2, options...)
	if err != nil {
		return err
	}

	title := out.String(fmt.Sprintf("%s: %s vs %s", g.Name(), p1.Name(), p2.Name())).Bold()
	fmt.Fprintf(out, "%s\n\n%s\n\n", title, g.Init())

	e := engine.LocalEngine(g, p1, p2)
	e.Observer = func(u engine.Update[S, A]) {
		header := out.String(fmt.Sprintf("Move %d: %s plays %v", u.Step, u.Player, u.Action)).
			Foreground(out.Color("6"))
		fmt.Fprintf(out, "%s\n%s\n\n", header, u.State)
	}

	result, err := e.Run()
	if err != nil {
		return err
	}

	color := "3"
	if result.Status != game.Draw {
		color = "2"
	}
	summary := out.String(fmt.Sprintf("%s after %d moves (%s, %s)",
		result.Status, result.Game.TotalMoves, result.Game.Player1Time, result.Game.Player2Time))
	fmt.Fprintln(out, summary.Foreground(out.Color(color)).Bold())
	return nil
}
