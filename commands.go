// commands.go
//
// Implementations of the serve/solve/analyze/bench subcommands.
// The interactive play shell lives in interactive.go.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mfriedel/wordle-solver/internal/bench"
	"github.com/mfriedel/wordle-solver/internal/core"
	"github.com/mfriedel/wordle-solver/internal/daily"
	"github.com/mfriedel/wordle-solver/internal/httpserver"
	"github.com/mfriedel/wordle-solver/internal/solver"
	"github.com/mfriedel/wordle-solver/internal/store"
	"github.com/mfriedel/wordle-solver/internal/words"
)

// cmdServe starts the HTTP API, with SQLite-backed benchmark
// persistence unless -db is set to the empty string.
func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", getEnv("PORT", "5175"), "listen port")
	dbPath := fs.String("db", getEnv("DB_PATH", "./data/solver.db"), `SQLite path, "" disables persistence`)
	_ = fs.Parse(args)

	var srv *httpserver.Server
	if *dbPath == "" {
		log.Warn().Msg("no database path; /bench endpoints disabled")
		srv = httpserver.New(store.NewMemoryStore(), nil)
	} else {
		db, err := openDB(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *dbPath).Msg("open database")
		}
		defer db.Close()
		if err := migrate(db); err != nil {
			log.Fatal().Err(err).Msg("apply migrations")
		}
		srv = httpserver.New(store.NewMemoryStore(), db)
	}

	answers, allowed := words.Stats()
	log.Info().
		Str("port", *port).
		Int("answers", answers).
		Int("allowed", allowed).
		Msg("starting solver server")
	if err := srv.Start(":" + *port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// cmdSolve plays out one game against a known answer and prints the
// transcript. With no answer argument it solves today's daily word.
func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	strategy := fs.String("strategy", "adaptive", "selection strategy")
	first := fs.String("first", "", "forced opening guess")
	_ = fs.Parse(args)

	answerPool := words.AnswerPool()
	var answer core.Word
	if rest := fs.Args(); len(rest) > 0 {
		w, err := core.NewWord(rest[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid answer %q: %v\n", rest[0], err)
			os.Exit(2)
		}
		answer = w
	} else {
		salt := getEnv("DAILY_SALT", "wordle-solver")
		w, ok := daily.WordFor(time.Now(), salt, answerPool)
		if !ok {
			fmt.Fprintln(os.Stderr, "answer pool is empty")
			os.Exit(1)
		}
		answer = w
		fmt.Printf("daily puzzle for %s\n", daily.DateKey(time.Now()))
	}

	engine := solver.NewEngine(solver.StrategyFromName(*strategy), words.GuessPool(), answerPool)

	var history []solver.Turn
	for turn := 1; turn <= 10; turn++ {
		var guess core.Word
		if turn == 1 && *first != "" {
			w, err := core.NewWord(*first)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid first guess %q: %v\n", *first, err)
				os.Exit(2)
			}
			guess = w
		} else {
			g, ok := engine.NextGuess(history)
			if !ok {
				fmt.Println("no candidates remain; is the answer in the word list?")
				os.Exit(1)
			}
			guess = g
		}

		p := core.Calculate(guess, answer)
		fmt.Printf("%d. %s  %s  (%d candidates)\n",
			turn, guess.Text(), p.Emoji(), engine.CountCandidates(history))
		if p.IsPerfect() {
			fmt.Printf("solved in %d\n", turn)
			return
		}
		history = append(history, solver.Turn{Guess: guess, Pattern: p})
	}
	fmt.Println("gave up after 10 guesses")
	os.Exit(1)
}

// cmdAnalyze scores the given guesses against the full answer pool,
// and optionally lists the best openers by entropy.
func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	top := fs.Int("top", 0, "also list the N best openers by entropy")
	_ = fs.Parse(args)

	answerPool := words.AnswerPool()
	guessPool := words.GuessPool()

	for _, arg := range fs.Args() {
		w, err := core.NewWord(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", arg, err)
			continue
		}
		m := solver.ComputeMetrics(w, answerPool)
		fmt.Printf("%s  entropy=%.4f  expected=%.2f  worst=%d\n",
			w.Text(), m.Entropy, m.ExpectedRemaining, m.MaxPartition)
	}

	if *top > 0 {
		type scored struct {
			word core.Word
			m    solver.GuessMetrics
		}
		all := make([]scored, len(guessPool))
		metrics := solver.EvalMetrics(guessPool, answerPool)
		for i, w := range guessPool {
			all[i] = scored{word: w, m: metrics[i]}
		}
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].m.Entropy > all[j].m.Entropy
		})
		n := *top
		if n > len(all) {
			n = len(all)
		}
		fmt.Printf("\ntop %d openers by entropy:\n", n)
		for i := 0; i < n; i++ {
			fmt.Printf("%2d. %s  entropy=%.4f  expected=%.2f  worst=%d\n",
				i+1, all[i].word.Text(), all[i].m.Entropy,
				all[i].m.ExpectedRemaining, all[i].m.MaxPartition)
		}
	}
}

// cmdBench benchmarks a strategy and optionally persists the summary.
func cmdBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	strategy := fs.String("strategy", "adaptive", "selection strategy")
	limit := fs.Int("n", 0, "benchmark only the first N answers (0 = all)")
	first := fs.String("first", "", "forced opening guess")
	dbPath := fs.String("db", "", "persist the run summary to this SQLite path")
	_ = fs.Parse(args)

	res, err := bench.Run(bench.Options{
		Strategy:   *strategy,
		FirstGuess: *first,
		Limit:      *limit,
	}, words.GuessPool(), words.AnswerPool())
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}

	fmt.Printf("strategy:   %s\n", orDefault(res.Strategy, "adaptive"))
	if res.FirstGuess != "" {
		fmt.Printf("opener:     %s\n", res.FirstGuess)
	}
	fmt.Printf("words:      %d\n", res.Words)
	fmt.Printf("solved:     %d (%.1f%%)\n", res.Solved, 100*float64(res.Solved)/float64(res.Words))
	fmt.Printf("failed:     %d\n", res.Failed)
	fmt.Printf("guesses:    min=%d max=%d avg=%.3f\n", res.MinGuesses, res.MaxGuesses, res.AvgGuesses)
	fmt.Printf("throughput: %.1f words/s over %s\n", res.WordsPerSecond, res.Duration.Round(time.Millisecond))

	fmt.Println("distribution:")
	maxTurns := 0
	for t := range res.Distribution {
		if t > maxTurns {
			maxTurns = t
		}
	}
	for t := 1; t <= maxTurns; t++ {
		if n := res.Distribution[t]; n > 0 {
			fmt.Printf("  %2d: %d\n", t, n)
		}
	}

	if *dbPath != "" {
		db, err := openDB(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *dbPath).Msg("open database")
		}
		defer db.Close()
		if err := migrate(db); err != nil {
			log.Fatal().Err(err).Msg("apply migrations")
		}
		id, err := bench.NewStore(db).SaveResult(context.Background(), res)
		if err != nil {
			log.Fatal().Err(err).Msg("save bench run")
		}
		fmt.Printf("saved as run %d\n", id)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
