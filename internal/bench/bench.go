// internal/bench/bench.go
//
// Benchmark runner for solver strategies.
//
// Responsibilities:
//   - Play the solver against every answer in the pool (or the first
//     N of it) and record how many guesses each word took.
//   - Aggregate min/max/avg guess counts, a guess-count distribution,
//     wall-clock duration and throughput.
//
// A word counts as solved when the solver reaches the perfect pattern
// within MaxTurns guesses. The loop still plays out up to hardTurnCap
// turns so the distribution records how badly a failure overshot.

package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mfriedel/wordle-solver/internal/core"
	"github.com/mfriedel/wordle-solver/internal/solver"
)

// DefaultMaxTurns is the standard Wordle turn allowance.
const DefaultMaxTurns = 6

// hardTurnCap bounds the play loop for pathological strategies.
const hardTurnCap = 10

// Options configures a benchmark run.
type Options struct {
	Strategy   string // strategy name, see solver.StrategyFromName
	FirstGuess string // forced opener; empty lets the engine choose
	Limit      int    // benchmark only the first N answers; 0 = all
	MaxTurns   int    // turns allowed before a word counts as failed
}

// Result is the aggregate outcome of one benchmark run.
type Result struct {
	Strategy       string        `json:"strategy"`
	FirstGuess     string        `json:"first_guess,omitempty"`
	Words          int           `json:"words"`
	Solved         int           `json:"solved"`
	Failed         int           `json:"failed"`
	MinGuesses     int           `json:"min_guesses"`
	MaxGuesses     int           `json:"max_guesses"`
	AvgGuesses     float64       `json:"avg_guesses"`
	Distribution   map[int]int   `json:"distribution"`
	Duration       time.Duration `json:"duration_ns"`
	WordsPerSecond float64       `json:"words_per_sec"`
	StartedAt      time.Time     `json:"started_at"`
}

// Run benchmarks the named strategy over answerPool.
func Run(opts Options, guessPool, answerPool []core.Word) (*Result, error) {
	if len(guessPool) == 0 || len(answerPool) == 0 {
		return nil, errors.New("bench: empty word pool")
	}

	targets := answerPool
	if opts.Limit > 0 && opts.Limit < len(targets) {
		targets = targets[:opts.Limit]
	}
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	var forced core.Word
	hasForced := false
	if opts.FirstGuess != "" {
		w, err := core.NewWord(opts.FirstGuess)
		if err != nil {
			return nil, fmt.Errorf("bench: first guess: %w", err)
		}
		forced = w
		hasForced = true
	}

	engine := solver.NewEngine(solver.StrategyFromName(opts.Strategy), guessPool, answerPool)

	res := &Result{
		Strategy:     opts.Strategy,
		FirstGuess:   opts.FirstGuess,
		Words:        len(targets),
		MinGuesses:   hardTurnCap + 1,
		Distribution: make(map[int]int),
		StartedAt:    time.Now(),
	}

	start := time.Now()
	for i, answer := range targets {
		turns := playOut(engine, answer, forced, hasForced)
		res.Distribution[turns]++
		if turns <= maxTurns {
			res.Solved++
		} else {
			res.Failed++
			log.Debug().
				Str("answer", answer.Text()).
				Int("turns", turns).
				Msg("benchmark miss")
		}
		if turns < res.MinGuesses {
			res.MinGuesses = turns
		}
		if turns > res.MaxGuesses {
			res.MaxGuesses = turns
		}
		res.AvgGuesses += float64(turns)

		if (i+1)%500 == 0 {
			log.Info().
				Int("done", i+1).
				Int("total", len(targets)).
				Msg("benchmark progress")
		}
	}

	res.Duration = time.Since(start)
	res.AvgGuesses /= float64(len(targets))
	if secs := res.Duration.Seconds(); secs > 0 {
		res.WordsPerSecond = float64(len(targets)) / secs
	}
	return res, nil
}

// playOut plays one full game against answer and returns the number
// of guesses used, capped at hardTurnCap+1 when the solver never hits.
func playOut(engine *solver.Engine, answer, forced core.Word, hasForced bool) int {
	var history []solver.Turn
	for turn := 1; turn <= hardTurnCap; turn++ {
		var guess core.Word
		if turn == 1 && hasForced {
			guess = forced
		} else {
			g, ok := engine.NextGuess(history)
			if !ok {
				// Contradictory feedback cannot happen when the
				// answer is drawn from the pool itself.
				return hardTurnCap + 1
			}
			guess = g
		}

		p := core.Calculate(guess, answer)
		if p.IsPerfect() {
			return turn
		}
		history = append(history, solver.Turn{Guess: guess, Pattern: p})
	}
	return hardTurnCap + 1
}
