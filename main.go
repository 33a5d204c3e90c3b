// main.go
//
// Entry point for the solver. Dispatches subcommands:
//
//	serve    start the HTTP API (default)
//	play     interactive assistant against an unknown answer
//	solve    play out a game against a known (or the daily) answer
//	analyze  score guesses against the full answer pool
//	bench    benchmark a strategy over the answer pool
//
// Environment is loaded from .env when present; LOG_LEVEL controls
// zerolog verbosity.

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mfriedel/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	cmd := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "serve":
		cmdServe(args)
	case "play":
		cmdPlay(args)
	case "solve":
		cmdSolve(args)
	case "analyze":
		cmdAnalyze(args)
	case "bench":
		cmdBench(args)
	case "help", "-h", "--help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w *os.File) {
	fmt.Fprint(w, `usage: wordle-solver <command> [flags]

commands:
  serve    start the HTTP API (default)
             -port PORT   listen port            (env PORT, default 5175)
             -db PATH     SQLite path, "" = none (env DB_PATH, default ./data/solver.db)
  play     interactive assistant; feed back patterns like GY--Y
             -strategy NAME
  solve [word]  play out a game; omitting the word solves today's daily
             -strategy NAME  -first WORD
  analyze [words...]  score guesses against the full answer pool
             -top N   also list the N best openers by entropy
  bench    benchmark a strategy over the answer pool
             -strategy NAME  -n N  -first WORD  -db PATH

strategies: adaptive (default), entropy, minimax, hybrid, random
`)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
