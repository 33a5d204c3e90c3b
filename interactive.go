// interactive.go
//
// The play subcommand: an interactive assistant for solving a Wordle
// whose answer the user knows and the solver does not. Each round the
// solver prints its suggestion; the user types the colour pattern the
// game showed (e.g. GY--Y, emoji squares also work). Commands:
//
//	<pattern>      feedback for the suggested guess
//	word pattern   feedback for a guess the user played instead
//	undo           drop the last turn
//	new            start over
//	quit           exit

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mfriedel/wordle-solver/internal/core"
	"github.com/mfriedel/wordle-solver/internal/solver"
	"github.com/mfriedel/wordle-solver/internal/words"
)

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	strategy := fs.String("strategy", "adaptive", "selection strategy")
	_ = fs.Parse(args)

	engine := solver.NewEngine(solver.StrategyFromName(*strategy), words.GuessPool(), words.AnswerPool())
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("type the pattern after each suggestion (G=green Y=yellow -=gray), or undo/new/quit")

	var history []solver.Turn
	for {
		remaining := engine.CountCandidates(history)
		guess, ok := engine.NextGuess(history)
		if !ok {
			fmt.Println("no candidates remain; check the patterns you entered (undo/new)")
		} else {
			m := solver.ComputeMetrics(guess, engine.Candidates(history))
			fmt.Printf("\nsuggestion: %s  (entropy=%.3f expected=%.2f worst=%d, %d candidates)\n",
				guess.Text(), m.Entropy, m.ExpectedRemaining, m.MaxPartition, remaining)
			if remaining <= 10 {
				printCandidates(engine.Candidates(history))
			}
		}

		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(strings.ToLower(in.Text()))

		switch line {
		case "":
			continue
		case "quit", "exit", "q":
			return
		case "new":
			history = nil
			fmt.Println("new game")
			continue
		case "undo":
			if len(history) > 0 {
				history = history[:len(history)-1]
				fmt.Println("undid last turn")
			} else {
				fmt.Println("nothing to undo")
			}
			continue
		}

		played := guess
		patternText := line
		if fields := strings.Fields(line); len(fields) == 2 {
			w, err := core.NewWord(fields[0])
			if err != nil {
				fmt.Printf("bad word: %v\n", err)
				continue
			}
			played, patternText = w, fields[1]
		} else if !ok {
			fmt.Println("enter `word pattern`, undo, or new")
			continue
		}

		p, err := core.ParsePattern(patternText)
		if err != nil {
			fmt.Printf("bad pattern: %v (want e.g. GY--Y)\n", err)
			continue
		}
		if p.IsPerfect() {
			fmt.Printf("solved in %d!\n", len(history)+1)
			history = nil
			fmt.Println("new game")
			continue
		}
		history = append(history, solver.Turn{Guess: played, Pattern: p})
	}
}

func printCandidates(cands []core.Word) {
	texts := make([]string, len(cands))
	for i, c := range cands {
		texts[i] = c.Text()
	}
	fmt.Printf("candidates: %s\n", strings.Join(texts, " "))
}
