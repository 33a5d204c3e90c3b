// internal/words/words.go
//
// Word pool management for the solver.
//
// Responsibilities:
//   - Load the answer pool and the allowed-guess pool from
//     environment-provided files or fall back to embedded defaults.
//   - Hand the engine validated core.Word values only; invalid lines
//     are silently skipped, never fatal.
//   - Keep lookup sets for quick membership checks and Stats.
//
// Word pools:
//   - "answers": canonical solutions.
//   - "allowed": valid guesses (always a superset of answers).
//
// Initialization behavior (Init):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set, use it for both pools.
//   3. Otherwise fall back to the embedded defaults.
//
// Initialization runs once (sync.Once); the pools are immutable
// afterwards and shared by reference.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/mfriedel/wordle-solver/internal/core"
)

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_allowed.txt
var embeddedAllowed string

var (
	initOnce   sync.Once
	answerPool []core.Word
	guessPool  []core.Word
	answersSet map[string]struct{}
	allowedSet map[string]struct{}
	initialErr error
)

// Init loads the word pools exactly once.
// Returns an error if the answer pool ends up empty.
func Init() error {
	initOnce.Do(func() {
		var answers, allowed []core.Word

		answersPath := os.Getenv("WORDS_ANSWERS_FILE")
		allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

		switch {
		case answersPath != "" && allowedPath != "":
			var err error
			answers, err = LoadFile(answersPath)
			if err != nil {
				initialErr = err
				return
			}
			allowed, err = LoadFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}

		case answersPath == "" && allowedPath != "":
			var err error
			allowed, err = LoadFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}
			answers = allowed

		default:
			answers = FromLines(embeddedAnswers)
			allowed = FromLines(embeddedAllowed)
			if len(allowed) == 0 {
				allowed = answers
			}
		}

		answerPool = answers
		answersSet = toSet(answers)

		// Guess pool is always answers ∪ allowed, answers first.
		guessPool = append([]core.Word{}, answers...)
		allowedSet = toSet(answers)
		for _, w := range allowed {
			if _, ok := allowedSet[w.Text()]; !ok {
				allowedSet[w.Text()] = struct{}{}
				guessPool = append(guessPool, w)
			}
		}

		if len(answerPool) == 0 {
			initialErr = errors.New("words: answer pool is empty")
		}
	})
	return initialErr
}

// LoadFile reads one word per line, skipping blank and invalid lines.
func LoadFile(path string) ([]core.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []core.Word
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, err := core.NewWord(strings.TrimSpace(sc.Text())); err == nil {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// FromLines converts a multiline string into validated words,
// skipping invalid lines.
func FromLines(s string) []core.Word {
	var out []core.Word
	for _, line := range strings.Split(s, "\n") {
		if w, err := core.NewWord(strings.TrimSpace(line)); err == nil {
			out = append(out, w)
		}
	}
	return out
}

func toSet(list []core.Word) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w.Text()] = struct{}{}
	}
	return m
}

// GuessPool returns the full legal-guess pool (answers ∪ allowed).
func GuessPool() []core.Word { return guessPool }

// AnswerPool returns the legal-target pool.
func AnswerPool() []core.Word { return answerPool }

// IsAllowed reports whether w is a legal guess.
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is a legal target.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns pool sizes: (answers, allowed guesses).
func Stats() (answersCount, allowedCount int) {
	return len(answerPool), len(guessPool)
}
