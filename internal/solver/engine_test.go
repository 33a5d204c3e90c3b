package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mfriedel/wordle-solver/internal/core"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	guessPool := wordList(t, "crane", "slate", "irate", "crate", "grate")
	answerPool := wordList(t, "irate", "crate", "grate")
	return NewEngine(EntropyStrategy{}, guessPool, answerPool)
}

func TestFirstGuessUsesOpeningWordWhenAvailable(t *testing.T) {
	guessPool := wordList(t, "crane", "salet", "slate")
	answerPool := wordList(t, "crane", "slate")
	e := NewEngine(EntropyStrategy{}, guessPool, answerPool)

	got, ok := e.FirstGuess()
	if !ok {
		t.Fatal("no first guess")
	}
	if got.Text() != "salet" {
		t.Errorf("FirstGuess() = %q, want salet", got.Text())
	}
}

func TestFirstGuessFallsBackToStrategy(t *testing.T) {
	e := testEngine(t)
	got, ok := e.FirstGuess()
	if !ok {
		t.Fatal("no first guess")
	}
	found := false
	for _, w := range e.GuessPool() {
		if w.Equal(got) {
			found = true
		}
	}
	if !found {
		t.Errorf("FirstGuess() = %q, not in guess pool", got.Text())
	}
}

func TestNextGuessEmptyHistoryDelegatesToFirstGuess(t *testing.T) {
	e := testEngine(t)
	first, _ := e.FirstGuess()
	next, ok := e.NextGuess(nil)
	if !ok {
		t.Fatal("no guess")
	}
	if next.Text() != first.Text() {
		t.Errorf("NextGuess(nil) = %q, FirstGuess() = %q", next.Text(), first.Text())
	}
}

func TestNextGuessFiltersCandidates(t *testing.T) {
	e := testEngine(t)
	guess := core.MustWord("crane")
	answer := core.MustWord("irate")
	observed := core.Calculate(guess, answer)

	history := []Turn{{Guess: guess, Pattern: observed}}
	candidates := e.Candidates(history)

	// The true answer must survive, and survival of every other word is
	// exactly determined by whether it reproduces the observed pattern.
	var want []string
	for _, c := range e.AnswerPool() {
		if core.Calculate(guess, c) == observed {
			want = append(want, c.Text())
		}
	}
	var got []string
	for _, c := range candidates {
		got = append(got, c.Text())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}

	foundAnswer := false
	for _, c := range candidates {
		if c.Text() == "irate" {
			foundAnswer = true
		}
	}
	if !foundAnswer {
		t.Error("true answer irate was filtered out")
	}
}

func TestNextGuessReturnsNoneOnContradiction(t *testing.T) {
	e := testEngine(t)

	// Claiming all greens for zzzzz is impossible for every candidate.
	history := []Turn{{Guess: core.MustWord("zzzzz"), Pattern: core.PerfectPattern}}
	if _, ok := e.NextGuess(history); ok {
		t.Error("NextGuess returned a guess for a contradictory history")
	}
	if n := e.CountCandidates(history); n != 0 {
		t.Errorf("CountCandidates = %d, want 0", n)
	}
}

func TestNextGuessReturnsLoneCandidateDirectly(t *testing.T) {
	e := testEngine(t)
	history := []Turn{{Guess: core.MustWord("irate"), Pattern: core.PerfectPattern}}

	got, ok := e.NextGuess(history)
	if !ok {
		t.Fatal("no guess")
	}
	if got.Text() != "irate" {
		t.Errorf("NextGuess = %q, want irate", got.Text())
	}
}

func TestCandidateFilteringIsMonotonic(t *testing.T) {
	e := testEngine(t)
	answer := core.MustWord("grate")

	var history []Turn
	prev := e.CountCandidates(history)
	for _, g := range []string{"crane", "irate"} {
		guess := core.MustWord(g)
		history = append(history, Turn{Guess: guess, Pattern: core.Calculate(guess, answer)})
		n := e.CountCandidates(history)
		if n > prev {
			t.Errorf("candidate count grew from %d to %d after guessing %q", prev, n, g)
		}
		prev = n
	}

	// grate stays consistent with its own feedback throughout.
	final := e.Candidates(history)
	found := false
	for _, c := range final {
		if c.Text() == "grate" {
			found = true
		}
	}
	if !found {
		t.Error("true answer grate was filtered out")
	}
}

func TestCandidateFilteringIsIdempotent(t *testing.T) {
	e := testEngine(t)
	guess := core.MustWord("crane")
	pattern := core.Calculate(guess, core.MustWord("irate"))

	once := []Turn{{Guess: guess, Pattern: pattern}}
	twice := []Turn{{Guess: guess, Pattern: pattern}, {Guess: guess, Pattern: pattern}}
	if e.CountCandidates(once) != e.CountCandidates(twice) {
		t.Errorf("repeating a history entry changed the candidate count: %d vs %d",
			e.CountCandidates(once), e.CountCandidates(twice))
	}
}
