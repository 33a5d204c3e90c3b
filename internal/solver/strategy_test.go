package solver

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mfriedel/wordle-solver/internal/core"
)

func TestStrategyFromName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"entropy", "solver.EntropyStrategy"},
		{"pure-entropy", "solver.EntropyStrategy"},
		{"minimax", "solver.MinimaxStrategy"},
		{"hybrid", "solver.HybridStrategy"},
		{"random", "*solver.RandomStrategy"},
		{"adaptive", "*solver.AdaptiveStrategy"},
		{"nonsense", "*solver.AdaptiveStrategy"},
		{"", "*solver.AdaptiveStrategy"},
	}
	for _, tc := range cases {
		got := fmt.Sprintf("%T", StrategyFromName(tc.name))
		if got != tc.want {
			t.Errorf("StrategyFromName(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestStrategiesReturnFalseOnEmptyPool(t *testing.T) {
	candidates := wordList(t, "slate")
	strategies := []Strategy{
		EntropyStrategy{},
		MinimaxStrategy{},
		HybridStrategy{},
		&RandomStrategy{},
		NewAdaptiveStrategy(),
	}
	for _, s := range strategies {
		if _, ok := s.SelectGuess(nil, candidates); ok {
			t.Errorf("%T.SelectGuess(empty pool) returned a guess", s)
		}
	}
}

func TestEntropyStrategyPrefersInformativeGuess(t *testing.T) {
	// aaaaa collapses every candidate into one or two patterns; aeros
	// touches more letters and spreads the distribution wider.
	pool := wordList(t, "aaaaa", "aeros")
	candidates := wordList(t, "slate", "irate", "crate", "grate")

	got, ok := EntropyStrategy{}.SelectGuess(pool, candidates)
	if !ok {
		t.Fatal("no guess returned")
	}
	if got.Text() != "aeros" {
		t.Errorf("selected %q, want aeros", got.Text())
	}
}

func TestEntropyStrategyTieBreaksByPoolOrder(t *testing.T) {
	// Both guesses hit a single all-gray pattern: entropy 0 for each.
	pool := wordList(t, "aaaaa", "bbbbb")
	candidates := wordList(t, "ccccc")

	got, ok := EntropyStrategy{}.SelectGuess(pool, candidates)
	if !ok {
		t.Fatal("no guess returned")
	}
	if got.Text() != "aaaaa" {
		t.Errorf("selected %q, want first-encountered aaaaa", got.Text())
	}
}

func TestMinimaxStrategyPrefersBetterSplit(t *testing.T) {
	pool := wordList(t, "zzzzz", "crane")
	candidates := wordList(t, "slate", "irate", "crate", "grate")

	got, ok := MinimaxStrategy{}.SelectGuess(pool, candidates)
	if !ok {
		t.Fatal("no guess returned")
	}
	if got.Text() != "crane" {
		t.Errorf("selected %q, want crane", got.Text())
	}
}

func TestHybridStrategyAvoidsUninformativeGuess(t *testing.T) {
	pool := wordList(t, "zzzzz", "crane", "slate")
	candidates := wordList(t, "irate", "crate", "grate")

	got, ok := HybridStrategy{}.SelectGuess(pool, candidates)
	if !ok {
		t.Fatal("no guess returned")
	}
	if got.Text() == "zzzzz" {
		t.Error("hybrid scoring selected the zero-entropy guess")
	}
}

func TestRandomStrategyChoosesPlayableCandidate(t *testing.T) {
	pool := wordList(t, "crane", "slate", "irate")
	candidates := wordList(t, "irate", "slate")

	s := &RandomStrategy{Rand: rand.New(rand.NewSource(1))}
	for i := 0; i < 20; i++ {
		got, ok := s.SelectGuess(pool, candidates)
		if !ok {
			t.Fatal("no guess returned")
		}
		if got.Text() != "irate" && got.Text() != "slate" {
			t.Fatalf("selected %q, want a candidate", got.Text())
		}
	}
}

func TestRandomStrategyFallbackIsDeterministic(t *testing.T) {
	// No candidate is present in the pool: deterministic fallback.
	pool := wordList(t, "crane", "slate")
	candidates := wordList(t, "zzzzz")

	s := &RandomStrategy{Rand: rand.New(rand.NewSource(1))}
	for i := 0; i < 5; i++ {
		got, ok := s.SelectGuess(pool, candidates)
		if !ok {
			t.Fatal("no guess returned")
		}
		if got.Text() != "crane" {
			t.Errorf("fallback selected %q, want crane", got.Text())
		}
	}
}

// syntheticPool builds a pool large enough to cross the parallel
// threshold; every 5-letter combination is a valid Word.
func syntheticPool(t *testing.T, n int) []core.Word {
	t.Helper()
	out := make([]core.Word, 0, n)
	for i := 0; i < n; i++ {
		var b [5]byte
		v := i
		for j := range b {
			b[j] = byte('a' + v%26)
			v /= 26
		}
		w, err := core.NewWord(string(b[:]))
		if err != nil {
			t.Fatalf("synthetic word: %v", err)
		}
		out = append(out, w)
	}
	return out
}

func TestParallelEvaluationMatchesSequential(t *testing.T) {
	pool := syntheticPool(t, parallelThreshold*2)
	candidates := wordList(t, "irate", "crate", "grate", "slate", "plate")

	parallel := EvalMetrics(pool, candidates)
	for i, g := range pool {
		want := ComputeMetrics(g, candidates)
		if parallel[i] != want {
			t.Fatalf("metrics[%d] = %+v, want %+v", i, parallel[i], want)
		}
	}
}

func TestParallelSelectionDeterministic(t *testing.T) {
	pool := syntheticPool(t, parallelThreshold*2)
	candidates := wordList(t, "irate", "crate", "grate", "slate", "plate")

	first, ok := EntropyStrategy{}.SelectGuess(pool, candidates)
	if !ok {
		t.Fatal("no guess returned")
	}
	for i := 0; i < 5; i++ {
		again, _ := EntropyStrategy{}.SelectGuess(pool, candidates)
		if again.Text() != first.Text() {
			t.Fatalf("run %d selected %q, first run selected %q", i, again.Text(), first.Text())
		}
	}
}
