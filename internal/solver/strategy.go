// internal/solver/strategy.go
//
// Guess selection strategies.
//
// A Strategy picks the next guess from the full guess pool, evaluated
// against the current candidate set. Strategies are total: they fail to
// return a guess only when the guess pool is empty. The strategy set is
// closed (adaptive, entropy, minimax, hybrid, random) and dispatched
// statically through the Strategy interface.
//
// Determinism: every scoring strategy evaluates the pool via evalPool
// and reduces with a sequential scan using strict comparisons, so the
// first guess encountered in pool order wins any tie.

package solver

import (
	"math/rand"

	"github.com/mfriedel/wordle-solver/internal/core"
)

// Strategy selects the next guess for a candidate set.
type Strategy interface {
	// SelectGuess returns the chosen guess and true, or false when the
	// guess pool is empty.
	SelectGuess(guessPool, candidates []core.Word) (core.Word, bool)
}

// StrategyFromName maps a configuration name to a strategy.
// Recognized: "entropy", "pure-entropy", "minimax", "hybrid", "random".
// Anything else falls back to the adaptive default.
func StrategyFromName(name string) Strategy {
	switch name {
	case "entropy", "pure-entropy":
		return EntropyStrategy{}
	case "minimax":
		return MinimaxStrategy{}
	case "hybrid":
		return HybridStrategy{}
	case "random":
		return &RandomStrategy{}
	default:
		return NewAdaptiveStrategy()
	}
}

// EntropyStrategy maximizes Shannon entropy.
type EntropyStrategy struct{}

func (EntropyStrategy) SelectGuess(guessPool, candidates []core.Word) (core.Word, bool) {
	if len(guessPool) == 0 {
		return core.Word{}, false
	}
	entropies := evalPool(guessPool, func(g core.Word) float64 {
		return Entropy(g, candidates)
	})
	best := 0
	for i := 1; i < len(entropies); i++ {
		if entropies[i] > entropies[best] {
			best = i
		}
	}
	return guessPool[best], true
}

// MinimaxStrategy minimizes the worst-case surviving candidate count.
type MinimaxStrategy struct{}

func (MinimaxStrategy) SelectGuess(guessPool, candidates []core.Word) (core.Word, bool) {
	if len(guessPool) == 0 {
		return core.Word{}, false
	}
	worsts := evalPool(guessPool, func(g core.Word) int {
		return MaxRemaining(g, candidates)
	})
	best := 0
	for i := 1; i < len(worsts); i++ {
		if worsts[i] < worsts[best] {
			best = i
		}
	}
	return guessPool[best], true
}

// HybridStrategy scores each guess as entropy×100 − worstCase×10: a 10:1
// weighting of average-case information over the worst-case guarantee.
// Ties on the score break toward smaller expected-remaining.
type HybridStrategy struct{}

func (HybridStrategy) SelectGuess(guessPool, candidates []core.Word) (core.Word, bool) {
	if len(guessPool) == 0 {
		return core.Word{}, false
	}
	return selectWithHybridScoring(guessPool, candidates), true
}

// RandomStrategy is the endgame fallback: choose uniformly among
// candidates that are also legal guesses. When no candidate is in the
// pool, it falls back deterministically to the first candidate found in
// the pool order.
type RandomStrategy struct {
	// Rand is the randomness source; nil uses the shared global source.
	Rand *rand.Rand
}

func (s *RandomStrategy) SelectGuess(guessPool, candidates []core.Word) (core.Word, bool) {
	if len(guessPool) == 0 {
		return core.Word{}, false
	}

	inPool := make(map[string]struct{}, len(guessPool))
	for _, g := range guessPool {
		inPool[g.Text()] = struct{}{}
	}

	var playable []core.Word
	for _, c := range candidates {
		if _, ok := inPool[c.Text()]; ok {
			playable = append(playable, c)
		}
	}

	if len(playable) > 0 {
		if s.Rand != nil {
			return playable[s.Rand.Intn(len(playable))], true
		}
		return playable[rand.Intn(len(playable))], true
	}

	// No candidate is guessable; fall back to the first pool word.
	return guessPool[0], true
}
