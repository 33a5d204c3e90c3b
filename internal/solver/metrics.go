// internal/solver/metrics.go
//
// Scoring functions for evaluating a guess against a candidate set.
// Responsibilities:
//   - Shannon entropy (expected information gain in bits).
//   - Expected remaining-candidate count after the guess.
//   - Worst-case partition size (minimax metric).
//
// All three derive from the same operation: grouping candidates by the
// pattern each would produce against the guess. The pattern domain is
// only 243 values, so grouping uses a dense fixed-size counter array
// rather than a map. The functions are pure and stateless; they are
// shared by every selection strategy.

package solver

import (
	"math"

	"github.com/mfriedel/wordle-solver/internal/core"
)

// GuessMetrics bundles the per-guess evaluation computed in one
// grouping pass. Ephemeral: computed on demand, never retained.
type GuessMetrics struct {
	// Entropy is the expected information gain in bits.
	Entropy float64
	// ExpectedRemaining is the expected candidate count after the guess.
	ExpectedRemaining float64
	// MaxPartition is the candidate count in the adversary's worst case.
	MaxPartition int
}

// groupByPattern counts candidates per feedback pattern.
func groupByPattern(guess core.Word, candidates []core.Word) [core.PatternCount]int {
	var counts [core.PatternCount]int
	for _, c := range candidates {
		counts[core.Calculate(guess, c)]++
	}
	return counts
}

// Entropy returns the Shannon entropy H = -Σ p·log2(p) of the pattern
// distribution that guess induces over candidates.
//
// Returns 0.0 for an empty candidate set and whenever every candidate
// collapses to a single pattern. Bounded by log2(len(candidates)).
func Entropy(guess core.Word, candidates []core.Word) float64 {
	if len(candidates) == 0 {
		return 0.0
	}
	counts := groupByPattern(guess, candidates)
	total := float64(len(candidates))

	entropy := 0.0
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// MaxRemaining returns the largest pattern group size: the number of
// candidates surviving the guess in the worst case. 0 for an empty set.
func MaxRemaining(guess core.Word, candidates []core.Word) int {
	if len(candidates) == 0 {
		return 0
	}
	counts := groupByPattern(guess, candidates)
	maxSize := 0
	for _, n := range counts {
		if n > maxSize {
			maxSize = n
		}
	}
	return maxSize
}

// ComputeMetrics returns entropy, expected remaining candidates and the
// worst-case partition size from a single grouping pass.
func ComputeMetrics(guess core.Word, candidates []core.Word) GuessMetrics {
	if len(candidates) == 0 {
		return GuessMetrics{}
	}
	counts := groupByPattern(guess, candidates)
	total := float64(len(candidates))

	var m GuessMetrics
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		m.Entropy -= p * math.Log2(p)
		m.ExpectedRemaining += p * float64(n)
		if n > m.MaxPartition {
			m.MaxPartition = n
		}
	}
	return m
}
