// internal/solver/selection.go
//
// Composite selection functions used by the adaptive dispatcher.
// Each evaluates the full guess pool once (parallel fork-join) and
// reduces sequentially in pool order.

package solver

import "github.com/mfriedel/wordle-solver/internal/core"

// selectWithExpectedTiebreaker picks by the lexicographic key
// (entropy max, expected-remaining min, worst-case min).
// Callers guarantee a non-empty guess pool.
func selectWithExpectedTiebreaker(guessPool, candidates []core.Word) core.Word {
	metrics := EvalMetrics(guessPool, candidates)
	best := 0
	for i := 1; i < len(metrics); i++ {
		if betterByExpectedTiebreak(metrics[i], metrics[best]) {
			best = i
		}
	}
	return guessPool[best]
}

func betterByExpectedTiebreak(a, b GuessMetrics) bool {
	if a.Entropy != b.Entropy {
		return a.Entropy > b.Entropy
	}
	if a.ExpectedRemaining != b.ExpectedRemaining {
		return a.ExpectedRemaining < b.ExpectedRemaining
	}
	return a.MaxPartition < b.MaxPartition
}

// selectWithHybridScoring picks the maximum of
// entropy×100 − maxPartition×10, breaking score ties toward smaller
// expected-remaining. Callers guarantee a non-empty guess pool.
func selectWithHybridScoring(guessPool, candidates []core.Word) core.Word {
	metrics := EvalMetrics(guessPool, candidates)
	score := func(m GuessMetrics) float64 {
		return m.Entropy*100 - float64(m.MaxPartition*10)
	}
	best := 0
	for i := 1; i < len(metrics); i++ {
		si, sb := score(metrics[i]), score(metrics[best])
		if si > sb || (si == sb && metrics[i].ExpectedRemaining < metrics[best].ExpectedRemaining) {
			best = i
		}
	}
	return guessPool[best]
}

// selectMinimaxFirst finds the minimum worst-case value across the pool,
// then breaks ties among those guesses: if any tied guess is itself a
// live candidate with entropy within epsilon bits of the tied set's
// maximum, the highest-entropy such candidate wins. Guessing a candidate
// near the endgame carries a chance of an immediate win at no
// informational cost, so ties favor candidates unless a non-candidate is
// meaningfully more informative. Callers guarantee a non-empty pool.
func selectMinimaxFirst(guessPool, candidates []core.Word, epsilon float64) core.Word {
	metrics := EvalMetrics(guessPool, candidates)

	isCandidate := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		isCandidate[c.Text()] = struct{}{}
	}

	minWorst := metrics[0].MaxPartition
	for _, m := range metrics[1:] {
		if m.MaxPartition < minWorst {
			minWorst = m.MaxPartition
		}
	}

	// Max entropy within the tied set.
	maxEntropy := 0.0
	for _, m := range metrics {
		if m.MaxPartition == minWorst && m.Entropy > maxEntropy {
			maxEntropy = m.Entropy
		}
	}

	// Best candidate within epsilon of the tied set's max entropy.
	bestCand := -1
	for i, m := range metrics {
		if m.MaxPartition != minWorst {
			continue
		}
		if _, ok := isCandidate[guessPool[i].Text()]; !ok {
			continue
		}
		if maxEntropy-m.Entropy >= epsilon {
			continue
		}
		if bestCand < 0 || m.Entropy > metrics[bestCand].Entropy {
			bestCand = i
		}
	}
	if bestCand >= 0 {
		return guessPool[bestCand]
	}

	// Otherwise the highest-entropy guess among the tied set.
	best := -1
	for i, m := range metrics {
		if m.MaxPartition != minWorst {
			continue
		}
		if best < 0 || m.Entropy > metrics[best].Entropy {
			best = i
		}
	}
	return guessPool[best]
}
