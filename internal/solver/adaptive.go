// internal/solver/adaptive.go
//
// Adaptive strategy: picks a selection regime by candidate-set size.
//
// Pure entropy maximization is near-optimal while the search space is
// large, worst-case guarantees matter more as the candidate set shrinks,
// and at 1-2 remaining candidates any of them is as good as a computed
// pick. Thresholds cascade with strict > comparisons:
//
//	size > pureEntropyThreshold    → TierPureEntropy
//	size > entropyMinimaxThreshold → TierEntropyMinimax
//	size > hybridThreshold         → TierHybrid
//	size > minimaxFirstThreshold   → TierMinimaxFirst
//	otherwise                      → TierRandom
//
// Defaults (100, 21, 9, 2) give: 101+ pure entropy, 22-100 expected
// tiebreaker, 10-21 hybrid scoring, 3-9 minimax-first with epsilon 0.1,
// 1-2 random endgame.

package solver

import "github.com/mfriedel/wordle-solver/internal/core"

// Tier is one of the five adaptive regimes.
type Tier int

const (
	TierPureEntropy Tier = iota
	TierEntropyMinimax
	TierHybrid
	TierMinimaxFirst
	TierRandom
)

func (t Tier) String() string {
	switch t {
	case TierPureEntropy:
		return "pure-entropy"
	case TierEntropyMinimax:
		return "entropy-minimax"
	case TierHybrid:
		return "hybrid"
	case TierMinimaxFirst:
		return "minimax-first"
	default:
		return "random"
	}
}

// Default adaptive thresholds and the minimax-first entropy epsilon.
const (
	DefaultPureEntropyThreshold    = 100
	DefaultEntropyMinimaxThreshold = 21
	DefaultHybridThreshold         = 9
	DefaultMinimaxFirstThreshold   = 2
	DefaultEpsilon                 = 0.1
)

// AdaptiveStrategy dispatches across the five tiers.
type AdaptiveStrategy struct {
	PureEntropyThreshold    int
	EntropyMinimaxThreshold int
	HybridThreshold         int
	MinimaxFirstThreshold   int

	// Epsilon is the candidate-preference width (in bits) for the
	// minimax-first tier.
	Epsilon float64

	random RandomStrategy
}

// NewAdaptiveStrategy returns an adaptive strategy with default thresholds.
func NewAdaptiveStrategy() *AdaptiveStrategy {
	return &AdaptiveStrategy{
		PureEntropyThreshold:    DefaultPureEntropyThreshold,
		EntropyMinimaxThreshold: DefaultEntropyMinimaxThreshold,
		HybridThreshold:         DefaultHybridThreshold,
		MinimaxFirstThreshold:   DefaultMinimaxFirstThreshold,
		Epsilon:                 DefaultEpsilon,
	}
}

// TierFor maps a candidate-set size to its tier.
func (s *AdaptiveStrategy) TierFor(numCandidates int) Tier {
	switch {
	case numCandidates > s.PureEntropyThreshold:
		return TierPureEntropy
	case numCandidates > s.EntropyMinimaxThreshold:
		return TierEntropyMinimax
	case numCandidates > s.HybridThreshold:
		return TierHybrid
	case numCandidates > s.MinimaxFirstThreshold:
		return TierMinimaxFirst
	default:
		return TierRandom
	}
}

func (s *AdaptiveStrategy) SelectGuess(guessPool, candidates []core.Word) (core.Word, bool) {
	if len(guessPool) == 0 {
		return core.Word{}, false
	}
	switch s.TierFor(len(candidates)) {
	case TierPureEntropy:
		return EntropyStrategy{}.SelectGuess(guessPool, candidates)
	case TierEntropyMinimax:
		return selectWithExpectedTiebreaker(guessPool, candidates), true
	case TierHybrid:
		return selectWithHybridScoring(guessPool, candidates), true
	case TierMinimaxFirst:
		return selectMinimaxFirst(guessPool, candidates, s.Epsilon), true
	default:
		return s.random.SelectGuess(guessPool, candidates)
	}
}
