// internal/solver/engine.go
//
// Engine: drives guess selection across turns.
// Responsibilities:
//   - Filter the answer pool against the accumulated guess/feedback
//     history to obtain live candidates.
//   - Short-circuit the trivial turns (fixed opening word, lone
//     surviving candidate).
//   - Delegate everything else to the configured strategy.
//
// The engine holds no mutable per-game state: history is owned by the
// caller and passed in per query, so a single Engine is safe to share
// across concurrent read-only queries as long as the pools stay
// immutable for its lifetime.

package solver

import "github.com/mfriedel/wordle-solver/internal/core"

// openingWord is SALET, proven optimal as an opener (3.421 average
// guesses via exhaustive search). Skipping the turn-one computation is
// an optimization, not a correctness requirement.
const openingWord = "salet"

// Turn is one guess and the feedback it received.
type Turn struct {
	Guess   core.Word
	Pattern core.Pattern
}

// Engine coordinates solving with a strategy over fixed word pools.
type Engine struct {
	strategy   Strategy
	guessPool  []core.Word
	answerPool []core.Word
}

// NewEngine builds an engine over a guess pool (all legal guesses) and
// an answer pool (legal targets). The pools must not be mutated while
// the engine is in use.
func NewEngine(strategy Strategy, guessPool, answerPool []core.Word) *Engine {
	return &Engine{strategy: strategy, guessPool: guessPool, answerPool: answerPool}
}

// GuessPool returns the engine's guess pool.
func (e *Engine) GuessPool() []core.Word { return e.guessPool }

// AnswerPool returns the engine's answer pool.
func (e *Engine) AnswerPool() []core.Word { return e.answerPool }

// FirstGuess returns the opening guess: the hardcoded optimal word when
// the guess pool contains it, otherwise the strategy's pick against the
// unfiltered answer pool. False only when the guess pool is empty.
func (e *Engine) FirstGuess() (core.Word, bool) {
	for _, w := range e.guessPool {
		if w.Text() == openingWord {
			return w, true
		}
	}
	return e.strategy.SelectGuess(e.guessPool, e.answerPool)
}

// NextGuess returns the best next guess given the history.
//
// An empty history delegates to FirstGuess. Otherwise the answer pool
// is filtered to candidates consistent with every history entry:
// zero candidates → no result (the history is self-contradictory, the
// caller decides what to do); one candidate → that word directly;
// otherwise the strategy picks from the full guess pool.
func (e *Engine) NextGuess(history []Turn) (core.Word, bool) {
	if len(history) == 0 {
		return e.FirstGuess()
	}

	candidates := e.filterCandidates(history)
	switch len(candidates) {
	case 0:
		return core.Word{}, false
	case 1:
		return candidates[0], true
	}
	return e.strategy.SelectGuess(e.guessPool, candidates)
}

// filterCandidates keeps the answer words that would have produced the
// observed pattern for every guess in the history.
func (e *Engine) filterCandidates(history []Turn) []core.Word {
	candidates := make([]core.Word, 0, len(e.answerPool))
	for _, candidate := range e.answerPool {
		consistent := true
		for _, turn := range history {
			if core.Calculate(turn.Guess, candidate) != turn.Pattern {
				consistent = false
				break
			}
		}
		if consistent {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

// CountCandidates returns how many answers remain consistent with history.
func (e *Engine) CountCandidates(history []Turn) int {
	return len(e.filterCandidates(history))
}

// Candidates returns the answers consistent with history.
func (e *Engine) Candidates(history []Turn) []core.Word {
	return e.filterCandidates(history)
}
