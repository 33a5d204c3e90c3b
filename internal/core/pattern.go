// internal/core/pattern.go
//
// Pattern: Wordle feedback for one guess, encoded as a single base-3
// integer in 0..242. Digit values: 0 = gray, 1 = yellow, 2 = green.
// The least significant digit is the leftmost letter.
//
// Calculate implements the exact Wordle rules for duplicate letters via
// the classic two-pass algorithm:
//   Pass 1: mark exact matches green and consume that letter from the
//           answer's availability counters.
//   Pass 2: for each non-green position, mark yellow if the letter still
//           has availability, otherwise gray.
// The pass order is load-bearing: yellows must never be credited with
// letters already consumed by greens.

package core

import (
	"errors"
	"strings"
)

// Pattern is a feedback encoding in 0..242 (3^5 patterns).
type Pattern uint8

// PatternCount is the size of the pattern domain. The small finite
// domain allows dense array-based grouping instead of maps.
const PatternCount = 243

// PerfectPattern is all greens: 2 + 2×3 + 2×9 + 2×27 + 2×81.
const PerfectPattern Pattern = 242

// ErrInvalidPattern reports a malformed feedback string.
var ErrInvalidPattern = errors.New("invalid feedback pattern")

// Calculate returns the pattern produced when guess is played against
// answer. It is a total function over valid Words and never fails.
func Calculate(guess, answer Word) Pattern {
	var digits [WordLen]uint8
	available := answer.LetterCounts()

	// Pass 1: greens.
	for i := 0; i < WordLen; i++ {
		if guess.chars[i] == answer.chars[i] {
			digits[i] = 2
			if idx := guess.chars[i] - 'a'; available[idx] > 0 {
				available[idx]--
			}
		}
	}

	// Pass 2: yellows from the remaining pool.
	for i := 0; i < WordLen; i++ {
		if digits[i] != 0 {
			continue
		}
		idx := guess.chars[i] - 'a'
		if available[idx] > 0 {
			digits[i] = 1
			available[idx]--
		}
	}

	var pattern, multiplier uint8 = 0, 1
	for _, d := range digits {
		pattern += d * multiplier
		multiplier *= 3
	}
	return Pattern(pattern)
}

// IsPerfect reports whether the pattern is all greens.
func (p Pattern) IsPerfect() bool { return p == PerfectPattern }

// CountGreens returns the number of green positions.
func (p Pattern) CountGreens() int {
	count := 0
	v := uint8(p)
	for i := 0; i < WordLen; i++ {
		if v%3 == 2 {
			count++
		}
		v /= 3
	}
	return count
}

// CountYellows returns the number of yellow positions.
func (p Pattern) CountYellows() int {
	count := 0
	v := uint8(p)
	for i := 0; i < WordLen; i++ {
		if v%3 == 1 {
			count++
		}
		v /= 3
	}
	return count
}

// ParsePattern parses a feedback string of exactly five symbols.
// Accepted per position: G/g/🟩 green, Y/y/🟨 yellow, -/_/⬜ gray.
func ParsePattern(s string) (Pattern, error) {
	runes := []rune(s)
	if len(runes) != WordLen {
		return 0, ErrInvalidPattern
	}
	var pattern, multiplier uint8 = 0, 1
	for _, r := range runes {
		var digit uint8
		switch r {
		case 'G', 'g', '🟩':
			digit = 2
		case 'Y', 'y', '🟨':
			digit = 1
		case '-', '_', '⬜':
			digit = 0
		default:
			return 0, ErrInvalidPattern
		}
		pattern += digit * multiplier
		multiplier *= 3
	}
	return Pattern(pattern), nil
}

// Emoji renders the pattern as colored squares, leftmost letter first.
func (p Pattern) Emoji() string {
	var b strings.Builder
	v := uint8(p)
	for i := 0; i < WordLen; i++ {
		switch v % 3 {
		case 2:
			b.WriteRune('🟩')
		case 1:
			b.WriteRune('🟨')
		default:
			b.WriteRune('⬜')
		}
		v /= 3
	}
	return b.String()
}
