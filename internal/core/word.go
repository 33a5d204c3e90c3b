// internal/core/word.go
//
// Word: an immutable, validated 5-letter lowercase token.
// Responsibilities:
//   - Normalize and validate raw input (length, ASCII, a–z only).
//   - O(1) letter-at-position and letter-membership queries.
//   - Letter position lists and per-letter occurrence counts, used by
//     the pattern calculation for duplicate-letter handling.
//
// Notes:
//   - Words are value types: construct once, share freely. Compare with
//     Equal (normalized text); the struct itself is not comparable, so
//     key maps and sets by Text() instead.
//   - Loaders are expected to skip invalid lines rather than abort;
//     the typed errors here carry the reason for callers that prompt.

package core

import (
	"errors"
	"fmt"
)

// WordLen is the fixed token length for the whole engine.
const WordLen = 5

var (
	// ErrNonASCII reports a byte outside the ASCII range.
	ErrNonASCII = errors.New("word must contain only ASCII letters")

	// ErrInvalidCharacters reports an ASCII character that is not a lowercase letter.
	ErrInvalidCharacters = errors.New("word contains invalid characters")
)

// InvalidLengthError reports a word whose length is not exactly 5,
// carrying the offending length.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("word must be exactly %d letters, got %d", WordLen, e.Length)
}

// Word is a validated 5-letter lowercase word.
// The zero value is not valid; use NewWord.
type Word struct {
	text      string
	chars     [WordLen]byte
	positions map[byte][]int
	counts    [26]uint8
}

// NewWord validates and normalizes text into a Word.
//
// Validation order, all on the raw input: length (in bytes), ASCII
// range, lowercase letters. Uppercase ASCII is accepted and lowered
// byte-wise; lowering never precedes validation, so the reported
// length is always the input's actual length.
func NewWord(text string) (Word, error) {
	if len(text) != WordLen {
		return Word{}, &InvalidLengthError{Length: len(text)}
	}
	var chars [WordLen]byte
	for i := 0; i < WordLen; i++ {
		c := text[i]
		if c > 0x7f {
			return Word{}, ErrNonASCII
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		chars[i] = c
	}
	for _, c := range chars {
		if c < 'a' || c > 'z' {
			return Word{}, ErrInvalidCharacters
		}
	}

	w := Word{text: string(chars[:]), chars: chars, positions: make(map[byte][]int, WordLen)}
	for i, ch := range w.chars {
		w.positions[ch] = append(w.positions[ch], i)
		w.counts[ch-'a']++
	}
	return w, nil
}

// MustWord is NewWord for compile-time-known words; panics on invalid input.
func MustWord(text string) Word {
	w, err := NewWord(text)
	if err != nil {
		panic(fmt.Sprintf("core: invalid word %q: %v", text, err))
	}
	return w
}

// Text returns the normalized lowercase word.
func (w Word) Text() string { return w.text }

// Chars returns the word as a byte array.
func (w Word) Chars() [WordLen]byte { return w.chars }

// CharAt returns the letter at position 0–4.
// Calling it with position >= 5 is a programming error and panics.
func (w Word) CharAt(position int) byte { return w.chars[position] }

// HasLetter reports whether the word contains letter.
func (w Word) HasLetter(letter byte) bool {
	_, ok := w.positions[letter]
	return ok
}

// PositionsOf returns the ordered zero-based positions where letter
// occurs, or nil if absent.
func (w Word) PositionsOf(letter byte) []int { return w.positions[letter] }

// LetterCounts returns the per-letter occurrence counts, indexed by
// letter-'a'. Used by Pattern calculation; the returned array is a copy
// and may be consumed freely.
func (w Word) LetterCounts() [26]uint8 { return w.counts }

// Equal reports whether two words are the same normalized text.
func (w Word) Equal(other Word) bool { return w.text == other.text }

func (w Word) String() string { return w.text }
