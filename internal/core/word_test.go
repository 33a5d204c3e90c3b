package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewWordValid(t *testing.T) {
	w, err := NewWord("crane")
	if err != nil {
		t.Fatalf("NewWord: %v", err)
	}
	if w.Text() != "crane" {
		t.Errorf("Text() = %q, want %q", w.Text(), "crane")
	}
	if got := w.Chars(); string(got[:]) != "crane" {
		t.Errorf("Chars() = %q, want %q", got, "crane")
	}
}

func TestNewWordNormalizesCase(t *testing.T) {
	for _, in := range []string{"CRANE", "CrAnE", "crane"} {
		w, err := NewWord(in)
		if err != nil {
			t.Fatalf("NewWord(%q): %v", in, err)
		}
		if w.Text() != "crane" {
			t.Errorf("NewWord(%q).Text() = %q, want %q", in, w.Text(), "crane")
		}
	}
}

func TestNewWordInvalidLength(t *testing.T) {
	cases := []struct {
		in      string
		wantLen int
	}{
		{"too long", 8},
		{"shrt", 4},
		{"", 0},
	}
	for _, tc := range cases {
		_, err := NewWord(tc.in)
		var lenErr *InvalidLengthError
		if !errors.As(err, &lenErr) {
			t.Fatalf("NewWord(%q) error = %v, want InvalidLengthError", tc.in, err)
		}
		if lenErr.Length != tc.wantLen {
			t.Errorf("NewWord(%q) reported length %d, want %d", tc.in, lenErr.Length, tc.wantLen)
		}
	}
}

func TestNewWordInvalidCharacters(t *testing.T) {
	for _, in := range []string{"cran3", "cran ", "cran!"} {
		if _, err := NewWord(in); !errors.Is(err, ErrInvalidCharacters) {
			t.Errorf("NewWord(%q) error = %v, want ErrInvalidCharacters", in, err)
		}
	}
}

func TestNewWordNonASCII(t *testing.T) {
	// 5-byte inputs containing a non-ASCII byte must report ErrNonASCII,
	// not a length error: length is checked on the raw bytes before any
	// case normalization can change them.
	for _, in := range []string{"cran\xc3", "CRAN\xc3", "cr\xc3\xa9n"} {
		if _, err := NewWord(in); !errors.Is(err, ErrNonASCII) {
			t.Errorf("NewWord(%q) error = %v, want ErrNonASCII", in, err)
		}
	}

	// A multi-byte rune pushing the byte length past 5 is a length
	// error carrying the actual byte count.
	_, err := NewWord("cran\xc3\xa9") // crané, 6 bytes
	var lenErr *InvalidLengthError
	if !errors.As(err, &lenErr) {
		t.Fatalf("error = %v, want InvalidLengthError", err)
	}
	if lenErr.Length != 6 {
		t.Errorf("reported length %d, want 6", lenErr.Length)
	}
}

func TestWordCharAt(t *testing.T) {
	w := MustWord("crane")
	want := "crane"
	for i := 0; i < WordLen; i++ {
		if w.CharAt(i) != want[i] {
			t.Errorf("CharAt(%d) = %c, want %c", i, w.CharAt(i), want[i])
		}
	}
}

func TestWordHasLetter(t *testing.T) {
	w := MustWord("crane")
	for _, ch := range []byte("crane") {
		if !w.HasLetter(ch) {
			t.Errorf("HasLetter(%c) = false, want true", ch)
		}
	}
	for _, ch := range []byte("zxq") {
		if w.HasLetter(ch) {
			t.Errorf("HasLetter(%c) = true, want false", ch)
		}
	}
}

func TestWordPositionsOf(t *testing.T) {
	cases := []struct {
		word   string
		letter byte
		want   []int
	}{
		{"crane", 'c', []int{0}},
		{"crane", 'z', nil},
		{"speed", 'e', []int{2, 3}},
		{"aaaaa", 'a', []int{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		w := MustWord(tc.word)
		if diff := cmp.Diff(tc.want, w.PositionsOf(tc.letter)); diff != "" {
			t.Errorf("PositionsOf(%q, %c) mismatch (-want +got):\n%s", tc.word, tc.letter, diff)
		}
	}
}

func TestWordLetterCounts(t *testing.T) {
	counts := MustWord("speed").LetterCounts()
	checks := map[byte]uint8{'s': 1, 'p': 1, 'e': 2, 'd': 1, 'z': 0}
	for ch, want := range checks {
		if got := counts[ch-'a']; got != want {
			t.Errorf("counts[%c] = %d, want %d", ch, got, want)
		}
	}
}

func TestWordEquality(t *testing.T) {
	a := MustWord("crane")
	b := MustWord("CRANE")
	c := MustWord("slate")
	if !a.Equal(b) {
		t.Error("expected crane == CRANE after normalization")
	}
	if a.Equal(c) {
		t.Error("expected crane != slate")
	}
}
