package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromLinesSkipsInvalid(t *testing.T) {
	in := "crane\nSLATE\n\nhi\ntoolong\nmixed!\nirate\n"
	got := FromLines(in)

	var texts []string
	for _, w := range got {
		texts = append(texts, w.Text())
	}
	want := []string{"crane", "slate", "irate"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("FromLines mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "crane\n  slate  \nnope!\ngrate\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 words, got %d", len(got))
	}
	if got[1].Text() != "slate" {
		t.Errorf("whitespace not trimmed: %q", got[1].Text())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	answers := FromLines(embeddedAnswers)
	allowed := FromLines(embeddedAllowed)

	if len(answers) == 0 {
		t.Fatal("embedded answer list is empty")
	}
	if len(allowed) == 0 {
		t.Fatal("embedded allowed list is empty")
	}

	hasSalet := false
	for _, w := range allowed {
		if w.Text() == "salet" {
			hasSalet = true
			break
		}
	}
	if !hasSalet {
		t.Error("embedded allowed list must contain the opener salet")
	}
}

func TestInitDefaults(t *testing.T) {
	os.Unsetenv("WORDS_ANSWERS_FILE")
	os.Unsetenv("WORDS_ALLOWED_FILE")

	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	answersCount, allowedCount := Stats()
	if answersCount == 0 {
		t.Fatal("empty answer pool after Init")
	}
	if allowedCount < answersCount {
		t.Errorf("guess pool (%d) smaller than answer pool (%d)", allowedCount, answersCount)
	}

	// Guess pool starts with the answers, extras follow.
	pool := GuessPool()
	for i, w := range AnswerPool() {
		if !pool[i].Equal(w) {
			t.Fatalf("guess pool position %d: got %q, want %q", i, pool[i].Text(), w.Text())
		}
	}

	if !IsAllowed("salet") {
		t.Error("salet should be a legal guess")
	}
	if IsAnswer("salet") {
		t.Error("salet is guess-only, not a target")
	}
	if !IsAnswer("crane") {
		t.Error("crane should be a legal target")
	}
	if IsAllowed("zzzzz") {
		t.Error("zzzzz should not be a legal guess")
	}
}
