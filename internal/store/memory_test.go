package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mfriedel/wordle-solver/internal/core"
	"github.com/mfriedel/wordle-solver/internal/solver"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}

	sess := &Session{ID: "abc", Strategy: "entropy", CreatedAt: time.Now()}
	if err := st.Save(ctx, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Strategy != "entropy" {
		t.Errorf("strategy = %q", got.Strategy)
	}

	// Updating history replaces the stored session.
	w, err := core.NewWord("crane")
	if err != nil {
		t.Fatal(err)
	}
	sess.History = append(sess.History, solver.Turn{Guess: w, Pattern: 0})
	if err := st.Save(ctx, sess); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	got, _ = st.Get(ctx, "abc")
	if len(got.History) != 1 {
		t.Errorf("history length = %d, want 1", len(got.History))
	}

	if n, _ := st.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	if err := st.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := st.Delete(ctx, "abc"); err != nil {
		t.Errorf("double delete should be a no-op, got %v", err)
	}
}
