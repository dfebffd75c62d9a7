package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/solid/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSave_OverwriteCreatesJournal(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	j := domain.NewJournal(domain.WithClock(func() time.Time { return at }))
	j.AddEntry("Hello World")
	j.AddEntry("The world is fire")

	if err := s.Save(ctx, j, "diary", true); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Load(ctx, "diary")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[1].Number != 2 || got[1].Text != "The world is fire" {
		t.Fatalf("unexpected entry %+v", got[1])
	}
	if !got[0].At.Equal(at) {
		t.Fatalf("expected timestamp %s, got %s", at, got[0].At)
	}
}

func TestSave_NoOverwriteMissingIsNoop(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	j := domain.NewJournal()
	j.AddEntry("a")

	if err := s.Save(ctx, j, "missing", false); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	_, err := s.Load(ctx, "missing")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestSave_ExistingJournalIsReplaced(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	j := domain.NewJournal()
	j.AddEntry("a")
	j.AddEntry("b")
	if err := s.Save(ctx, j, "diary", true); err != nil {
		t.Fatalf("Save #1 error: %v", err)
	}

	if err := j.RemoveEntry(0); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, j, "diary", false); err != nil {
		t.Fatalf("Save #2 error: %v", err)
	}

	got, err := s.Load(ctx, "diary")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 1 || got[0].String() != "2: b" {
		t.Fatalf("expected only '2: b', got %+v", got)
	}
}

func TestLoad_EmptyJournalExists(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, domain.NewJournal(), "empty", true); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := s.Load(ctx, "empty")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("  ")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
