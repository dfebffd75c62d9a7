package textstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/solid/internal/domain"
)

func sampleJournal() *domain.Journal {
	j := domain.NewJournal()
	j.AddEntry("Hello World")
	j.AddEntry("The world is fire")
	return j
}

func TestSave_OverwriteWritesNewFile(t *testing.T) {
	tmp := t.TempDir()
	store := New(WithDir(tmp))

	if err := store.Save(context.Background(), sampleJournal(), "journal.txt", true); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "journal.txt"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	want := "1: Hello World" + domain.LineSeparator + "2: The world is fire" + domain.LineSeparator
	if string(b) != want {
		t.Fatalf("expected %q, got %q", want, string(b))
	}
}

func TestSave_NoOverwriteMissingFileIsNoop(t *testing.T) {
	tmp := t.TempDir()
	store := New(WithDir(tmp))

	if err := store.Save(context.Background(), sampleJournal(), "x.txt", false); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "x.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, stat err=%v", err)
	}
}

func TestSave_NoOverwriteExistingFileIsReplaced(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "x.txt")
	if err := os.WriteFile(path, []byte("old contents that are longer than the journal\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	j := domain.NewJournal()
	j.AddEntry("a")

	if err := New(WithDir(tmp)).Save(context.Background(), j, "x.txt", false); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	b, _ := os.ReadFile(path)
	if string(b) != "1: a"+domain.LineSeparator {
		t.Fatalf("expected file replaced, got %q", string(b))
	}
}

func TestSave_AbsolutePathIgnoresDir(t *testing.T) {
	tmp := t.TempDir()
	abs := filepath.Join(tmp, "abs.txt")

	store := New(WithDir(filepath.Join(tmp, "elsewhere")))
	if store.Path(abs) != abs {
		t.Fatalf("expected absolute path kept, got %q", store.Path(abs))
	}
	if err := store.Save(context.Background(), sampleJournal(), abs, true); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(abs); err != nil {
		t.Fatalf("expected file at %s: %v", abs, err)
	}
}

func TestSave_UnwritablePathIsIOError(t *testing.T) {
	tmp := t.TempDir()
	store := New(WithDir(filepath.Join(tmp, "missing-dir")))

	err := store.Save(context.Background(), sampleJournal(), "journal.txt", true)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected KindIO, got %v", err)
	}
}

func TestSave_CancelledContext(t *testing.T) {
	tmp := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New(WithDir(tmp)).Save(ctx, sampleJournal(), "journal.txt", true); err == nil {
		t.Fatalf("expected context error")
	}
	if _, err := os.Stat(filepath.Join(tmp, "journal.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written")
	}
}
