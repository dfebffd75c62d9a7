package domain

import (
	"testing"
	"time"
)

func TestJournalAddEntry(t *testing.T) {
	j := NewJournal()
	j.AddEntry("a")
	j.AddEntry("b")

	want := "1: a" + LineSeparator + "2: b"
	if got := j.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if j.Count() != 2 {
		t.Fatalf("expected count=2, got %d", j.Count())
	}
}

func TestJournalZeroValue(t *testing.T) {
	var j Journal
	if j.String() != "" {
		t.Fatalf("expected empty journal to render empty string")
	}

	e := j.AddEntry("hello")
	if e.Number != 1 || e.At.IsZero() {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestJournalTimestampsEntries(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	j := NewJournal(WithClock(func() time.Time { return at }))

	e := j.AddEntry("x")
	if !e.At.Equal(at) {
		t.Fatalf("expected At=%s, got %s", at, e.At)
	}
}

func TestJournalRemoveEntryKeepsNumbering(t *testing.T) {
	j := NewJournal()
	j.AddEntry("a")
	j.AddEntry("b")
	j.AddEntry("c")

	if err := j.RemoveEntry(1); err != nil {
		t.Fatalf("RemoveEntry error: %v", err)
	}

	want := "1: a" + LineSeparator + "3: c"
	if got := j.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if j.Count() != 4 {
		t.Fatalf("expected counter to bump on removal, got %d", j.Count())
	}

	e := j.AddEntry("d")
	if e.Number != 5 {
		t.Fatalf("expected next entry number 5, got %d", e.Number)
	}
}

func TestJournalRemoveEntryOutOfRange(t *testing.T) {
	j := NewJournal()
	j.AddEntry("a")

	for _, idx := range []int{-1, 1, 7} {
		err := j.RemoveEntry(idx)
		if err == nil {
			t.Fatalf("expected error for index %d", idx)
		}
		if !IsKind(err, KindInvalidArgument) {
			t.Fatalf("expected KindInvalidArgument, got %v", err)
		}
	}
	if j.Count() != 1 || j.Len() != 1 {
		t.Fatalf("expected journal untouched, count=%d len=%d", j.Count(), j.Len())
	}
}

func TestJournalEntriesIsACopy(t *testing.T) {
	j := NewJournal()
	j.AddEntry("a")

	got := j.Entries()
	got[0].Text = "mutated"

	if j.Entries()[0].Text != "a" {
		t.Fatalf("expected Entries to return a copy")
	}
}

func TestLineSeparator(t *testing.T) {
	if lineSeparator("windows") != "\r\n" {
		t.Fatalf("expected CRLF on windows")
	}
	if lineSeparator("linux") != "\n" {
		t.Fatalf("expected LF on linux")
	}
}
