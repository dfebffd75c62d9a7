package domain

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// LineSeparator is the platform line separator used when rendering a journal.
var LineSeparator = lineSeparator(runtime.GOOS)

func lineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Entry is a single numbered, timestamped journal line.
type Entry struct {
	Number int
	Text   string
	At     time.Time
}

func (e Entry) String() string {
	return fmt.Sprintf("%d: %s", e.Number, e.Text)
}

// Journal is an in-memory ordered log of entries. It only knows how to hold
// entries; persisting it is the job of a ports.JournalStore.
//
// The counter behaves like a revision number: it increments on every add and
// every remove and is never reused, so numbers of remaining entries are not
// rewritten after a removal.
//
// The zero value is ready to use.
type Journal struct {
	entries []Entry
	count   int
	now     func() time.Time
}

// JournalOption configures a Journal.
type JournalOption func(*Journal)

// WithClock overrides the clock used to timestamp entries (useful for tests).
func WithClock(now func() time.Time) JournalOption {
	return func(j *Journal) { j.now = now }
}

func NewJournal(opts ...JournalOption) *Journal {
	j := &Journal{now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// AddEntry bumps the counter and appends "{counter}: {text}".
func (j *Journal) AddEntry(text string) Entry {
	j.count++
	e := Entry{Number: j.count, Text: text, At: j.clock()}
	j.entries = append(j.entries, e)
	return e
}

// RemoveEntry removes the entry at the given position and bumps the counter.
// An out-of-range index leaves the journal untouched, counter included, and
// returns an invalid_argument error.
func (j *Journal) RemoveEntry(index int) error {
	if index < 0 || index >= len(j.entries) {
		return &OpError{
			Op:   "journal.remove_entry",
			Kind: KindInvalidArgument,
			Err:  fmt.Errorf("index %d out of range [0,%d): %w", index, len(j.entries), ErrInvalidArgument),
		}
	}

	j.count++
	j.entries = append(j.entries[:index], j.entries[index+1:]...)
	return nil
}

// Entries returns a copy of the current entries in order.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Count returns the current counter value.
func (j *Journal) Count() int { return j.count }

// Len returns the number of entries held.
func (j *Journal) Len() int { return len(j.entries) }

// String joins the rendered entries with LineSeparator.
func (j *Journal) String() string {
	lines := make([]string, 0, len(j.entries))
	for _, e := range j.entries {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, LineSeparator)
}

func (j *Journal) clock() time.Time {
	if j.now == nil {
		return time.Now()
	}
	return j.now()
}
