package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/ports"
)

// SaveJournal keeps persistence out of the Journal: the journal holds
// entries, the store decides where they go.
type SaveJournal struct {
	store ports.JournalStore
	log   *slog.Logger
}

type SaveJournalOption func(*SaveJournal)

func WithSaveLogger(l *slog.Logger) SaveJournalOption {
	return func(uc *SaveJournal) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewSaveJournal(store ports.JournalStore, opts ...SaveJournalOption) *SaveJournal {
	uc := &SaveJournal{
		store: store,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute builds a journal from texts, applies removals (positions, in the
// order given) and hands it to the store.
func (uc *SaveJournal) Execute(ctx context.Context, texts []string, remove []int, name string, overwrite bool) (*domain.Journal, error) {
	j := domain.NewJournal()
	for _, t := range texts {
		j.AddEntry(t)
	}
	for _, idx := range remove {
		if err := j.RemoveEntry(idx); err != nil {
			return j, err
		}
	}

	if err := uc.store.Save(ctx, j, name, overwrite); err != nil {
		uc.log.Error("journal.save.failed", "name", name, "err", err)
		return j, err
	}

	uc.log.Info("journal.save.ok", "name", name, "entries", j.Len(), "overwrite", overwrite)
	return j, nil
}
