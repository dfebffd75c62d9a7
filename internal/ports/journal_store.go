package ports

import (
	"context"

	"github.com/aalvaropc/solid/internal/domain"
)

// JournalStore persists a journal under a name. Save writes when overwrite is
// set or the named target already exists; otherwise it is a no-op.
type JournalStore interface {
	Save(ctx context.Context, j *domain.Journal, name string, overwrite bool) error
}
