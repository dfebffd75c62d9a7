// Package textstore saves journals as plain text files, one journal per file.
package textstore

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/ports"
)

type Store struct {
	dir string
	log *slog.Logger
}

type Option func(*Store)

// WithDir resolves relative file names against dir.
func WithDir(dir string) Option {
	return func(s *Store) { s.dir = dir }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.JournalStore = (*Store)(nil)

// Path returns where a journal named name is written.
func (s *Store) Path(name string) string {
	if filepath.IsAbs(name) || s.dir == "" {
		return filepath.Clean(name)
	}
	return filepath.Join(s.dir, name)
}

// Save writes the journal text followed by a line separator when overwrite is
// set or the file already exists. Otherwise nothing is written.
func (s *Store) Save(ctx context.Context, j *domain.Journal, name string, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(name)

	exists, err := fileExists(path)
	if err != nil {
		return &domain.OpError{
			Op:   "textstore.stat",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	if !overwrite && !exists {
		s.log.Debug("journal.save.skipped", "path", path)
		return nil
	}

	if err := writeFile(path, j.String()+domain.LineSeparator); err != nil {
		return err
	}

	s.log.Info("journal.saved", "path", path, "entries", j.Len())
	return nil
}

func writeFile(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.OpError{
			Op:   "textstore.open",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &domain.OpError{
				Op:   "textstore.close",
				Kind: domain.KindIO,
				Path: path,
				Err:  cerr,
			}
		}
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return &domain.OpError{
			Op:   "textstore.write",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
