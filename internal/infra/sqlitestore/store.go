// Package sqlitestore persists journals in a SQLite database, one row per
// journal and one row per entry.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/ports"
)

type Store struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &domain.OpError{
			Op:   "sqlitestore.open",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("database path is required: %w", domain.ErrInvalidConfig),
		}
	}

	clean := filepath.Clean(path)
	db, err := sql.Open("sqlite", "file:"+clean+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, ioErr("sqlitestore.open", clean, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, ioErr("sqlitestore.ping", clean, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, ioErr("sqlitestore.migrate", clean, err)
	}

	s := &Store{
		db:  db,
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.JournalStore = (*Store)(nil)

// Save replaces the stored entries of the named journal when overwrite is set
// or the journal already exists. Otherwise nothing is written.
func (s *Store) Save(ctx context.Context, j *domain.Journal, name string, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ioErr("sqlitestore.begin", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM journals WHERE name = ?`, name).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if !overwrite {
			s.log.Debug("journal.save.skipped", "name", name)
			return nil
		}
		id = uuid.New().String()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO journals (id, name, counter, updated_at) VALUES (?, ?, ?, ?)`,
			id, name, j.Count(), s.now().UTC().UnixMilli(),
		); err != nil {
			return ioErr("sqlitestore.insert_journal", name, err)
		}
	case err != nil:
		return ioErr("sqlitestore.lookup", name, err)
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE journals SET counter = ?, updated_at = ? WHERE id = ?`,
			j.Count(), s.now().UTC().UnixMilli(), id,
		); err != nil {
			return ioErr("sqlitestore.update_journal", name, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE journal_id = ?`, id); err != nil {
			return ioErr("sqlitestore.clear_entries", name, err)
		}
	}

	for pos, e := range j.Entries() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entries (journal_id, position, number, text, created_at) VALUES (?, ?, ?, ?, ?)`,
			id, pos, e.Number, e.Text, e.At.UTC().UnixMilli(),
		); err != nil {
			return ioErr("sqlitestore.insert_entry", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ioErr("sqlitestore.commit", name, err)
	}

	s.log.Info("journal.saved", "name", name, "id", id, "entries", j.Len())
	return nil
}

// Load returns the stored entries of the named journal in order.
func (s *Store) Load(ctx context.Context, name string) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.number, e.text, e.created_at
		FROM entries e
		JOIN journals j ON j.id = e.journal_id
		WHERE j.name = ?
		ORDER BY e.position`, name)
	if err != nil {
		return nil, ioErr("sqlitestore.load", name, err)
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var at int64
		if err := rows.Scan(&e.Number, &e.Text, &at); err != nil {
			return nil, ioErr("sqlitestore.scan", name, err)
		}
		e.At = time.UnixMilli(at).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, ioErr("sqlitestore.load", name, err)
	}

	if out == nil {
		exists, err := s.exists(ctx, name)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &domain.OpError{
				Op:   "sqlitestore.load",
				Kind: domain.KindNotFound,
				Path: name,
				Err:  domain.ErrNotFound,
			}
		}
	}
	return out, nil
}

func (s *Store) exists(ctx context.Context, name string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM journals WHERE name = ?`, name).Scan(&n); err != nil {
		return false, ioErr("sqlitestore.exists", name, err)
	}
	return n > 0, nil
}

func ioErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindIO,
		Path: path,
		Err:  err,
	}
}
