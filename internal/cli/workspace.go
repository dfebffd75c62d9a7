package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/infra/logger"
	"github.com/aalvaropc/solid/internal/infra/sqlitestore"
	"github.com/aalvaropc/solid/internal/infra/textstore"
	"github.com/aalvaropc/solid/internal/infra/workspacefinder"
	"github.com/aalvaropc/solid/internal/infra/yamlcatalog"
	"github.com/aalvaropc/solid/internal/ports"
)

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	data *yamlcatalog.Loader
}

// loadWorkspace resolves the workspace and its config. Without a solid.yaml
// the current directory is used with default settings.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	ws := &workspaceCtx{data: yamlcatalog.NewLoader()}

	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
		wd, werr := os.Getwd()
		if werr != nil {
			return nil, fmt.Errorf("get working directory: %w", werr)
		}
		root = wd
	}
	ws.root = root

	cfg, err := workspacefinder.LoadConfig(root)
	switch {
	case err == nil:
		ws.found = true
	case domain.IsKind(err, domain.KindNotFound):
		cfg = domain.DefaultConfig()
		if err := workspacefinder.ApplyEnv(&cfg); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	ws.cfg = cfg
	return ws, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().FindRoot(wd)
}

// resolve makes p absolute relative to the workspace root.
func (ws *workspaceCtx) resolve(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(ws.root, p)
}

// openJournalStore builds the configured journal backend. kind overrides the
// config when set. The returned closer is never nil.
func (ws *workspaceCtx) openJournalStore(kind string) (ports.JournalStore, func() error, error) {
	if strings.TrimSpace(kind) == "" {
		kind = ws.cfg.Journal.Store
	}
	noop := func() error { return nil }

	switch kind {
	case domain.StoreText:
		dir := ws.resolve(ws.cfg.Journal.Dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, noop, &domain.OpError{Op: "cli.journal_dir", Kind: domain.KindIO, Path: dir, Err: err}
		}
		s := textstore.New(
			textstore.WithDir(dir),
			textstore.WithLogger(logger.Component("textstore")),
		)
		return s, noop, nil

	case domain.StoreSQLite:
		s, err := ws.openSQLite()
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	default:
		return nil, noop, &domain.OpError{
			Op:   "cli.journal_store",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("unsupported store %q (expected text|sqlite): %w", kind, domain.ErrInvalidArgument),
		}
	}
}

func (ws *workspaceCtx) openSQLite() (*sqlitestore.Store, error) {
	path := ws.resolve(ws.cfg.Journal.DBPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &domain.OpError{Op: "cli.journal_dir", Kind: domain.KindIO, Path: path, Err: err}
	}
	return sqlitestore.Open(path, sqlitestore.WithLogger(logger.Component("sqlitestore")))
}
