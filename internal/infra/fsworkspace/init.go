// Package fsworkspace scaffolds a solid workspace on disk.
package fsworkspace

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/solid/internal/domain"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init writes solid.yaml and the sample data files under root. Existing files
// are kept unless force is set.
func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)
	cfg := domain.DefaultConfig()

	dirs := []string{
		filepath.Join(root, cfg.Journal.Dir),
		filepath.Join(root, filepath.Dir(cfg.Data.CatalogFile)),
		filepath.Join(root, ".solid", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return ioErr("fsworkspace.mkdir", d, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return ioErr("fsworkspace.gitignore", filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return ioErr("fsworkspace.mkdir", filepath.Dir(dst), err)
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return ioErr("fsworkspace.write", dst, err)
		}
		return nil
	})
}

func ioErr(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindIO, Path: path, Err: err}
}

func ensureGitignore(root string) error {
	const header = "# solid"
	entries := []string{
		"journals/",
		".solid/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
