package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/solid/internal/domain"
)

// ConfigFile is the preferred marker of a solid workspace; ConfigFileAlt is
// also accepted.
const (
	ConfigFile    = "solid.yaml"
	ConfigFileAlt = "solid.yml"
)

// Finder walks up from a directory until it meets one of Markers.
type Finder struct {
	Markers []string
}

func NewFinder() *Finder {
	return &Finder{Markers: []string{ConfigFile, ConfigFileAlt}}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidArgument,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindIO,
			Path: startDir,
			Err:  err,
		}
	}

	// A file path starts the search at its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if _, ok := markerIn(cur, f.markers()); ok {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func (f *Finder) markers() []string {
	if len(f.Markers) == 0 {
		return []string{ConfigFile, ConfigFileAlt}
	}
	return f.Markers
}

// markerIn returns the first marker present in dir.
func markerIn(dir string, markers []string) (string, bool) {
	for _, m := range markers {
		p := filepath.Join(dir, m)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}
