package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/solid/internal/domain"
)

// LoadConfig loads solid.yaml (or solid.yml) from the workspace root, applies defaults and
// then SOLID_* environment overrides.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, ok := markerIn(root, []string{ConfigFile, ConfigFileAlt})
	if !ok {
		path = filepath.Join(root, ConfigFile)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Solid.Journal.Dir != "" {
		cfg.Journal.Dir = y.Solid.Journal.Dir
	}
	if y.Solid.Journal.Store != "" {
		cfg.Journal.Store = y.Solid.Journal.Store
	}
	if y.Solid.Journal.DBPath != "" {
		cfg.Journal.DBPath = y.Solid.Journal.DBPath
	}
	if y.Solid.Data.Catalog != "" {
		cfg.Data.CatalogFile = y.Solid.Data.Catalog
	}
	if y.Solid.Data.Family != "" {
		cfg.Data.FamilyFile = y.Solid.Data.Family
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, validate(path, cfg)
}

// ApplyEnv overlays SOLID_* environment variables on cfg.
func ApplyEnv(cfg *domain.Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	if o.JournalDir != "" {
		cfg.Journal.Dir = o.JournalDir
	}
	if o.Store != "" {
		cfg.Journal.Store = o.Store
	}
	if o.DBPath != "" {
		cfg.Journal.DBPath = o.DBPath
	}
	return nil
}

func validate(path string, cfg domain.Config) error {
	switch cfg.Journal.Store {
	case domain.StoreText, domain.StoreSQLite:
		return nil
	default:
		return &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  domain.ErrInvalidConfig,
		}
	}
}

type envOverrides struct {
	JournalDir string `env:"SOLID_JOURNAL_DIR"`
	Store      string `env:"SOLID_STORE"`
	DBPath     string `env:"SOLID_DB_PATH"`
}

type yamlConfig struct {
	Solid struct {
		Journal struct {
			Dir    string `yaml:"dir"`
			Store  string `yaml:"store"`
			DBPath string `yaml:"db_path"`
		} `yaml:"journal"`

		Data struct {
			Catalog string `yaml:"catalog"`
			Family  string `yaml:"family"`
		} `yaml:"data"`
	} `yaml:"solid"`
}
