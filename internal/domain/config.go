package domain

// Config represents the solid configuration loaded from solid.yaml.
type Config struct {
	Journal JournalConfig
	Data    DataConfig
}

type JournalConfig struct {
	// Dir is where text journals are written, relative to the workspace root.
	Dir string
	// Store selects the journal backend: "text" or "sqlite".
	Store string
	// DBPath is the SQLite file used when Store is "sqlite".
	DBPath string
}

type DataConfig struct {
	CatalogFile string
	FamilyFile  string
}

const (
	StoreText   = "text"
	StoreSQLite = "sqlite"
)

// DefaultConfig provides sane defaults if solid.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Journal: JournalConfig{
			Dir:    "journals",
			Store:  StoreText,
			DBPath: "journals/journal.db",
		},
		Data: DataConfig{
			CatalogFile: "data/products.yaml",
			FamilyFile:  "data/family.yaml",
		},
	}
}
