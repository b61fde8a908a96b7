package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const storeFileName = "aliases.db"

// StoreConfig locates the alias database
type StoreConfig struct {
	// Path is the SQLite database file; defaults to the XDG data directory
	Path string `hcl:"path,optional"`
}

// DefaultStoreConfig returns a new StoreConfig with default values
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{}
}

// Normalize resolves the default database path. The directory is left for
// the store to create when it is opened.
func (cfg *StoreConfig) Normalize() error {
	if cfg.Path == "" {
		cfg.Path = filepath.Join(xdg.DataHome, AppName, storeFileName)
	}
	return nil
}

// StoreSampleConfig returns a sample configuration for the alias store
func StoreSampleConfig() string {
	return `# Alias store
store {
  path = ""  # SQLite database, defaults to $XDG_DATA_HOME/durflex/aliases.db
}`
}
