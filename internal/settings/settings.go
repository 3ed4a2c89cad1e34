// Package settings reads the tool environment: where run artifacts
// live and how loud the logger is.
package settings

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Settings is the process environment of the CLI.
type Settings struct {
	// DataDir holds catalogs and exported headers unless overridden
	// per command.
	DataDir string `env:"SPHLAB_DATA_DIR" envDefault:".sphlab"`

	// CatalogPath points at the run catalog. Empty means
	// <DataDir>/catalog.db.
	CatalogPath string `env:"SPHLAB_CATALOG"`

	LogLevel string `env:"SPHLAB_LOG_LEVEL" envDefault:"info"`
}

// Load parses the settings from the environment.
func Load() (Settings, error) {
	return env.ParseAs[Settings]()
}

// CatalogOrDefault returns the configured catalog path, falling back
// to the data directory.
func (s Settings) CatalogOrDefault() string {
	if s.CatalogPath != "" {
		return s.CatalogPath
	}
	return filepath.Join(s.DataDir, "catalog.db")
}
