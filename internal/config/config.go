// Package config loads optional TOML defaults for the CLI. Flags always
// win over file values; the file only moves the defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"kanarate/internal/corpus"
)

// Config holds the tunable defaults.
type Config struct {
	Root      string `toml:"root"`
	Unit      string `toml:"unit"`
	Bins      int    `toml:"bins"`
	Out       string `toml:"out"`
	BackupDir string `toml:"backup_dir"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Root:      ".",
		Unit:      "mora",
		Bins:      20,
		Out:       "rate_distributions",
		BackupDir: corpus.DefaultBackupDir,
	}
}

// Load reads a TOML file and overlays it on the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
