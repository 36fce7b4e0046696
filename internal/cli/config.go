package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the config file.
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig sets default values for the render command's flags.
type RenderConfig struct {
	Format      string  `toml:"format"`       // default output format
	Scale       float64 `toml:"scale"`        // raster scale factor (png)
	Labels      bool    `toml:"labels"`       // show external names in labels
	FixedLayout bool    `toml:"fixed_layout"` // pin nodes to stored coordinates
	NoCache     bool    `toml:"no_cache"`     // disable the artifact cache
}

// defaultConfig returns the built-in defaults used when no config file
// exists or a field is left unset.
func defaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Format: "svg",
			Scale:  2.0,
		},
	}
}

// configPath returns the config file location (~/.config/zxgraph/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the config file, falling back to defaults when the
// file does not exist. A malformed file is an error so typos do not
// silently revert preferences.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Render.Format == "" {
		cfg.Render.Format = "svg"
	}
	if cfg.Render.Scale <= 0 {
		cfg.Render.Scale = 2.0
	}
	return cfg, nil
}
