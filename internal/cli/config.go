package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the config file. Fields mirror
// the render command's flags; a flag given on the command line always wins
// over the file.
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig holds draw and layout defaults.
type RenderConfig struct {
	DrawNodes   bool    `toml:"draw_nodes"`
	LabelIDs    bool    `toml:"label_ids"`
	LabelValues bool    `toml:"label_values"`
	Link        bool    `toml:"link"`
	Standalone  bool    `toml:"standalone"`
	NodeSpacing float64 `toml:"node_spacing"`
	CptSize     float64 `toml:"cpt_size"`
}

// defaultConfig returns the built-in defaults: every draw toggle on,
// standard spacing.
func defaultConfig() Config {
	return Config{
		Render: RenderConfig{
			DrawNodes:   true,
			LabelIDs:    true,
			LabelValues: true,
			Link:        true,
			NodeSpacing: 2.0,
			CptSize:     1.2,
		},
	}
}

// loadConfig reads the config file if present. A missing file is not an
// error; the defaults are returned unchanged.
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
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.Render.NodeSpacing <= 0 {
		cfg.Render.NodeSpacing = 2.0
	}
	if cfg.Render.CptSize <= 0 {
		cfg.Render.CptSize = 1.2
	}
	return cfg, nil
}
