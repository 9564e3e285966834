package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.reversi/config.yaml -> ./configs/reversi.yaml -> embedded default.
// Only an explicitly requested path reports read or parse failures; the
// fallback locations are skipped silently.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/reversi.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return applyDefaults(cfg), nil
}

// userConfigPath returns the path of a file under ~/.reversi, or "" when
// the home directory cannot be resolved.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reversi", name)
}

// applyDefaults fills zero values left by a partial document with the
// built-in configuration, so a user config may override only the keys it
// cares about.
func applyDefaults(cfg Config) Config {
	def := Default()

	if cfg.Board.Size == 0 {
		cfg.Board.Size = def.Board.Size
	}
	if cfg.Theme.PieceGlyph == "" {
		cfg.Theme.PieceGlyph = def.Theme.PieceGlyph
	}
	if cfg.Theme.BlueColor == "" {
		cfg.Theme.BlueColor = def.Theme.BlueColor
	}
	if cfg.Theme.RedColor == "" {
		cfg.Theme.RedColor = def.Theme.RedColor
	}
	if cfg.Theme.CursorColor == "" {
		cfg.Theme.CursorColor = def.Theme.CursorColor
	}
	if cfg.Theme.LastColor == "" {
		cfg.Theme.LastColor = def.Theme.LastColor
	}
	if cfg.Theme.GridColor == "" {
		cfg.Theme.GridColor = def.Theme.GridColor
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = def.Storage.DBPath
	}

	return cfg
}
