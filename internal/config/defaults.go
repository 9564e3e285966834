package config

import (
	_ "embed"
)

//go:embed defaults/reversi.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found or the embedded document fails to parse.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:           8,
			StrictCaptures: false,
		},
		Theme: ThemeConfig{
			PieceGlyph:  "●",
			BlueColor:   "12",
			RedColor:    "9",
			CursorColor: "11",
			LastColor:   "10",
			GridColor:   "245",
		},
		Storage: StorageConfig{
			DBPath: "~/.reversi/matches.db",
		},
	}
}
