// Package config provides YAML-based configuration loading for the reversi
// platform: board defaults, theme colors, and storage location.
package config

// Config is the root configuration document.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines defaults for new matches. Size must be even and
// greater than 4; the board package enforces that when the match starts.
type BoardConfig struct {
	Size           int  `yaml:"size"`
	StrictCaptures bool `yaml:"strict_captures"`
}

// ThemeConfig defines how the board is drawn. Colors are ANSI 256-color
// codes as understood by lipgloss.
type ThemeConfig struct {
	PieceGlyph  string `yaml:"piece_glyph"`
	BlueColor   string `yaml:"blue_color"`
	RedColor    string `yaml:"red_color"`
	CursorColor string `yaml:"cursor_color"`
	LastColor   string `yaml:"last_move_color"`
	GridColor   string `yaml:"grid_color"`
}

// StorageConfig defines where match results are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}
