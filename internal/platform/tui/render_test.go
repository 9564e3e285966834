package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-reversi/internal/board"
	"github.com/vovakirdan/tui-reversi/internal/config"
)

func TestRenderBoardLayout(t *testing.T) {
	g, err := board.New(8)
	if err != nil {
		t.Fatal(err)
	}
	theme := NewTheme(config.Default().Theme)

	out := RenderBoard(g, theme, nil, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("render has %d lines, want header + 8 rows", len(lines))
	}
	if !strings.Contains(lines[0], "1") || !strings.Contains(lines[0], "8") {
		t.Errorf("header %q missing column numbers", lines[0])
	}
	for i, label := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		if !strings.Contains(lines[i+1], label) {
			t.Errorf("row %d missing gutter %q: %q", i, label, lines[i+1])
		}
	}
	if strings.Count(out, config.Default().Theme.PieceGlyph) != 4 {
		t.Errorf("render shows %d pieces, want the 4 seeded ones:\n%s",
			strings.Count(out, config.Default().Theme.PieceGlyph), out)
	}
}

func TestRenderBoardCursorMarker(t *testing.T) {
	g, err := board.New(6)
	if err != nil {
		t.Fatal(err)
	}
	theme := NewTheme(config.Default().Theme)

	cursor := board.NewCoords(0, 0)
	out := RenderBoard(g, theme, &cursor, nil)
	if !strings.Contains(out, "+") {
		t.Errorf("empty cursor cell should render as '+':\n%s", out)
	}
}

func TestPadCell(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"x", 3, " x "},
		{"x", 4, " x  "},
		{"●", 3, " ● "},
		{"12", 4, " 12 "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := padCell(tt.input, tt.width); got != tt.expected {
				t.Errorf("padCell(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}
