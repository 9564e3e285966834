package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reversi/internal/board"
	"github.com/vovakirdan/tui-reversi/internal/config"
)

// Theme holds the lipgloss styles derived from the configured colors.
type Theme struct {
	glyph  string
	blue   lipgloss.Style
	red    lipgloss.Style
	cursor lipgloss.Style
	last   lipgloss.Style
	grid   lipgloss.Style
}

// NewTheme builds the render styles from a theme configuration.
func NewTheme(cfg config.ThemeConfig) Theme {
	return Theme{
		glyph:  cfg.PieceGlyph,
		blue:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.BlueColor)),
		red:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.RedColor)),
		cursor: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.CursorColor)).Bold(true),
		last:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.LastColor)).Bold(true),
		grid:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.GridColor)),
	}
}

// pieceStyle returns the style for a piece color.
func (t Theme) pieceStyle(p board.Piece) lipgloss.Style {
	if p == board.Blue {
		return t.blue
	}
	return t.red
}

// RenderBoard draws the grid with a column-number header, a row-letter
// gutter, colored piece glyphs, and highlights for the cursor cell and the
// most recent placement. cursor or last may be nil.
func RenderBoard(g *board.Grid, theme Theme, cursor, last *board.Coords) string {
	var sb strings.Builder
	size := g.Size()

	gutter := len(rowLabelOf(size - 1))
	cellW := len(fmt.Sprintf(" %d ", size))

	sb.WriteString(strings.Repeat(" ", gutter))
	for col := 0; col < size; col++ {
		sb.WriteString(theme.grid.Render(padCell(fmt.Sprintf("%d", col+1), cellW)))
	}
	sb.WriteByte('\n')

	for row := 0; row < size; row++ {
		label := rowLabelOf(row)
		sb.WriteString(theme.grid.Render(label + strings.Repeat(" ", gutter-len(label))))

		for col := 0; col < size; col++ {
			c := board.NewCoords(row, col)
			pos, err := g.Get(c)
			if err != nil {
				continue
			}

			glyph := "·"
			style := theme.grid
			if piece, ok := pos.Piece(); ok {
				glyph = theme.glyph
				style = theme.pieceStyle(piece)
			}
			switch {
			case cursor != nil && *cursor == c:
				style = theme.cursor
				if !pos.Occupied() {
					glyph = "+"
				}
			case last != nil && *last == c:
				style = theme.last
			}

			sb.WriteString(style.Render(padCell(glyph, cellW)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// rowLabelOf resolves a row's algebraic letters via the coordinate codec.
func rowLabelOf(row int) string {
	text := board.NewCoords(row, 0).String()
	letters, _, _ := strings.Cut(text, ":")
	return letters
}

// padCell centers a one-glyph string in a cell of the given display width.
// The glyph may be multi-byte; it renders one column wide.
func padCell(s string, width int) string {
	pad := width - len([]rune(s))
	left := pad / 2
	if pad < 0 {
		return s
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
