package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reversi/internal/board"
	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/game"
	"github.com/vovakirdan/tui-reversi/internal/registry"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the Bubble Tea model for one hot-seat match. Both colors share
// the keyboard; the match itself enforces whose turn it is.
type Model struct {
	match   *game.Match
	variant registry.Variant
	store   *storage.Store
	theme   Theme

	keys  KeyMap
	help  help.Model
	input textinput.Model

	cursor   board.Coords
	last     *board.Coords
	entering bool
	flash    string
	saved    bool
	quitting bool

	width  int
	height int
}

// NewModel creates a match model. store may be nil, in which case the
// result is simply not persisted.
func NewModel(match *game.Match, variant registry.Variant, store *storage.Store, theme config.ThemeConfig) Model {
	input := textinput.New()
	input.Placeholder = "D:3"
	input.Prompt = "move> "
	input.CharLimit = 8

	half := match.Grid().Size() / 2

	return Model{
		match:   match,
		variant: variant,
		store:   store,
		theme:   NewTheme(theme),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   input,
		cursor:  board.NewCoords(half, half-2),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.entering {
			return m.handleEntryKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input in cursor mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.match.Grid().Size()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveResult()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor.Row < size-1 {
			m.cursor.Row++
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor.Col < size-1 {
			m.cursor.Col++
		}

	case key.Matches(msg, m.keys.Place):
		m.play(m.cursor)

	case key.Matches(msg, m.keys.Entry):
		m.entering = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Pass):
		if !m.match.Over() {
			m.match.Pass()
			m.flash = ""
			m.checkOver()
		}
	}

	return m, nil
}

// handleEntryKey processes keyboard input while typing a coordinate.
func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.input.Value()
		m.entering = false
		m.input.Blur()
		coords, err := board.ParseCoords(text)
		if err != nil {
			m.flash = fmt.Sprintf("cannot read %q: expected LETTERS:NUMBER like D:3", text)
			return m, nil
		}
		m.play(coords)
		return m, nil

	case "esc", "ctrl+c":
		m.entering = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// play applies a move for the active color and turns engine errors into a
// status-line flash.
func (m *Model) play(coords board.Coords) {
	if m.match.Over() {
		m.flash = "the match is over"
		return
	}

	mover := m.match.Turn()
	res, err := m.match.ApplyCoords(coords)
	if err != nil {
		m.flash = moveErrorText(coords, err)
		return
	}

	c := coords
	m.last = &c
	m.cursor = coords
	if len(res.Flipped) == 1 {
		m.flash = fmt.Sprintf("%s played %s, 1 capture", mover, coords)
	} else {
		m.flash = fmt.Sprintf("%s played %s, %d captures", mover, coords, len(res.Flipped))
	}
	m.checkOver()
}

// checkOver persists the result once the match ends.
func (m *Model) checkOver() {
	if m.match.Over() {
		m.saveResult()
	}
}

// saveResult stores the final score. Best-effort: the TUI keeps running
// whether or not the write succeeds, and nothing is stored for a match
// that never got past the opening position.
func (m *Model) saveResult() {
	if m.saved || m.store == nil || len(m.match.History()) == 0 {
		return
	}
	m.saved = true

	blue, red := m.match.Score()
	rec := storage.MatchRecord{
		Variant:   m.variant.ID,
		BoardSize: m.match.Grid().Size(),
		BlueScore: blue,
		RedScore:  red,
	}
	if winner, ok := m.match.Winner(); ok {
		rec.Winner = winner.String()
	}

	moves := make([]storage.MoveRecord, 0, len(m.match.History()))
	for _, mv := range m.match.History() {
		rec := storage.MoveRecord{Piece: mv.Piece.String(), Pass: mv.Pass}
		if !mv.Pass {
			rec.Coord = mv.Coords.String()
			rec.Flips = len(mv.Flipped)
		}
		moves = append(moves, rec)
	}

	m.store.SaveMatch(rec, moves) //nolint:errcheck // Best-effort save
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("Reversi - %s", m.variant.Title)))
	sections = append(sections, RenderBoard(m.match.Grid(), m.theme, m.cursorForView(), m.last))
	sections = append(sections, m.statusLine())

	if m.entering {
		sections = append(sections, m.input.View())
	}
	if m.flash != "" {
		sections = append(sections, flashStyle.Render(m.flash))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// cursorForView hides the cursor while typing a coordinate.
func (m Model) cursorForView() *board.Coords {
	if m.entering {
		return nil
	}
	c := m.cursor
	return &c
}

// statusLine summarizes the running score and whose move it is.
func (m Model) statusLine() string {
	blue, red := m.match.Score()
	score := fmt.Sprintf("Blue %d - Red %d", blue, red)

	if m.match.Over() {
		if winner, ok := m.match.Winner(); ok {
			return statusStyle.Render(fmt.Sprintf("%s | %s wins", score, winner))
		}
		return statusStyle.Render(fmt.Sprintf("%s | draw", score))
	}
	return statusStyle.Render(fmt.Sprintf("%s | %s to move (%s)", score, m.match.Turn(), m.cursor))
}

// moveErrorText maps engine errors to a short player-facing message.
func moveErrorText(coords board.Coords, err error) string {
	switch {
	case errors.Is(err, board.ErrInvalidPosition):
		return fmt.Sprintf("%s is off the board", coords)
	case errors.Is(err, board.ErrPositionOccupied):
		return fmt.Sprintf("%s is already occupied", coords)
	case errors.Is(err, game.ErrMustCapture):
		return fmt.Sprintf("%s captures nothing (strict rules)", coords)
	default:
		return err.Error()
	}
}

// Run starts the Bubble Tea program for a match.
func Run(match *game.Match, variant registry.Variant, store *storage.Store, theme config.ThemeConfig) error {
	p := tea.NewProgram(
		NewModel(match, variant, store, theme),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
