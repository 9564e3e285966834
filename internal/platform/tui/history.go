package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reversi/internal/storage"
)

const historyLimit = 100

// HistoryKeyMap defines the key bindings for the match history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show moves"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back to list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses stored match results and their move logs.
type HistoryModel struct {
	store    *storage.Store
	keys     HistoryKeyMap
	table    table.Model
	matches  []storage.MatchRecord
	moves    []storage.MoveRecord
	selected *storage.MatchRecord
	loadErr  error
	quitting bool
}

// NewHistoryModel creates the browser, loading recent matches eagerly.
func NewHistoryModel(store *storage.Store) HistoryModel {
	m := HistoryModel{
		store: store,
		keys:  DefaultHistoryKeyMap(),
	}

	m.matches, m.loadErr = store.RecentMatches(historyLimit)

	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Variant", Width: 10},
		{Title: "Result", Width: 14},
		{Title: "Winner", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, 0, len(m.matches))
	for _, rec := range m.matches {
		winner := rec.Winner
		if winner == "" {
			winner = "draw"
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(rec.ID, 10),
			rec.Variant,
			fmt.Sprintf("%d - %d", rec.BlueScore, rec.RedScore),
			winner,
			strconv.Itoa(rec.MoveCount),
			rec.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return m
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.selected = nil
			m.moves = nil
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.selected == nil {
				m.selectCurrent()
			}
			return m, nil
		}
	}

	if m.selected == nil {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectCurrent loads the move log of the highlighted match.
func (m *HistoryModel) selectCurrent() {
	row := m.table.Cursor()
	if row < 0 || row >= len(m.matches) {
		return
	}
	rec := m.matches[row]
	moves, err := m.store.MatchMoves(rec.ID)
	if err != nil {
		m.loadErr = err
		return
	}
	m.selected = &rec
	m.moves = moves
}

// View renders the list, or the selected match's move log.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return flashStyle.Render(fmt.Sprintf("history unavailable: %v", m.loadErr))
	}

	if m.selected != nil {
		return m.movesView()
	}

	if len(m.matches) == 0 {
		return "No matches recorded yet.\n\nPlay 'reversi play' to record the first one.\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Match History"),
		m.table.View(),
		statusStyle.Render("enter: show moves | q: quit"),
	)
}

// movesView renders the selected match's move log.
func (m HistoryModel) movesView() string {
	var sb strings.Builder
	rec := m.selected

	fmt.Fprintf(&sb, "Match %d - %s (%dx%d), %d - %d\n\n",
		rec.ID, rec.Variant, rec.BoardSize, rec.BoardSize, rec.BlueScore, rec.RedScore)

	for _, mv := range m.moves {
		if mv.Pass {
			fmt.Fprintf(&sb, "%3d. %-4s pass\n", mv.Ply, mv.Piece)
			continue
		}
		fmt.Fprintf(&sb, "%3d. %-4s %-6s flips %d\n", mv.Ply, mv.Piece, mv.Coord, mv.Flips)
	}

	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render("esc: back to list | q: quit"))
	return titleStyle.Render("Move Log") + "\n" + sb.String()
}

// RunHistory starts the match history browser.
func RunHistory(store *storage.Store) error {
	p := tea.NewProgram(NewHistoryModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
