package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/halvorsen/spreadsheet/packages/spreadsheet"
)

// replCommand starts an interactive grid view. It is a single-viewport
// reduction of gastown's multi-panel feed TUI: one focused region (the
// grid), a cursor instead of a tree selection, and an inline text input
// instead of a separate panel for editing.
func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "interactive grid view",
		Action: func(c *cli.Context) error {
			m := newGridModel(sheetFrom(c))
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}
}

const (
	gridVisibleRows = 10
	gridVisibleCols = 6
	cellWidth       = 12
)

var (
	cellStyle       = lipgloss.NewStyle().Padding(0, 1).Width(10)
	cursorStyle     = lipgloss.NewStyle().Padding(0, 1).Width(10).Reverse(true)
	gridErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusBarStyle  = lipgloss.NewStyle().Faint(true)
	editingBarStyle = lipgloss.NewStyle().Bold(true)
)

// gridModel is the bubbletea Model for the repl subcommand: a cursor over
// the sheet's grid, an optional in-progress edit buffer, and the last
// error the sheet rejected an edit with (if any). The grid itself scrolls
// vertically through a bubbles/viewport.Model (rows) and horizontally
// through a manually tracked colOffset, since bubbles/viewport only scrolls
// on one axis — together they keep the cursor visible however far it moves
// across a sheet whose configured bounds exceed the fixed on-screen window.
type gridModel struct {
	sheet     *spreadsheet.Sheet
	cursor    spreadsheet.Position
	editing   bool
	buffer    string
	lastErr   error
	rows      viewport.Model
	colOffset int
}

func newGridModel(sheet *spreadsheet.Sheet) *gridModel {
	m := &gridModel{sheet: sheet}
	m.rows = viewport.New(gridVisibleCols*cellWidth, gridVisibleRows)
	m.syncViewport()
	return m
}

func (m *gridModel) Init() tea.Cmd {
	return nil
}

func (m *gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.rows, cmd = m.rows.Update(msg)
		return m, cmd
	}

	var model tea.Model
	var cmd tea.Cmd
	if m.editing {
		model, cmd = m.handleEditingKey(keyMsg)
	} else {
		model, cmd = m.handleNavigationKey(keyMsg)
	}
	m.syncViewport()
	return model, cmd
}

// syncViewport keeps the cursor within the visible window: it scrolls
// m.rows vertically to the cursor's row and adjusts colOffset horizontally,
// and rebuilds the viewport's content over the printable region extended to
// the cursor's row, capped at the sheet's configured bounds.
func (m *gridModel) syncViewport() {
	bounds := m.sheet.Bounds()

	if m.cursor.Col < m.colOffset {
		m.colOffset = m.cursor.Col
	} else if m.cursor.Col >= m.colOffset+gridVisibleCols {
		m.colOffset = m.cursor.Col - gridVisibleCols + 1
	}

	// Rendering out to bounds.Rows unconditionally would mean walking the
	// full configured grid (up to spreadsheet.MaxRows) on every keystroke;
	// the printable region plus the cursor's own reach is the actual extent
	// worth scrolling through.
	rowExtent := m.sheet.GetPrintableSize().Rows
	if m.cursor.Row+1 > rowExtent {
		rowExtent = m.cursor.Row + 1
	}
	if rowExtent > bounds.Rows {
		rowExtent = bounds.Rows
	}

	var b strings.Builder
	for r := 0; r < rowExtent; r++ {
		for c := m.colOffset; c < m.colOffset+gridVisibleCols && c < bounds.Cols; c++ {
			pos := spreadsheet.Position{Row: r, Col: c}
			style := cellStyle
			if pos == m.cursor {
				style = cursorStyle
			}
			b.WriteString(style.Render(renderGridCell(m.sheet, pos)))
		}
		b.WriteString("\n")
	}
	m.rows.SetContent(b.String())

	if m.cursor.Row < m.rows.YOffset {
		m.rows.SetYOffset(m.cursor.Row)
	} else if m.cursor.Row >= m.rows.YOffset+gridVisibleRows {
		m.rows.SetYOffset(m.cursor.Row - gridVisibleRows + 1)
	}
}

func (m *gridModel) handleNavigationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bounds := m.sheet.Bounds()
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down":
		if m.cursor.Row+1 < bounds.Rows {
			m.cursor.Row++
		}
	case "left":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right":
		if m.cursor.Col+1 < bounds.Cols {
			m.cursor.Col++
		}
	case "e":
		m.editing = true
		if cell, _ := m.sheet.GetCell(m.cursor); cell != nil {
			m.buffer = cell.GetText()
		} else {
			m.buffer = ""
		}
	case "x":
		m.lastErr = m.sheet.ClearCell(m.cursor)
	}
	return m, nil
}

func (m *gridModel) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.buffer = ""
	case tea.KeyEnter:
		m.lastErr = m.sheet.SetCell(m.cursor, m.buffer)
		m.editing = false
		m.buffer = ""
	case tea.KeyBackspace:
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	case tea.KeyRunes:
		m.buffer += string(msg.Runes)
	}
	return m, nil
}

func (m *gridModel) View() string {
	var b strings.Builder
	b.WriteString(m.rows.View())
	b.WriteString("\n")
	if m.editing {
		b.WriteString(editingBarStyle.Render(fmt.Sprintf("%s: %s_", m.cursor, m.buffer)))
	} else {
		status := fmt.Sprintf("%s — arrows move, e edit, x clear, q quit", m.cursor)
		if m.lastErr != nil {
			status = gridErrorStyle.Render(m.lastErr.Error())
		}
		b.WriteString(statusBarStyle.Render(status))
	}
	b.WriteString("\n")
	return b.String()
}

func renderGridCell(sheet *spreadsheet.Sheet, pos spreadsheet.Position) string {
	cell, _ := sheet.GetCell(pos)
	if cell == nil {
		return ""
	}
	if ferr, ok := cell.GetValue().(*spreadsheet.FormulaError); ok {
		return gridErrorStyle.Render(ferr.Token())
	}
	return fmt.Sprintf("%v", cell.GetValue())
}
