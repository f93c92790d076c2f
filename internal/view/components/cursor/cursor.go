package cursor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a cursor over a grid of columns x rows cells.
// A list is a grid with a single column, a row of buttons has a single row.
type Model struct {
	focused bool
	columns int
	rows    int
	x       int
	y       int
}

func New(columns int, rows int, focused bool) Model {
	m := Model{focused: focused}
	m.SetSize(columns, rows)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	if !m.focused {
		return m
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyLeft:
			m.x = clamp(m.x-1, m.columns)
		case tea.KeyRight:
			m.x = clamp(m.x+1, m.columns)
		case tea.KeyUp:
			m.y = clamp(m.y-1, m.rows)
		case tea.KeyDown:
			m.y = clamp(m.y+1, m.rows)
		}
	}
	return m
}

// Match reports whether the cursor is focused on the given cell index.
func (m *Model) Match(position int) bool {
	return m.focused && m.Position() == position
}

func (m *Model) MatchCell(x int, y int) bool {
	return m.focused && m.x == x && m.y == y
}

func (m *Model) Position() int {
	return m.y*m.columns + m.x
}

func (m *Model) SetPosition(position int) {
	if m.columns == 0 {
		return
	}
	m.x = clamp(position%m.columns, m.columns)
	m.y = clamp(position/m.columns, m.rows)
}

func (m *Model) X() int {
	return m.x
}

func (m *Model) Y() int {
	return m.y
}

// SetSize keeps the cursor inside the new bounds. An empty grid pins it to 0.
func (m *Model) SetSize(columns int, rows int) {
	m.columns = max(columns, 0)
	m.rows = max(rows, 0)
	m.x = clamp(m.x, m.columns)
	m.y = clamp(m.y, m.rows)
}

func (m *Model) Columns() int {
	return m.columns
}

func (m *Model) Rows() int {
	return m.rows
}

func (m *Model) Empty() bool {
	return m.columns == 0 || m.rows == 0
}

func (m *Model) Focused() bool {
	return m.focused
}

func (m *Model) SetFocus(focused bool) {
	m.focused = focused
}

func clamp(value int, size int) int {
	if value >= size {
		value = size - 1
	}
	if value < 0 {
		value = 0
	}
	return value
}
