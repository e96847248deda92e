package tui

import tea "github.com/charmbracelet/bubbletea"

type tableMouseRegion struct {
	x      int
	y      int
	width  int
	height int
}

// tableWindow is the slice of rows bubbles/table renders around a cursor:
// up to one table height on each side. tableYOffset scrolls inside it.
type tableWindow struct {
	start  int
	end    int
	height int
}

func (m Model) tableWindowAt(cursor int) tableWindow {
	w := tableWindow{height: max(1, m.table.Height())}
	if rows := len(m.table.Rows()); rows > 0 {
		w.start = clampInt(cursor-w.height, 0, cursor)
		w.end = clampInt(cursor+w.height, cursor, rows)
	}
	return w
}

func (w tableWindow) size() int {
	return w.end - w.start
}

// fit keeps a full page of the window on screen.
func (w tableWindow) fit(offset int) int {
	if w.size() == 0 {
		return 0
	}
	return clampInt(offset, 0, max(0, w.size()-w.height))
}

// settle mirrors what the table does after SetContent: an offset past the
// last rendered row snaps back to the last full page.
func (w tableWindow) settle(offset int) int {
	switch {
	case w.size() == 0:
		return 0
	case offset > w.size()-1:
		return max(0, w.size()-w.height)
	default:
		return max(0, offset)
	}
}

func (m *Model) settleTableOffset(offset int) {
	m.tableYOffset = m.tableWindowAt(m.table.Cursor()).settle(offset)
}

func (m *Model) tableSetCursor(cursor int) {
	m.table.SetCursor(cursor)
	m.settleTableOffset(m.tableYOffset)
}

func (m *Model) tableMoveUp(n int) {
	rows := len(m.table.Rows())
	if n <= 0 || rows == 0 {
		return
	}
	next := clampInt(m.table.Cursor()-n, 0, rows-1)
	w := m.tableWindowAt(next)
	offset := m.tableYOffset
	switch {
	case w.start == 0:
		offset = w.fit(clampInt(offset, 0, next))
	case w.start < w.height:
		offset = w.fit(clampInt(offset+n, 0, next))
	case offset >= 1:
		offset = clampInt(offset+n, 1, w.height)
	}
	m.table.MoveUp(n)
	m.settleTableOffset(offset)
}

func (m *Model) tableMoveDown(n int) {
	rows := len(m.table.Rows())
	if n <= 0 || rows == 0 {
		return
	}
	next := clampInt(m.table.Cursor()+n, 0, rows-1)
	w := m.tableWindowAt(next)
	offset := w.settle(m.tableYOffset)
	switch {
	case w.end == rows:
		offset = w.fit(clampInt(offset-n, 1, w.height))
	case next > w.size()/2:
		offset = w.fit(clampInt(offset-n, 1, next))
	case offset > 1:
	case next > offset+w.height-1:
		offset = clampInt(offset+1, 0, 1)
	}
	m.table.MoveDown(n)
	m.settleTableOffset(offset)
}

func (m *Model) tableGotoTop() {
	m.tableMoveUp(m.table.Cursor())
}

func (m *Model) tableGotoBottom() {
	m.tableMoveDown(len(m.table.Rows()))
}

func (m *Model) reconcileTableViewportState() {
	m.settleTableOffset(m.tableYOffset)
}

func (m Model) tableFirstVisibleRow() int {
	rows := len(m.table.Rows())
	if rows == 0 {
		return 0
	}
	cursor := clampInt(m.table.Cursor(), 0, rows-1)
	return clampInt(m.tableWindowAt(cursor).start+m.tableYOffset, 0, rows-1)
}

func (m Model) tableMouseRowsRegion() (tableMouseRegion, bool) {
	width := m.table.Width()
	height := m.table.Height()
	if width <= 0 || height <= 0 {
		return tableMouseRegion{}, false
	}
	topLines := lineCount(m.renderTopSection())
	// Layout from the top: top section, main border, title line, header
	// text, header border, rows.
	rowsY := topLines + 1 + mainSectionTitleLines + tableChromeLines
	// Left border plus one cell of padding.
	contentX := 2
	return tableMouseRegion{
		x:      contentX,
		y:      rowsY,
		width:  width,
		height: height,
	}, true
}

func (m Model) tableRowAtMouse(msg tea.MouseMsg) (int, bool) {
	region, ok := m.tableMouseRowsRegion()
	if !ok || len(m.table.Rows()) == 0 {
		return 0, false
	}
	if msg.X < region.x || msg.X >= region.x+region.width {
		return 0, false
	}
	if msg.Y < region.y || msg.Y >= region.y+region.height {
		return 0, false
	}
	row := m.tableFirstVisibleRow() + (msg.Y - region.y)
	if row < 0 || row >= len(m.table.Rows()) {
		return 0, false
	}
	return row, true
}

// tableColumnAtMouse maps a click on the header line to a column index.
func (m Model) tableColumnAtMouse(msg tea.MouseMsg) (int, bool) {
	region, ok := m.tableMouseRowsRegion()
	if !ok || len(m.tableColumns) == 0 {
		return 0, false
	}
	if msg.Y != region.y-tableChromeLines {
		return 0, false
	}
	x := region.x
	for i, column := range m.tableColumns {
		// Each cell carries one cell of padding on both sides.
		span := column.Width + 2
		if msg.X >= x && msg.X < x+span {
			return i, true
		}
		x += span
	}
	return 0, false
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.tableMoveUp(1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.tableMoveDown(1)
		return m, nil
	case tea.MouseButtonLeft:
		if index, ok := m.tableColumnAtMouse(msg); ok {
			m.sortByColumn(index)
			return m, nil
		}
		if row, ok := m.tableRowAtMouse(msg); ok {
			m.tableSetCursor(row)
		}
	}
	return m, nil
}
