package tui

func (m *Model) syncTable() {
	width := m.width
	if width <= 0 {
		width = defaultRenderWidth
	}
	inputWidth := clampInt(width-10, 10, maxFilterWidth)
	m.filterInput.Width = inputWidth
	m.commandInput.Width = inputWidth

	s := m.activeScreen()
	tableWidth := max(10, m.mainSectionContentWidth())
	columns := makeColumns(s.columns(), s.sortState(), tableWidth)
	rows := toTableRows(s.rows(), len(columns))
	columnsChanged := !equalTableColumns(m.tableColumns, columns)
	if columnsChanged {
		// Clear rows first so bubbles/table never renders old rows against
		// the new column set.
		if len(m.table.Rows()) > 0 {
			m.table.SetRows(nil)
		}
		m.table.SetColumns(columns)
		m.tableColumns = append(m.tableColumns[:0], columns...)
	}
	if columnsChanged || !equalTableRows(m.table.Rows(), rows) {
		m.table.SetRows(rows)
	}

	tableHeight := m.tableHeight()
	if m.table.Height() != tableHeight {
		m.table.SetHeight(tableHeight)
	}
	if m.table.Width() != tableWidth {
		m.table.SetWidth(tableWidth)
	}
	// bubbles parks the cursor at -1 while the table is empty.
	switch cursor := m.table.Cursor(); {
	case len(rows) == 0:
		m.tableSetCursor(0)
	case cursor < 0:
		m.tableSetCursor(0)
	case cursor >= len(rows):
		m.tableSetCursor(len(rows) - 1)
	}
	m.reconcileTableViewportState()
}

func (m Model) tableHeight() int {
	if m.height <= 0 {
		return defaultTableHeight
	}
	topLines := lineCount(m.renderTopSection())
	sectionSeparators := 1
	debugLines := 0
	if m.debug {
		// Requests panel: borders, title and the visible rows.
		debugLines = maxVisibleLogs + 3
		sectionSeparators++
	}
	available := m.height - topLines - mainSectionTitleLines - mainSectionBorderLines - debugLines - tableChromeLines - sectionSeparators
	if available < minTableHeight {
		return minTableHeight
	}
	return available
}

// breadcrumb is the location line above the table.
func (m Model) breadcrumb() string {
	if !m.current.NodeScoped() {
		return m.current.String()
	}
	node := m.nodeName
	if node == "" {
		node = m.nodeID
	}
	if node == "" {
		node = "-"
	}
	return "Nodes > " + node + " > " + m.current.String()
}

func (m Model) selectedKey() (string, bool) {
	return m.activeScreen().keyAt(m.table.Cursor())
}
