package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterActive {
		switch {
		case isShortcut(msg, shortcutClearSearch):
			m.clearFilter()
			m.tableSetCursor(0)
			m.syncTable()
			return m, nil
		case isShortcut(msg, shortcutOpenCommand):
			return m.enterCommandMode()
		case isShortcut(msg, shortcutApplySearch):
			m.stopFilterEditing()
			m.syncTable()
			return m, nil
		}
		before := m.filterInput.Value()
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		if value := m.filterInput.Value(); value != before {
			m.activeScreen().setSearch(value)
			m.tableSetCursor(0)
			m.syncTable()
		}
		return m, cmd
	}

	switch {
	case isShortcut(msg, shortcutQuit):
		return m.openQuitConfirm()
	case isShortcut(msg, shortcutBack):
		if m.activeScreen().search() != "" {
			m.clearFilter()
			m.tableSetCursor(0)
			m.syncTable()
		}
		return m, nil
	case isShortcut(msg, shortcutCopyKey):
		m.copySelectedKey()
		return m, nil
	case isShortcut(msg, shortcutOpenSearch):
		cmd := m.openSearch()
		return m, cmd
	case isShortcut(msg, shortcutOpenCommand):
		return m.enterCommandMode()
	case isShortcut(msg, shortcutRefresh):
		cmd := m.refreshCurrent()
		return m, cmd
	case isShortcut(msg, shortcutOpenDetail):
		cmd := m.handleEnter()
		return m, cmd
	case isShortcut(msg, shortcutNextScreen):
		return m.nextScreen(1)
	case isShortcut(msg, shortcutPrevScreen):
		return m.nextScreen(-1)
	case isShortcut(msg, shortcutCycleSort):
		m.activeScreen().cycleSort()
		m.syncTable()
		return m, nil
	case isShortcut(msg, shortcutSortColumn):
		m.sortByColumn(int(msg.Runes[0] - '1'))
		return m, nil
	case isShortcut(msg, shortcutDelete):
		return m.openDeleteConfirm()
	case isShortcut(msg, shortcutPrune):
		return m.openPruneConfirm()
	}
	if m.handleTableNavKey(msg) {
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// sortByColumn toggles the sort on the visible column at index.
func (m *Model) sortByColumn(index int) {
	columns := m.activeScreen().columns()
	if index < 0 || index >= len(columns) {
		return
	}
	if !m.activeScreen().toggleSort(columns[index].key) {
		m.status = fmt.Sprintf("Cannot sort by %s", columns[index].title)
		return
	}
	m.syncTable()
}

func (m *Model) handleTableNavKey(msg tea.KeyMsg) bool {
	rowCount := len(m.table.Rows())
	if rowCount == 0 {
		return false
	}
	step := max(1, m.table.Height())

	switch {
	case isShortcut(msg, shortcutMoveUp):
		m.tableMoveUp(1)
	case isShortcut(msg, shortcutMoveDown):
		m.tableMoveDown(1)
	case isShortcut(msg, shortcutMovePageUp):
		m.tableMoveUp(step)
	case isShortcut(msg, shortcutMovePageDown):
		m.tableMoveDown(step)
	case isShortcut(msg, shortcutMoveHalfUp):
		m.tableMoveUp(max(1, step/2))
	case isShortcut(msg, shortcutMoveHalfDown):
		m.tableMoveDown(max(1, step/2))
	case isShortcut(msg, shortcutMoveTop):
		m.tableGotoTop()
	case isShortcut(msg, shortcutMoveBottom):
		m.tableGotoBottom()
	default:
		return false
	}
	return true
}
