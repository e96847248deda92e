package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleEnter opens the selected row's detail page. Only library projects
// have one; the route is shown and copied since the TUI cannot navigate to it.
func (m *Model) handleEnter() tea.Cmd {
	route, ok := m.activeScreen().routeAt(m.table.Cursor())
	if !ok {
		return nil
	}
	m.copyText(route)
	return nil
}

func (m *Model) clearFilter() {
	m.filterInput.SetValue("")
	m.activeScreen().setSearch("")
	m.stopFilterEditing()
}

func (m *Model) stopFilterEditing() {
	m.filterInput.Blur()
	m.filterActive = false
}

// syncSearchInput mirrors the active screen's search term into the input.
func (m *Model) syncSearchInput() {
	s := m.activeScreen()
	m.filterInput.Placeholder = s.searchPlaceholder()
	m.filterInput.SetValue(s.search())
	m.filterInput.CursorEnd()
}

func (m *Model) openSearch() tea.Cmd {
	if !m.activeScreen().searchable() {
		m.status = fmt.Sprintf("Search is not available for %s", kindNoun(m.current))
		return nil
	}
	m.filterActive = true
	cmd := m.filterInput.Focus()
	m.filterInput.CursorEnd()
	m.syncTable()
	return cmd
}

func (m *Model) startLoading() {
	m.loadingCount++
}

func (m *Model) stopLoading() {
	if m.loadingCount <= 0 {
		return
	}
	m.loadingCount--
}

func (m Model) isLoading() bool {
	return m.loadingCount > 0
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m Model) needsSpinner() bool {
	return m.isLoading() || m.activeScreen().phase().Busy()
}

func (m Model) emptyBodyMessage() string {
	if m.isLoading() {
		return "Loading, waiting for server response..."
	}
	if m.client == nil {
		return "No backend configured. Use :context to pick one."
	}
	if m.current.NodeScoped() && m.nodeID == "" {
		return "No node selected. Use :node <id> to pick one."
	}

	s := m.activeScreen()
	if !s.loaded() {
		return "Nothing loaded yet. Press r to refresh."
	}
	if s.noData() {
		return "No data"
	}
	if search := strings.TrimSpace(s.search()); search != "" {
		return fmt.Sprintf("No results for search %q", search)
	}
	return fmt.Sprintf("No %s to display.", kindNoun(m.current))
}
