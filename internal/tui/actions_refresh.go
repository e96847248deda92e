package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/resource"
)

func (m Model) canLoad(kind resource.Kind) bool {
	if m.client == nil {
		return false
	}
	if kind.NodeScoped() && m.nodeID == "" {
		return false
	}
	_, ok := m.screens[kind]
	return ok
}

func (m Model) loadScreenCmd(kind resource.Kind) tea.Cmd {
	if !m.canLoad(kind) {
		return nil
	}
	return m.screens[kind].load(m.client, m.nodeID, m.timeout)
}

func (m Model) initialLoadCmds() []tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.loadScreenCmd(m.current); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.nodeHeadCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m Model) nodeHeadCmd() tea.Cmd {
	if m.client == nil || m.nodeID == "" {
		return nil
	}
	return loadNodeHeadCmd(m.client, m.nodeID, m.timeout)
}

// refreshScreen re-fetches kind. Every mutation goes through here; rows are
// never patched locally.
func (m *Model) refreshScreen(kind resource.Kind) tea.Cmd {
	if m.client == nil {
		m.status = "Backend not configured"
		return nil
	}
	if kind.NodeScoped() && m.nodeID == "" {
		m.status = "No node selected. Use :node <id>"
		return nil
	}
	m.status = loadingStatus(kind)
	m.startLoading()
	return tea.Batch(m.loadScreenCmd(kind), m.startSpinner())
}

func (m *Model) refreshCurrent() tea.Cmd {
	return m.refreshScreen(m.current)
}

func (m Model) switchScreen(kind resource.Kind) (tea.Model, tea.Cmd) {
	if _, ok := m.screens[kind]; !ok {
		m.status = fmt.Sprintf("Unknown screen: %s", kind)
		return m, nil
	}
	if m.filterActive {
		m.stopFilterEditing()
	}
	m.current = kind
	m.tableSetCursor(0)
	m.syncSearchInput()
	var cmd tea.Cmd
	if !m.activeScreen().loaded() {
		cmd = m.refreshScreen(kind)
	} else {
		m.status = loadedStatus(kind, m.activeScreen().count())
	}
	m.syncTable()
	return m, cmd
}

func (m Model) nextScreen(step int) (tea.Model, tea.Cmd) {
	index := 0
	for i, kind := range resource.Kinds {
		if kind == m.current {
			index = i
			break
		}
	}
	count := len(resource.Kinds)
	next := ((index+step)%count + count) % count
	return m.switchScreen(resource.Kinds[next])
}

// switchNode drops every loaded collection; they all belong to the old node.
func (m Model) switchNode(node string) (tea.Model, tea.Cmd) {
	node = strings.TrimSpace(node)
	if node == "" {
		m.status = "Usage: :node <id>"
		return m, nil
	}
	m.nodeID = node
	m.nodeName = ""
	m.screens = newScreens()
	m.loadingCount = 0
	m.clearFilter()
	m.tableSetCursor(0)
	cmds := []tea.Cmd{m.refreshCurrent()}
	if cmd := m.nodeHeadCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.syncSearchInput()
	m.syncTable()
	return m, tea.Batch(cmds...)
}

func loadingStatus(kind resource.Kind) string {
	return fmt.Sprintf("Loading %s...", kindNoun(kind))
}

func loadedStatus(kind resource.Kind, count int) string {
	return fmt.Sprintf("Loaded %d %s", count, kindNoun(kind))
}

func kindNoun(kind resource.Kind) string {
	if kind == resource.KindComposeLibrary {
		return "library projects"
	}
	return strings.ToLower(kind.String())
}
