package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/listview"
)

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "shift+tab":
		m.confirmFocus = 0
	case "right", "l", "tab":
		m.confirmFocus = 1
	case "esc", "n":
		m.clearConfirm()
		return m, nil
	case "y":
		return m.resolveConfirm(true)
	case "enter":
		return m.resolveConfirm(m.confirmFocus == 1)
	case "ctrl+c", "q":
		return m.resolveConfirm(true)
	}
	return m, nil
}

func (m Model) openQuitConfirm() (tea.Model, tea.Cmd) {
	m.confirmAction = confirmActionQuit
	m.confirmTitle = "Quit Keel?"
	if m.isLoading() || m.activeScreen().phase().Busy() {
		m.confirmMessage = "A request is still in progress."
	} else {
		m.confirmMessage = "Close the current session?"
	}
	m.confirmFocus = 0
	return m, nil
}

func (m Model) resolveConfirm(accept bool) (tea.Model, tea.Cmd) {
	action := m.confirmAction
	m.clearConfirm()
	if !accept {
		return m, nil
	}
	switch action {
	case confirmActionQuit:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *Model) clearConfirm() {
	m.confirmAction = confirmActionNone
	m.confirmTitle = ""
	m.confirmMessage = ""
	m.confirmFocus = 0
}

// isActionDialogActive follows the active screen's phase; there is no
// separate dialog flag to keep in sync.
func (m Model) isActionDialogActive() bool {
	return m.activeScreen().phase().DialogOpen()
}

// openDeleteConfirm is inert on rows that cannot be deleted.
func (m Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	s := m.activeScreen()
	row := m.table.Cursor()
	if !s.canDeleteAt(row) {
		return m, nil
	}
	if err := s.requestDeleteAt(row); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.confirmFocus = 0
	return m, nil
}

func (m Model) openPruneConfirm() (tea.Model, tea.Cmd) {
	s := m.activeScreen()
	if !s.canPrune() {
		m.status = fmt.Sprintf("Prune is not available for %s", kindNoun(m.current))
		return m, nil
	}
	if m.client == nil || (m.current.NodeScoped() && m.nodeID == "") {
		m.status = "Select a backend and node before pruning"
		return m, nil
	}
	if err := s.requestPrune(); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.confirmFocus = 0
	return m, nil
}

func (m Model) handleActionDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.activeScreen()
	phase := s.phase()
	if phase.Busy() || phase == listview.PhaseClosing {
		return m, nil
	}
	switch msg.String() {
	case "left", "h", "shift+tab":
		m.confirmFocus = 0
	case "right", "l", "tab":
		m.confirmFocus = 1
	case "esc", "n", "q":
		s.cancel()
		m.confirmFocus = 0
	case "y":
		return m.runPendingAction()
	case "enter":
		if m.confirmFocus == 1 {
			return m.runPendingAction()
		}
		s.cancel()
		m.confirmFocus = 0
	case "ctrl+c":
		s.cancel()
		return m.openQuitConfirm()
	}
	return m, nil
}

func (m Model) runPendingAction() (tea.Model, tea.Cmd) {
	cmd, err := m.activeScreen().confirm(m.dispatcher(), m.timeout)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	return m, tea.Batch(cmd, m.startSpinner())
}
