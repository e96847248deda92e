package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/listview"
)

func (m Model) updateKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpActive {
		return m.handleHelpKey(msg)
	}
	if isHelpShortcut(msg) &&
		!m.commandActive &&
		!m.filterActive &&
		!m.isConfirmModalActive() &&
		!m.isActionDialogActive() &&
		!m.isContextFormActive() &&
		!m.isContextSelectionActive() {
		return m.openHelp()
	}
	if m.isConfirmModalActive() {
		return m.handleConfirmKey(msg)
	}
	if m.isActionDialogActive() {
		return m.handleActionDialogKey(msg)
	}
	if m.isContextFormActive() {
		return m.handleContextFormKey(msg)
	}
	if m.isContextSelectionActive() {
		return m.handleContextSelectionKey(msg)
	}
	if m.commandActive {
		return m.handleCommandKey(msg)
	}
	return m.handleKey(msg)
}

func (m Model) updateMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.helpActive ||
		m.commandActive ||
		m.isConfirmModalActive() ||
		m.isActionDialogActive() ||
		m.isContextFormActive() ||
		m.isContextSelectionActive() {
		return m, nil
	}
	return m.handleMouse(msg)
}

func (m Model) updateWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.syncTable()
	return m, nil
}

func (m Model) updateSpinnerMsg(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.needsSpinner() {
		m.spinning = false
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m Model) updateCollectionMsg(msg collectionMsg) (tea.Model, tea.Cmd) {
	s, ok := m.screens[msg.kind]
	if !ok {
		return m, nil
	}
	if msg.kind.NodeScoped() && msg.node != m.nodeID {
		// Fetched for a node we already left.
		return m, nil
	}
	m.stopLoading()
	if err := s.apply(msg); err != nil {
		m.logger.Warn("load failed", "resource", msg.kind.Slug(), "node", msg.node, "err", err)
		m.status = fmt.Sprintf("Error loading %s: %v", kindNoun(msg.kind), err)
		m.syncTable()
		return m, nil
	}
	m.logger.Debug("loaded", "resource", msg.kind.Slug(), "node", msg.node, "count", s.count(), "totalRows", msg.total)
	if msg.kind == m.current {
		m.status = loadedStatus(msg.kind, s.count())
	}
	m.syncTable()
	return m, nil
}

func (m Model) updateActionDoneMsg(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	s, ok := m.screens[msg.kind]
	if !ok {
		return m, nil
	}
	outcome := msg.outcome
	s.finish(outcome.OK())

	cmds := []tea.Cmd{m.showNotice(outcome.Notice)}
	if outcome.Refresh {
		cmds = append(cmds, m.refreshScreen(msg.kind))
	}
	if s.phase() == listview.PhaseClosing {
		if outcome.CloseDelay > 0 {
			cmds = append(cmds, closeDialogCmd(msg.kind, outcome.CloseDelay))
		} else {
			s.close()
			m.confirmFocus = 0
		}
	} else {
		m.confirmFocus = 0
	}
	m.syncTable()
	return m, tea.Batch(cmds...)
}

func (m Model) updateCloseDialogMsg(msg closeDialogMsg) (tea.Model, tea.Cmd) {
	if s, ok := m.screens[msg.kind]; ok {
		s.close()
	}
	m.confirmFocus = 0
	m.syncTable()
	return m, nil
}

func (m Model) updateNoticeExpiredMsg(msg noticeExpiredMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.noticeID {
		return m, nil
	}
	m.hasNotice = false
	m.syncTable()
	return m, nil
}

func (m Model) updateNodeHeadMsg(msg nodeHeadMsg) (tea.Model, tea.Cmd) {
	if msg.node != m.nodeID {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("node lookup failed", "node", msg.node, "err", msg.err)
		return m, nil
	}
	m.nodeName = msg.head.Name
	m.syncTable()
	return m, nil
}

func (m Model) updateLogMsg(msg logMsg) (tea.Model, tea.Cmd) {
	m.appendLog(string(msg))
	m.syncTable()
	if m.logCh != nil {
		return m, listenLogs(m.logCh)
	}
	return m, nil
}

func (m Model) updateInitClientMsg(msg initClientMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = fmt.Sprintf("Error initializing backend: %v", msg.err)
		return m, nil
	}
	m.client = msg.client
	cmds := []tea.Cmd{m.refreshCurrent()}
	if cmd := m.nodeHeadCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.syncTable()
	return m, tea.Batch(cmds...)
}
