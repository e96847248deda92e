package tui

import tea "github.com/charmbracelet/bubbletea"

func (m Model) handleContextFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.openQuitConfirm()
	case "esc":
		return m.cancelContextForm()
	case "tab", "down":
		return m.focusContextSlot(m.contextFormFocus.next(1))
	case "shift+tab", "up":
		return m.focusContextSlot(m.contextFormFocus.next(-1))
	case "left":
		if m.contextFormFocus == contextFormFocusSaveButton {
			return m.focusContextSlot(contextFormFocusCancelButton)
		}
	case "right":
		if m.contextFormFocus == contextFormFocusCancelButton {
			return m.focusContextSlot(contextFormFocusSaveButton)
		}
	case "enter":
		switch m.contextFormFocus {
		case contextFormFocusCancelButton:
			return m.cancelContextForm()
		case contextFormFocusSaveButton:
			return m.submitContextForm()
		default:
			return m.focusContextSlot(m.contextFormFocus.next(1))
		}
	}

	if !m.contextFormFocus.isField() {
		return m, nil
	}
	var cmd tea.Cmd
	slot := m.contextFormFocus
	m.contextFormInputs[slot], cmd = m.contextFormInputs[slot].Update(msg)
	return m, cmd
}

func (m Model) focusContextSlot(slot contextFormSlot) (tea.Model, tea.Cmd) {
	m.contextFormFocus = slot
	cmd := m.syncContextFormFocus()
	return m, cmd
}
