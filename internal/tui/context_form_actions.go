package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/contextstore"
)

func (m Model) openContextFormAdd(returnSelection bool) (tea.Model, tea.Cmd) {
	return m.openContextForm(contextFormModeAdd, -1, ContextOption{}, returnSelection)
}

func (m Model) openContextFormEditByName(name string) (tea.Model, tea.Cmd) {
	index, ok := m.resolveContextIndex(name)
	if !ok {
		m.status = fmt.Sprintf("Unknown context: %s", name)
		return m, nil
	}
	return m.openContextFormEdit(index, false)
}

func (m Model) openContextFormEdit(index int, returnSelection bool) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.contexts) {
		m.status = "Invalid context selection"
		return m, nil
	}
	ctx := m.contexts[index]
	ctx.Name = contextDisplayName(ctx, index)
	return m.openContextForm(contextFormModeEdit, index, ctx, returnSelection)
}

func (m Model) openContextForm(mode contextFormMode, index int, values ContextOption, returnSelection bool) (tea.Model, tea.Cmd) {
	m.contextFormActive = true
	m.contextFormMode = mode
	m.contextFormIndex = index
	m.contextFormReturnSelection = returnSelection
	m.contextFormError = ""
	m.contextFormFocus = contextFormFocusName
	m.fillContextForm(values)
	if returnSelection {
		m.contextSelectionActive = false
		m.contextSelectionRequired = false
	}
	cmd := m.syncContextFormFocus()
	m.syncTable()
	return m, cmd
}

// syncContextFormFocus leaves at most one input focused.
func (m *Model) syncContextFormFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.contextFormInputs {
		if contextFormSlot(i) == m.contextFormFocus {
			cmd = m.contextFormInputs[i].Focus()
			continue
		}
		m.contextFormInputs[i].Blur()
	}
	return cmd
}

func (m Model) cancelContextForm() (tea.Model, tea.Cmd) {
	returnSelection := m.contextFormReturnSelection
	m.deactivateContextForm()
	disconnected := m.client == nil && m.apiURL == ""
	switch {
	case returnSelection:
		m.contextSelectionActive = true
		m.contextSelectionRequired = disconnected
	case disconnected:
		m.status = "No context selected. Use :context add to configure one."
	}
	m.syncTable()
	return m, nil
}

func (m *Model) deactivateContextForm() {
	m.contextFormActive = false
	m.contextFormMode = contextFormModeAdd
	m.contextFormIndex = -1
	m.contextFormReturnSelection = false
	m.contextFormError = ""
	m.contextFormFocus = contextFormFocusName
	for i := range m.contextFormInputs {
		m.contextFormInputs[i].Blur()
	}
}

// submitContextForm validates and persists the form, then reconnects when
// the edited context is the active one or when nothing was connected.
func (m Model) submitContextForm() (tea.Model, tea.Cmd) {
	service := contextstore.NewService(m.configPath)
	existing := storedContexts(m.contexts)
	candidate := m.contextFormCandidate()

	var (
		updated     []contextstore.Context
		targetIndex = m.contextFormIndex
		err         error
	)
	if m.contextFormMode == contextFormModeEdit {
		updated, err = service.Edit(existing, targetIndex, candidate)
	} else {
		updated, targetIndex, err = service.Add(existing, candidate)
	}
	if err == nil {
		err = service.Save(updated)
		if err != nil {
			err = fmt.Errorf("failed to save contexts: %w", err)
		}
	}
	if err != nil {
		m.logger.Warn("context not saved", "name", candidate.Name, "err", err)
		m.contextFormError = err.Error()
		return m, nil
	}

	connected := m.client != nil || m.apiURL != ""
	activeIndex := m.currentContextIndex()
	mode := m.contextFormMode
	returnSelection := m.contextFormReturnSelection

	m.contexts = contextOptions(updated)
	m.contextSelectionIndex = clampInt(targetIndex, 0, max(0, len(m.contexts)-1))
	m.contextSelectionError = ""
	m.deactivateContextForm()
	if returnSelection {
		m.contextSelectionActive = true
		m.contextSelectionRequired = false
	}

	name := m.contexts[m.contextSelectionIndex].Name
	m.logger.Info("context saved", "name", name, "path", service.Path())
	reconnect := false
	if mode == contextFormModeEdit {
		m.status = fmt.Sprintf("Updated context %s", name)
		reconnect = activeIndex == targetIndex
	} else {
		m.status = fmt.Sprintf("Added context %s", name)
		reconnect = !connected
	}
	if reconnect {
		return m.switchContextAt(targetIndex)
	}
	m.syncTable()
	return m, nil
}
