package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/contextstore"
)

// resolveContextIndex accepts a context name, its API URL or the
// "context-N" label shown for unnamed entries.
func (m Model) resolveContextIndex(name string) (int, bool) {
	if index, ok := contextstore.ResolveByName(storedContexts(m.contexts), name); ok {
		return index, true
	}
	needle := strings.TrimSpace(name)
	for i, ctx := range m.contexts {
		if needle != "" && strings.EqualFold(contextDisplayName(ctx, i), needle) {
			return i, true
		}
	}
	return 0, false
}

// currentContextIndex is the context the model is connected to, or -1.
func (m Model) currentContextIndex() int {
	stored := storedContexts(m.contexts)
	for _, key := range []string{m.context, m.apiURL} {
		if index, ok := contextstore.ResolveByName(stored, key); ok {
			return index
		}
	}
	return -1
}

func (m Model) removeContextByName(name string) (tea.Model, tea.Cmd) {
	service := contextstore.NewService(m.configPath)
	updated, removed, index, err := service.RemoveByName(storedContexts(m.contexts), name)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	current := m.currentContextIndex()
	if err := service.Save(updated); err != nil {
		m.status = fmt.Sprintf("failed to save contexts: %v", err)
		return m, nil
	}
	label := contextDisplayName(ContextOption(removed), index)
	m.contexts = contextOptions(updated)
	m.contextSelectionError = ""

	switch {
	case len(m.contexts) == 0:
		m.clearBackendContext()
		m.status = fmt.Sprintf("Removed context %s. No contexts remain.", label)
		m.syncTable()
		return m, nil
	case current == index:
		// The active backend went away; reconnect to its neighbour.
		next := min(index, len(m.contexts)-1)
		m.contextSelectionIndex = next
		return m.switchContextAt(next)
	case current > index:
		current--
	}
	if current >= 0 {
		m.contextSelectionIndex = current
	}
	m.contextSelectionIndex = clampInt(m.contextSelectionIndex, 0, len(m.contexts)-1)
	m.status = fmt.Sprintf("Removed context %s", label)
	m.syncTable()
	return m, nil
}

func (m *Model) clearBackendContext() {
	m.context = ""
	m.apiURL = ""
	m.client = nil
	m.nodeID = ""
	m.nodeName = ""
	m.screens = newScreens()
	m.loadingCount = 0
	m.contextSelectionState = contextSelectionState{}

	m.clearFilter()
	m.syncSearchInput()
}

func storedContexts(options []ContextOption) []contextstore.Context {
	out := make([]contextstore.Context, 0, len(options))
	for _, option := range options {
		out = append(out, contextstore.Context(option))
	}
	return out
}

func contextOptions(stored []contextstore.Context) []ContextOption {
	if len(stored) == 0 {
		return nil
	}
	out := make([]ContextOption, 0, len(stored))
	for _, ctx := range stored {
		out = append(out, ContextOption(ctx))
	}
	return out
}
