package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

func (m Model) contextSelectionHelpText() string {
	if m.contextSelectionRequired {
		return "up/down move  enter select  a add  e edit  q quit"
	}
	return "up/down move  enter select  a add  e edit  esc close  q quit"
}

func (m Model) openContextSelection(required bool) (tea.Model, tea.Cmd) {
	m.contextSelectionActive = true
	m.contextSelectionRequired = required
	m.contextSelectionError = ""
	if len(m.contexts) == 0 {
		m.contextSelectionIndex = 0
		m.status = "No contexts configured"
		m.syncTable()
		return m, nil
	}
	if current := m.currentContextIndex(); current >= 0 {
		m.contextSelectionIndex = current
	}
	m.syncTable()
	return m, nil
}

func (m Model) closeContextSelection() (tea.Model, tea.Cmd) {
	m.contextSelectionActive = false
	m.contextSelectionRequired = false
	m.contextSelectionError = ""
	m.syncTable()
	return m, nil
}

func (m Model) runContextCommand(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		return m.openContextSelection(false)
	}

	sub := strings.ToLower(strings.TrimSpace(args[0]))
	switch sub {
	case "add":
		if len(args) != 1 {
			m.status = "Usage: :context add"
			return m, nil
		}
		return m.openContextFormAdd(false)
	case "remove", "rm", "delete":
		if len(args) < 2 {
			m.status = "Usage: :context remove <name>"
			return m, nil
		}
		return m.removeContextByName(strings.Join(args[1:], " "))
	case "edit":
		if len(args) < 2 {
			m.status = "Usage: :context edit <name>"
			return m, nil
		}
		return m.openContextFormEditByName(strings.Join(args[1:], " "))
	default:
		return m.switchContext(strings.Join(args, " "))
	}
}

func (m Model) handleContextSelectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.openQuitConfirm()
	case "esc":
		if m.contextSelectionRequired {
			return m.openQuitConfirm()
		}
		return m.closeContextSelection()
	case "a":
		return m.openContextFormAdd(true)
	}

	count := len(m.contexts)
	if count == 0 {
		return m, nil
	}
	switch msg.String() {
	case "up", "k", "shift+tab":
		m.contextSelectionIndex = (m.selectedContextIndex() - 1 + count) % count
	case "down", "j", "tab":
		m.contextSelectionIndex = (m.selectedContextIndex() + 1) % count
	case "home", "g":
		m.contextSelectionIndex = 0
	case "end", "G":
		m.contextSelectionIndex = count - 1
	case "e":
		return m.openContextFormEdit(m.selectedContextIndex(), true)
	case "enter":
		return m.switchContextAt(m.selectedContextIndex())
	default:
		return m, nil
	}
	m.contextSelectionError = ""
	return m, nil
}

func (m Model) selectedContextIndex() int {
	return clampInt(m.contextSelectionIndex, 0, max(0, len(m.contexts)-1))
}

// renderContextSelectionModal lists contexts in aligned columns; the one
// the model is connected to is marked.
func (m Model) renderContextSelectionModal() string {
	lines := []string{
		modalTitleStyle.Render("Select Context"),
		modalLabelStyle.Render("Choose the backend to manage."),
		modalDividerStyle.Render(strings.Repeat("─", 24)),
	}
	if m.contextSelectionError != "" {
		lines = append(lines, modalErrorStyle.Render(m.contextSelectionError))
	}
	if len(m.contexts) == 0 {
		lines = append(lines,
			modalErrorStyle.Render("No contexts configured."),
			"",
			modalHelpStyle.Render("a add context  esc close  q quit"),
		)
		return m.renderModalCard(strings.Join(lines, "\n"), 84)
	}

	nameWidth := 0
	for i, ctx := range m.contexts {
		nameWidth = max(nameWidth, lipglossv2.Width(contextDisplayName(ctx, i)))
	}
	selected := m.selectedContextIndex()
	active := m.currentContextIndex()
	for i, ctx := range m.contexts {
		lines = append(lines, renderContextRow(ctx, i, nameWidth, i == selected, i == active))
	}
	lines = append(lines, "", modalHelpStyle.Render(m.contextSelectionHelpText()))
	return m.renderModalCard(strings.Join(lines, "\n"), 84)
}

func renderContextRow(ctx ContextOption, index, nameWidth int, selected, active bool) string {
	cursor, marker := "  ", "  "
	if selected {
		cursor = "> "
	}
	if active {
		marker = "● "
	}
	name := contextDisplayName(ctx, index)
	name += strings.Repeat(" ", max(0, nameWidth-lipglossv2.Width(name)))

	apiLabel := modalOptionMutedStyle.Render(strings.TrimSpace(ctx.API))
	if strings.TrimSpace(ctx.API) == "" {
		apiLabel = modalOptionErrorStyle.Render("(no backend configured)")
	}
	nodeLabel := ""
	if node := strings.TrimSpace(ctx.Node); node != "" {
		nodeLabel = modalOptionMutedStyle.Render("  node " + node)
	}

	style := modalOptionStyle
	if selected {
		style = modalOptionFocusStyle
	}
	return style.Render(cursor + marker + lipglossv2.JoinHorizontal(lipglossv2.Top, name, "  ", apiLabel, nodeLabel))
}
