package tui

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scottbass3/keel/internal/actions"
	"github.com/scottbass3/keel/internal/resource"
)

func (m Model) renderApp() string {
	sections := []string{
		m.renderTopSection(),
		m.renderMainSection(),
	}
	if m.debug {
		sections = append(sections, m.renderLogs())
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderTopSection() string {
	status := cmp.Or(strings.TrimSpace(m.status), "-")
	statusLine := statusStyle.Render(status)
	if m.needsSpinner() {
		statusLine = statusLoadingStyle.Render(m.spinner.View() + " " + status)
	}

	meta := []struct{ label, value string }{
		{"Context", m.context},
		{"Node", m.nodeID},
		{"Path", m.breadcrumb()},
	}
	cells := make([]string, 0, 2*len(meta))
	for _, field := range meta {
		cells = append(cells,
			metaLabelStyle.Render(field.label),
			metaValueStyle.Render(cmp.Or(strings.TrimSpace(field.value), "-")),
		)
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("Keel"), statusLine),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		m.renderTabs(),
	}
	if inputLine := m.renderModeInputLine(); inputLine != "" {
		lines = append(lines, modeInputStyle.Render(inputLine))
	}
	if m.hasNotice {
		lines = append(lines, renderNotice(m.notice))
	}
	lines = append(lines, shortcutHintStyle.Render(m.shortcutHintLine()))
	return topSectionStyle.Width(sectionPanelWidth(m.width)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(resource.Kinds))
	for _, kind := range resource.Kinds {
		style := tabStyle
		if kind == m.current {
			style = tabActiveStyle
		}
		tabs = append(tabs, style.Render(kind.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderNotice(notice actions.Notice) string {
	style := noticeSuccessStyle
	if notice.Level == actions.LevelFailure {
		style = noticeFailureStyle
	}
	return style.Render(cmp.Or(notice.Text, "Request failed"))
}

func (m Model) renderMainSection() string {
	label, body := m.current.String(), m.renderBody()
	if m.helpActive {
		label, body = "Help", m.renderHelpSectionBody()
	}
	titleLine := mainSectionTitleLine.
		Width(m.mainSectionContentWidth()).
		Align(lipgloss.Center).
		Render(mainSectionTitleStyle.Render(strings.ToUpper(label)))
	return mainSectionStyle.Width(sectionPanelWidth(m.width)).Render(titleLine + "\n" + body)
}

// sectionPanelWidth leaves room for the outer border unless the terminal is
// too narrow to spare it.
func sectionPanelWidth(width int) int {
	if width <= 0 {
		width = defaultRenderWidth
	}
	if width-2 < 24 {
		return max(1, width)
	}
	return width - 2
}

func (m Model) mainSectionContentWidth() int {
	return max(1, sectionPanelWidth(m.width)-mainSectionHChromeChars)
}

func (m Model) renderModeInputLine() string {
	if m.commandActive {
		return m.commandInput.View()
	}
	if m.filterActive {
		return m.filterInput.View()
	}
	if value := strings.TrimSpace(m.activeScreen().search()); value != "" {
		return m.filterInput.Prompt + value
	}
	return ""
}

func (m Model) renderBody() string {
	view := m.table.View()
	if len(m.table.Rows()) == 0 {
		return view + "\n" + emptyStyle.Render(m.emptyBodyMessage())
	}
	return view
}
