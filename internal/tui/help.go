package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type helpSection struct {
	title   string
	entries []helpEntry
	// keyWidth is the minimum width of the key column.
	keyWidth int
	empty    string
}

func (m Model) renderHelpSectionBody() string {
	sections := []helpSection{
		{title: "Shortcuts", entries: m.currentPageHelpEntries(), keyWidth: 8, empty: "No shortcuts available."},
		{title: "Columns", entries: m.columnHelpEntries(), keyWidth: 8, empty: "No columns on this page."},
		{title: "Commands", entries: commandHelpEntries(availableCommands()), keyWidth: 13, empty: "No commands available."},
	}

	lines := []string{helpFooterStyle.Render(fmt.Sprintf("Current page: %s", m.helpPageTitle()))}
	for _, section := range sections {
		lines = append(lines, "", helpHeadingStyle.Render(section.title))
		lines = append(lines, section.render()...)
	}
	lines = append(lines, "", helpFooterStyle.Render("Press esc, ?, f1, or enter to close help."))
	return strings.Join(lines, "\n")
}

func (s helpSection) render() []string {
	if len(s.entries) == 0 {
		return []string{helpFooterStyle.Render(s.empty)}
	}
	width := s.keyWidth
	for _, entry := range s.entries {
		width = max(width, len(entry.Keys))
	}
	lines := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		lines = append(lines, helpItemStyle.Render(fmt.Sprintf("%-*s  %s", width, entry.Keys, entry.Action)))
	}
	return lines
}

// columnHelpEntries maps each digit key to the column it sorts.
func (m Model) columnHelpEntries() []helpEntry {
	columns := m.activeScreen().columns()
	active := m.activeScreen().sortState()
	entries := make([]helpEntry, 0, len(columns))
	for i, column := range columns {
		if i >= 9 {
			break
		}
		action := column.title
		if column.key == active.Key {
			action += fmt.Sprintf(" (%s)", active.Order)
		}
		entries = append(entries, helpEntry{Keys: fmt.Sprint(i + 1), Action: action})
	}
	return entries
}

func commandHelpEntries(commands []commandHelp) []helpEntry {
	entries := make([]helpEntry, 0, len(commands))
	for _, command := range commands {
		entries = append(entries, helpEntry{Keys: ":" + command.Command, Action: command.Usage})
	}
	return entries
}

func (m Model) helpPageTitle() string {
	return m.shortcutPageTitle(false)
}

func (m Model) openHelp() (tea.Model, tea.Cmd) {
	m.helpActive = true
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isShortcut(msg, shortcutCloseHelp):
		m.helpActive = false
		return m, nil
	case isShortcut(msg, shortcutQuit):
		m.helpActive = false
		return m.openQuitConfirm()
	default:
		return m, nil
	}
}

func isHelpShortcut(msg tea.KeyMsg) bool {
	return isShortcut(msg, shortcutOpenHelp)
}
