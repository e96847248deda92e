package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/listview"
	"github.com/scottbass3/keel/internal/resource"
)

func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.openQuitConfirm()
	case "esc":
		return m.exitCommandMode()
	case "tab":
		if len(m.commandMatches) > 0 {
			m.commandInput.SetValue(m.commandMatches[m.commandIndex])
			m.commandInput.CursorEnd()
			return m, nil
		}
	case "up":
		if len(m.commandMatches) > 0 {
			m.commandIndex--
			if m.commandIndex < 0 {
				m.commandIndex = len(m.commandMatches) - 1
			}
		}
	case "down":
		if len(m.commandMatches) > 0 {
			m.commandIndex = (m.commandIndex + 1) % len(m.commandMatches)
		}
	case "enter":
		return m.runCommand()
	}

	before := m.commandInput.Value()
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	if m.commandInput.Value() != before {
		m.commandIndex = 0
		m.commandMatches = matchCommands(commandToken(m.commandInput.Value()))
	}
	return m, cmd
}

func (m Model) enterCommandMode() (tea.Model, tea.Cmd) {
	m.commandPrevFilterActive = m.filterActive
	if m.filterActive {
		m.stopFilterEditing()
	}
	m.commandActive = true
	m.commandError = ""
	m.commandInput.SetValue("")
	cmd := m.commandInput.Focus()
	m.commandInput.CursorEnd()
	m.commandMatches = matchCommands("")
	m.commandIndex = 0
	m.syncTable()
	return m, cmd
}

func (m Model) exitCommandMode() (tea.Model, tea.Cmd) {
	m.resetCommandInput()
	var cmd tea.Cmd
	if m.commandPrevFilterActive {
		m.filterActive = true
		cmd = m.filterInput.Focus()
		m.filterInput.CursorEnd()
	}
	m.commandPrevFilterActive = false
	m.syncTable()
	return m, cmd
}

func (m *Model) resetCommandInput() {
	m.commandActive = false
	m.commandInput.Blur()
	m.commandInput.SetValue("")
	m.commandMatches = nil
	m.commandIndex = 0
	m.commandError = ""
}

func (m Model) runCommand() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.commandInput.Value())
	if input == "" {
		return m.exitCommandMode()
	}

	m.resetCommandInput()
	m.commandPrevFilterActive = false
	m.syncTable()

	cmdName, args := parseCommand(input)
	command, ok := resolveCommand(cmdName)
	if !ok {
		m.status = fmt.Sprintf("Unknown command: %s", cmdName)
		return m, nil
	}
	return command.Run(m, args)
}

// runLibraryCommand shows the library, or with an argument copies the
// create route for that project type.
func (m Model) runLibraryCommand(args []string) (tea.Model, tea.Cmd) {
	model, cmd := m.switchScreen(resource.KindComposeLibrary)
	if len(args) == 0 {
		return model, cmd
	}
	next := model.(Model)
	switch strings.ToLower(args[0]) {
	case "new", "filesystem", "fs":
		next.copyCreateRoute(api.LibraryTypeFilesystem)
	case "github", "gh":
		next.copyCreateRoute(api.LibraryTypeGitHub)
	default:
		next.status = "Usage: :library [new|github]"
	}
	return next, cmd
}

func (m Model) runSortCommand(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.status = "Usage: :sort <column> [asc|desc]"
		return m, nil
	}
	explicit := false
	order := listview.Ascending
	if len(args) > 1 {
		if parsed, ok := listview.ParseOrder(args[len(args)-1]); ok {
			order = parsed
			explicit = true
			args = args[:len(args)-1]
		}
	}

	s := m.activeScreen()
	column, ok := findColumn(s.columns(), strings.Join(args, " "))
	if !ok {
		m.status = fmt.Sprintf("Unknown column: %s", strings.Join(args, " "))
		return m, nil
	}
	if explicit {
		s.setSort(column.key, order)
	} else {
		s.toggleSort(column.key)
	}
	m.status = fmt.Sprintf("Sorted by %s (%s)", column.title, s.sortState().Order)
	m.syncTable()
	return m, nil
}

// findColumn matches a 1-based index, a column key or a column title.
func findColumn(columns []screenColumn, name string) (screenColumn, bool) {
	name = strings.TrimSpace(name)
	if index, err := strconv.Atoi(name); err == nil {
		if index >= 1 && index <= len(columns) {
			return columns[index-1], true
		}
		return screenColumn{}, false
	}
	for _, column := range columns {
		if strings.EqualFold(column.key, name) || strings.EqualFold(column.title, name) {
			return column, true
		}
	}
	return screenColumn{}, false
}

func (m Model) switchContext(name string) (tea.Model, tea.Cmd) {
	index, ok := m.resolveContextIndex(name)
	if !ok {
		m.commandError = ""
		m.status = fmt.Sprintf("Unknown context: %s", name)
		return m, nil
	}
	return m.switchContextAt(index)
}

// switchContextAt points the model at another backend. Every collection is
// dropped and the client is rebuilt in the background.
func (m Model) switchContextAt(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.contexts) {
		m.commandError = ""
		m.status = "Invalid context selection"
		return m, nil
	}
	ctx := m.contexts[index]
	if strings.TrimSpace(ctx.API) == "" {
		m.contextSelectionError = fmt.Sprintf("Context %s has no backend configured", contextDisplayName(ctx, index))
		m.commandError = ""
		m.status = m.contextSelectionError
		return m, nil
	}

	m.resetCommandInput()
	m.commandPrevFilterActive = false
	m.contextSelectionActive = false
	m.contextSelectionRequired = false
	m.contextSelectionIndex = index
	m.contextSelectionError = ""

	m.context = contextDisplayName(ctx, index)
	m.apiURL = ctx.API
	m.nodeID = strings.TrimSpace(ctx.Node)
	m.nodeName = ""
	m.client = nil
	m.screens = newScreens()
	m.loadingCount = 0
	m.clearFilter()
	m.tableSetCursor(0)
	m.syncSearchInput()
	m.status = fmt.Sprintf("Backend: %s", m.apiURL)
	m.syncTable()
	return m, initClientCmd(m.apiURL, m.timeout, m.requestLog)
}

func parseCommand(input string) (string, []string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func commandToken(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func contextNames(contexts []ContextOption) []string {
	if len(contexts) == 0 {
		return nil
	}
	names := make([]string, 0, len(contexts))
	for _, ctx := range contexts {
		if ctx.Name != "" {
			names = append(names, ctx.Name)
		}
	}
	return names
}

func contextDisplayName(ctx ContextOption, index int) string {
	if name := strings.TrimSpace(ctx.Name); name != "" {
		return name
	}
	if apiURL := strings.TrimSpace(ctx.API); apiURL != "" {
		return apiURL
	}
	return fmt.Sprintf("context-%d", index+1)
}
