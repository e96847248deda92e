package tui

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/resource"
)

type shortcutAction int

const (
	shortcutOpenHelp shortcutAction = iota
	shortcutQuit
	shortcutOpenCommand
	shortcutOpenSearch
	shortcutRefresh
	shortcutBack
	shortcutCopyKey
	shortcutOpenDetail
	shortcutNextScreen
	shortcutPrevScreen
	shortcutSortColumn
	shortcutCycleSort
	shortcutDelete
	shortcutPrune

	shortcutTypeCommand
	shortcutCommandAutocomplete
	shortcutCommandPrevSuggestion
	shortcutCommandNextSuggestion
	shortcutCommandCycleSuggestions
	shortcutCommandRun
	shortcutCommandCancel

	shortcutTypeSearch
	shortcutApplySearch
	shortcutClearSearch

	shortcutCloseHelp

	shortcutMoveUp
	shortcutMoveDown
	shortcutMovePageUp
	shortcutMovePageDown
	shortcutMoveHalfUp
	shortcutMoveHalfDown
	shortcutMoveTop
	shortcutMoveBottom
)

type shortcutDefinition struct {
	Keys        []string
	HelpKeys    string
	HintKeys    string
	Description string
	HintLabel   string
}

var shortcutDefinitions = map[shortcutAction]shortcutDefinition{
	shortcutOpenHelp: {
		Keys:        []string{"?", "f1"},
		HelpKeys:    "?/F1",
		HintKeys:    "?",
		Description: "Open help",
		HintLabel:   "help",
	},
	shortcutQuit: {
		Keys:        []string{"q", "ctrl+c"},
		HelpKeys:    "q/Ctrl+C",
		HintKeys:    "q",
		Description: "Quit",
		HintLabel:   "quit",
	},
	shortcutOpenCommand: {
		Keys:        []string{":"},
		HelpKeys:    ":",
		HintKeys:    ":",
		Description: "Open command input",
		HintLabel:   "command",
	},
	shortcutOpenSearch: {
		Keys:        []string{"/"},
		HelpKeys:    "/",
		HintKeys:    "/",
		Description: "Search current list",
		HintLabel:   "search",
	},
	shortcutRefresh: {
		Keys:        []string{"r"},
		HelpKeys:    "r",
		HintKeys:    "r",
		Description: "Refresh current list",
		HintLabel:   "refresh",
	},
	shortcutBack: {
		Keys:        []string{"esc"},
		HelpKeys:    "Esc",
		Description: "Clear search",
	},
	shortcutCopyKey: {
		Keys:        []string{"y"},
		HelpKeys:    "y",
		HintKeys:    "y",
		Description: "Copy selected row key",
		HintLabel:   "copy",
	},
	shortcutOpenDetail: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Copy selected project edit route",
		HintLabel:   "open",
	},
	shortcutNextScreen: {
		Keys:        []string{"tab"},
		HelpKeys:    "Tab",
		HintKeys:    "tab",
		Description: "Next screen",
		HintLabel:   "screen",
	},
	shortcutPrevScreen: {
		Keys:        []string{"shift+tab"},
		HelpKeys:    "Shift+Tab",
		Description: "Previous screen",
	},
	shortcutSortColumn: {
		Keys:        []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		HelpKeys:    "1-9",
		Description: "Sort by column (again to flip)",
	},
	shortcutCycleSort: {
		Keys:        []string{"s"},
		HelpKeys:    "s",
		HintKeys:    "s",
		Description: "Sort by next column",
		HintLabel:   "sort",
	},
	shortcutDelete: {
		Keys:        []string{"d"},
		HelpKeys:    "d",
		HintKeys:    "d",
		Description: "Delete selected row",
		HintLabel:   "delete",
	},
	shortcutPrune: {
		Keys:        []string{"P"},
		HelpKeys:    "P",
		HintKeys:    "P",
		Description: "Delete all unused",
		HintLabel:   "prune",
	},
	shortcutTypeCommand: {
		HelpKeys:    "Type",
		HintKeys:    "type",
		Description: "Set command text",
		HintLabel:   "command",
	},
	shortcutCommandAutocomplete: {
		Keys:        []string{"tab"},
		HelpKeys:    "Tab",
		HintKeys:    "tab",
		Description: "Autocomplete command",
		HintLabel:   "complete",
	},
	shortcutCommandPrevSuggestion: {
		Keys: []string{"up"},
	},
	shortcutCommandNextSuggestion: {
		Keys: []string{"down"},
	},
	shortcutCommandCycleSuggestions: {
		HelpKeys:    "Up/Down",
		HintKeys:    "up/down",
		Description: "Cycle command suggestions",
		HintLabel:   "cycle",
	},
	shortcutCommandRun: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Run command",
		HintLabel:   "run",
	},
	shortcutCommandCancel: {
		Keys:        []string{"esc"},
		HelpKeys:    "Esc",
		HintKeys:    "esc",
		Description: "Close command input",
		HintLabel:   "cancel",
	},
	shortcutTypeSearch: {
		HelpKeys:    "Type",
		HintKeys:    "type",
		Description: "Set search text",
		HintLabel:   "text",
	},
	shortcutApplySearch: {
		Keys:        []string{"enter"},
		HelpKeys:    "Enter",
		HintKeys:    "enter",
		Description: "Keep search and close input",
		HintLabel:   "apply",
	},
	shortcutClearSearch: {
		Keys:        []string{"esc"},
		HelpKeys:    "Esc",
		HintKeys:    "esc",
		Description: "Clear search",
		HintLabel:   "clear",
	},
	shortcutCloseHelp: {
		Keys:        []string{"esc", "?", "f1", "enter"},
		HelpKeys:    "Esc/?/F1/Enter",
		HintKeys:    "esc/?",
		Description: "Close help",
		HintLabel:   "close",
	},
	shortcutMoveUp: {
		Keys:        []string{"up", "k"},
		HelpKeys:    "Up/k",
		Description: "Move selection up",
	},
	shortcutMoveDown: {
		Keys:        []string{"down", "j"},
		HelpKeys:    "Down/j",
		Description: "Move selection down",
	},
	shortcutMovePageUp: {
		Keys:        []string{"pgup", "b"},
		HelpKeys:    "PgUp/b",
		Description: "Move one page up",
	},
	shortcutMovePageDown: {
		Keys:        []string{"pgdown", "f", " "},
		HelpKeys:    "PgDn/f/Space",
		Description: "Move one page down",
	},
	shortcutMoveHalfUp: {
		Keys:        []string{"ctrl+u", "u"},
		HelpKeys:    "Ctrl+U/u",
		Description: "Move half page up",
	},
	shortcutMoveHalfDown: {
		Keys:        []string{"ctrl+d"},
		HelpKeys:    "Ctrl+D",
		Description: "Move half page down",
	},
	shortcutMoveTop: {
		Keys:        []string{"home", "g"},
		HelpKeys:    "Home/g",
		Description: "Jump to top",
	},
	shortcutMoveBottom: {
		Keys:        []string{"end", "G"},
		HelpKeys:    "End/G",
		Description: "Jump to bottom",
	},
}

type shortcutPage int

const (
	shortcutPageHelp shortcutPage = iota
	shortcutPageCommandInput
	shortcutPageSearchInput
	shortcutPageLibrary
	shortcutPageImages
	shortcutPageNetworks
	shortcutPageVolumes
)

var listHelpActions = []shortcutAction{
	shortcutOpenHelp,
	shortcutOpenCommand,
	shortcutQuit,
	shortcutNextScreen,
	shortcutPrevScreen,
	shortcutMoveUp,
	shortcutMoveDown,
	shortcutMovePageUp,
	shortcutMovePageDown,
	shortcutMoveHalfUp,
	shortcutMoveHalfDown,
	shortcutMoveTop,
	shortcutMoveBottom,
	shortcutSortColumn,
	shortcutCycleSort,
	shortcutRefresh,
	shortcutCopyKey,
}

var listHintActions = []shortcutAction{
	shortcutOpenHelp,
	shortcutOpenCommand,
	shortcutNextScreen,
	shortcutCycleSort,
	shortcutRefresh,
	shortcutQuit,
}

func isShortcut(msg tea.KeyMsg, action shortcutAction) bool {
	return slices.Contains(shortcutDefinitions[action].Keys, msg.String())
}

func (m Model) shortcutPage(includeHelpOverlay bool) shortcutPage {
	if includeHelpOverlay && m.helpActive {
		return shortcutPageHelp
	}
	if m.commandActive {
		return shortcutPageCommandInput
	}
	if m.filterActive {
		return shortcutPageSearchInput
	}
	switch m.current {
	case resource.KindComposeLibrary:
		return shortcutPageLibrary
	case resource.KindNetworks:
		return shortcutPageNetworks
	case resource.KindVolumes:
		return shortcutPageVolumes
	default:
		return shortcutPageImages
	}
}

func (m Model) shortcutPageTitle(includeHelpOverlay bool) string {
	switch page := m.shortcutPage(includeHelpOverlay); page {
	case shortcutPageHelp:
		return "Help"
	case shortcutPageCommandInput:
		return "Command Input"
	case shortcutPageSearchInput:
		return "Search Input"
	default:
		return m.current.String()
	}
}

func (m Model) currentPageHelpEntries() []helpEntry {
	return helpEntriesForActions(m.helpActionsForPage(m.shortcutPage(false)))
}

func (m Model) shortcutHintLine() string {
	page := m.shortcutPage(true)
	return hintLineForActions(hintPrefixForPage(page), m.hintActionsForPage(page))
}

func hintPrefixForPage(page shortcutPage) string {
	switch page {
	case shortcutPageHelp:
		return "Help"
	case shortcutPageCommandInput:
		return "Command"
	case shortcutPageSearchInput:
		return "Search"
	default:
		return "Shortcuts"
	}
}

// resourceActions are the page specific actions of a list screen. The
// compose library has no search and no destructive actions.
func resourceActions(page shortcutPage) []shortcutAction {
	switch page {
	case shortcutPageLibrary:
		return []shortcutAction{shortcutOpenDetail}
	case shortcutPageImages, shortcutPageNetworks, shortcutPageVolumes:
		return []shortcutAction{shortcutOpenSearch, shortcutDelete, shortcutPrune, shortcutBack}
	default:
		return nil
	}
}

func (m Model) helpActionsForPage(page shortcutPage) []shortcutAction {
	switch page {
	case shortcutPageCommandInput:
		return []shortcutAction{
			shortcutTypeCommand,
			shortcutCommandAutocomplete,
			shortcutCommandCycleSuggestions,
			shortcutCommandRun,
			shortcutCommandCancel,
			shortcutQuit,
		}
	case shortcutPageSearchInput:
		return []shortcutAction{
			shortcutTypeSearch,
			shortcutApplySearch,
			shortcutClearSearch,
			shortcutOpenCommand,
		}
	case shortcutPageLibrary, shortcutPageImages, shortcutPageNetworks, shortcutPageVolumes:
		return append(slices.Clone(listHelpActions), resourceActions(page)...)
	default:
		return []shortcutAction{shortcutCloseHelp, shortcutQuit}
	}
}

func (m Model) hintActionsForPage(page shortcutPage) []shortcutAction {
	switch page {
	case shortcutPageHelp:
		return []shortcutAction{shortcutCloseHelp, shortcutQuit}
	case shortcutPageCommandInput:
		return []shortcutAction{
			shortcutCommandAutocomplete,
			shortcutCommandCycleSuggestions,
			shortcutCommandRun,
			shortcutCommandCancel,
		}
	case shortcutPageSearchInput:
		return []shortcutAction{
			shortcutTypeSearch,
			shortcutApplySearch,
			shortcutClearSearch,
			shortcutOpenCommand,
		}
	case shortcutPageLibrary, shortcutPageImages, shortcutPageNetworks, shortcutPageVolumes:
		hints := slices.DeleteFunc(resourceActions(page), func(action shortcutAction) bool {
			return action == shortcutBack
		})
		return append(append(slices.Clone(listHintActions), hints...), shortcutCopyKey)
	default:
		return []shortcutAction{shortcutOpenHelp, shortcutQuit}
	}
}

func helpEntriesForActions(actions []shortcutAction) []helpEntry {
	entries := make([]helpEntry, 0, len(actions))
	for _, action := range actions {
		def, ok := shortcutDefinitions[action]
		if !ok || def.HelpKeys == "" || def.Description == "" {
			continue
		}
		entries = append(entries, helpEntry{Keys: def.HelpKeys, Action: def.Description})
	}
	return entries
}

func hintLineForActions(prefix string, actions []shortcutAction) string {
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		def, ok := shortcutDefinitions[action]
		if !ok || def.HintLabel == "" {
			continue
		}
		keys := cmp.Or(def.HintKeys, def.HelpKeys)
		if keys != "" {
			parts = append(parts, keys+" "+def.HintLabel)
		}
	}
	if len(parts) == 0 {
		return prefix
	}
	if prefix == "" {
		return strings.Join(parts, "   ")
	}
	return prefix + ": " + strings.Join(parts, "   ")
}
