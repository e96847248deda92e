package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/resource"
)

type commandDescriptor struct {
	Name    string
	Aliases []string
	Help    []commandHelp
	Run     func(Model, []string) (tea.Model, tea.Cmd)
}

func commandRegistry() []commandDescriptor {
	return []commandDescriptor{
		{
			Name: "help",
			Help: []commandHelp{
				{Command: "help", Usage: "Open the help page"},
			},
			Run: runHelpCommand,
		},
		{
			Name:    "library",
			Aliases: []string{"lib", "compose"},
			Help: []commandHelp{
				{Command: "library", Usage: "Show the compose library"},
				{Command: "library new", Usage: "Copy the route for a new file system project"},
				{Command: "library github", Usage: "Copy the route for a new GitHub project"},
			},
			Run: runLibraryCommand,
		},
		{
			Name:    "images",
			Aliases: []string{"img"},
			Help: []commandHelp{
				{Command: "images", Usage: "Show images of the current node"},
			},
			Run: screenCommand(resource.KindImages),
		},
		{
			Name:    "networks",
			Aliases: []string{"net"},
			Help: []commandHelp{
				{Command: "networks", Usage: "Show networks of the current node"},
			},
			Run: screenCommand(resource.KindNetworks),
		},
		{
			Name:    "volumes",
			Aliases: []string{"vol"},
			Help: []commandHelp{
				{Command: "volumes", Usage: "Show volumes of the current node"},
			},
			Run: screenCommand(resource.KindVolumes),
		},
		{
			Name: "node",
			Help: []commandHelp{
				{Command: "node <id>", Usage: "Switch to another node"},
			},
			Run: runNodeCommand,
		},
		{
			Name:    "context",
			Aliases: []string{"ctx"},
			Help: []commandHelp{
				{Command: "context", Usage: "Open context selection"},
				{Command: "context add", Usage: "Create a new context"},
				{Command: "context edit <name>", Usage: "Edit an existing context"},
				{Command: "context remove <name>", Usage: "Remove a context"},
				{Command: "context <name>", Usage: "Switch to context by name"},
			},
			Run: runContextCommand,
		},
		{
			Name: "sort",
			Help: []commandHelp{
				{Command: "sort <column> [asc|desc]", Usage: "Sort the current list"},
			},
			Run: runSortCommand,
		},
		{
			Name: "prune",
			Help: []commandHelp{
				{Command: "prune", Usage: "Delete all unused items of the current list"},
			},
			Run: runPruneCommand,
		},
		{
			Name:    "refresh",
			Aliases: []string{"reload"},
			Help: []commandHelp{
				{Command: "refresh", Usage: "Reload the current list"},
			},
			Run: runRefreshCommand,
		},
		{
			Name:    "quit",
			Aliases: []string{"q"},
			Help: []commandHelp{
				{Command: "quit", Usage: "Quit keel"},
			},
			Run: runQuitCommand,
		},
	}
}

func availableCommands() []commandHelp {
	registry := commandRegistry()
	entries := make([]commandHelp, 0, len(registry)*2)
	for _, cmd := range registry {
		entries = append(entries, cmd.Help...)
	}
	return entries
}

func resolveCommand(name string) (commandDescriptor, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return commandDescriptor{}, false
	}
	for _, descriptor := range commandRegistry() {
		if descriptor.Name == needle {
			return descriptor, true
		}
		for _, alias := range descriptor.Aliases {
			if alias == needle {
				return descriptor, true
			}
		}
	}
	return commandDescriptor{}, false
}

func commandSuggestions() []string {
	registry := commandRegistry()
	out := make([]string, 0, len(registry)*2)
	for _, descriptor := range registry {
		out = append(out, descriptor.Name)
		out = append(out, descriptor.Aliases...)
	}
	return out
}

func matchCommands(prefix string) []string {
	candidates := commandSuggestions()
	if prefix == "" {
		return candidates
	}
	prefix = strings.ToLower(prefix)
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, prefix) {
			out = append(out, candidate)
		}
	}
	return out
}

func screenCommand(kind resource.Kind) func(Model, []string) (tea.Model, tea.Cmd) {
	return func(m Model, _ []string) (tea.Model, tea.Cmd) {
		return m.switchScreen(kind)
	}
}

func runHelpCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.openHelp()
}

func runLibraryCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	return m.runLibraryCommand(args)
}

func runNodeCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) != 1 {
		m.status = "Usage: :node <id>"
		return m, nil
	}
	return m.switchNode(args[0])
}

func runContextCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	return m.runContextCommand(args)
}

func runSortCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	return m.runSortCommand(args)
}

func runPruneCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.openPruneConfirm()
}

func runRefreshCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	cmd := m.refreshCurrent()
	return m, cmd
}

func runQuitCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.openQuitConfirm()
}
