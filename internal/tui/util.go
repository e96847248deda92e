package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
)

func clampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	return min(value, hi)
}

func lineCount(value string) int {
	if value == "" {
		return 0
	}
	return strings.Count(value, "\n") + 1
}

// truncateLogLine flattens entry onto one line that fits width cells.
func truncateLogLine(entry string, width int) string {
	if width <= 0 {
		return ""
	}
	line := strings.TrimSpace(strings.ReplaceAll(entry, "\n", " "))
	return ansi.Truncate(line, width, "…")
}

func equalTableColumns(a, b []table.Column) bool {
	return slices.Equal(a, b)
}

func equalTableRows(a, b []table.Row) bool {
	return slices.EqualFunc(a, b, func(x, y table.Row) bool {
		return slices.Equal(x, y)
	})
}
