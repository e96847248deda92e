package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/scottbass3/keel/internal/listview"
)

const (
	sortGlyphInactive = "↕"
	sortGlyphAsc      = "▲"
	sortGlyphDesc     = "▼"
)

// makeColumns lays out the screen's columns across width. Columns with a
// width hint keep it; the others split what is left.
func makeColumns(columns []screenColumn, active listview.Sort, width int) []table.Column {
	if len(columns) == 0 {
		return nil
	}
	// bubbles/table default cell style uses horizontal padding of 1 on each side.
	content := width - 2*len(columns)
	if content < len(columns) {
		content = len(columns)
	}

	fixed := 0
	flex := 0
	for _, column := range columns {
		if column.width > 0 {
			fixed += column.width
		} else {
			flex++
		}
	}
	remaining := max(0, content-fixed)
	share, extra := 0, 0
	if flex > 0 {
		share = remaining / flex
		extra = remaining % flex
	}

	out := make([]table.Column, 0, len(columns))
	for _, column := range columns {
		w := column.width
		if w <= 0 {
			w = share
			if extra > 0 {
				w++
				extra--
			}
		}
		out = append(out, table.Column{
			Title: columnTitle(column, active),
			Width: max(1, w),
		})
	}
	return out
}

func columnTitle(column screenColumn, active listview.Sort) string {
	glyph := sortGlyphInactive
	if column.key == active.Key {
		glyph = sortGlyphAsc
		if active.Order == listview.Descending {
			glyph = sortGlyphDesc
		}
	}
	return column.title + " " + glyph
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Foreground(colorTitleText).
		Background(colorSurface2).
		Bold(true)
	styles.Cell = lipgloss.NewStyle().Padding(0, 1)
	styles.Selected = styles.Selected.
		Foreground(colorSelected).
		Background(colorAccent).
		Bold(true)
	return styles
}
