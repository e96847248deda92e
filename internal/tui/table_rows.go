package tui

import "github.com/charmbracelet/bubbles/table"

// toTableRows pads or trims every row to columnCount so bubbles/table never
// sees a row/column length mismatch.
func toTableRows(rows [][]string, columnCount int) []table.Row {
	if len(rows) == 0 {
		return nil
	}
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalizeTableRow(row, columnCount))
	}
	return out
}

func normalizeTableRow(row []string, columnCount int) table.Row {
	if columnCount <= 0 || len(row) == columnCount {
		return table.Row(row)
	}
	if len(row) > columnCount {
		return table.Row(row[:columnCount])
	}
	padded := make(table.Row, columnCount)
	copy(padded, row)
	return padded
}
