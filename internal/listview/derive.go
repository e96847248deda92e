package listview

import (
	"sort"
	"strconv"
	"strings"
)

type Column[T any] struct {
	Key   string
	Title string
	// Width is a rendering hint in cells; zero means flexible.
	Width int
	Value func(T) Value
	Cell  func(T) string
}

// Spec describes one resource's list: its sortable columns, the default sort
// and the optional search accessor. A nil Search disables filtering.
type Spec[T any] struct {
	Columns     []Column[T]
	DefaultSort Sort
	Search      func(T) string
	Key         func(T) string
}

func (s Spec[T]) Searchable() bool {
	return s.Search != nil
}

func (s Spec[T]) Column(key string) (Column[T], bool) {
	for _, column := range s.Columns {
		if column.Key == key {
			return column, true
		}
	}
	return Column[T]{}, false
}

func (s Spec[T]) ColumnIndex(key string) int {
	for i, column := range s.Columns {
		if column.Key == key {
			return i
		}
	}
	return -1
}

func (s Spec[T]) Keys() []string {
	keys := make([]string, 0, len(s.Columns))
	for _, column := range s.Columns {
		keys = append(keys, column.Key)
	}
	return keys
}

type Query struct {
	Search string
	Sort   Sort
}

// Derive returns the visible rows for query. items is never modified.
func Derive[T any](items []T, spec Spec[T], query Query) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(query.Search)
	for _, item := range items {
		if spec.Search != nil && needle != "" {
			if !strings.Contains(strings.ToLower(spec.Search(item)), needle) {
				continue
			}
		}
		out = append(out, item)
	}

	column, ok := spec.Column(query.Sort.Key)
	if !ok || column.Value == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		result := Compare(column.Value(out[i]), column.Value(out[j]))
		if query.Sort.Order == Descending {
			result = -result
		}
		return result < 0
	})
	return out
}

// Cells renders one row with the spec's cell formatters.
func Cells[T any](spec Spec[T], item T) []string {
	cells := make([]string, 0, len(spec.Columns))
	for _, column := range spec.Columns {
		switch {
		case column.Cell != nil:
			cells = append(cells, column.Cell(item))
		case column.Value != nil:
			value := column.Value(item)
			if value.numeric {
				cells = append(cells, strconv.FormatInt(value.num, 10))
			} else {
				cells = append(cells, value.text)
			}
		default:
			cells = append(cells, "")
		}
	}
	return cells
}
