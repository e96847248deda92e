package tui

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/scottbass3/keel/internal/resource"
)

var writeClipboard = clipboard.WriteAll

func (m *Model) copyText(value string) bool {
	if value == "" {
		return false
	}
	if err := writeClipboard(value); err != nil {
		m.status = fmt.Sprintf("Failed to copy %s: %v", value, err)
		return false
	}
	m.status = fmt.Sprintf("Copied %s", value)
	return true
}

// copySelectedKey copies the identifier the backend uses for the selected
// row: image or network id, volume name, library project name or id.
func (m *Model) copySelectedKey() bool {
	key, ok := m.selectedKey()
	if !ok {
		m.status = "Nothing selected to copy"
		return false
	}
	return m.copyText(key)
}

func (m *Model) copyCreateRoute(kind string) bool {
	route, ok := resource.LibraryCreateRoute(kind)
	if !ok {
		m.status = fmt.Sprintf("Unknown project type: %s", kind)
		return false
	}
	return m.copyText(route)
}
