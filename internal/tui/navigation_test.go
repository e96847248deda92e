package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/listview"
	"github.com/scottbass3/keel/internal/resource"
)

func TestRowsFollowDefaultSort(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "alpine" || rows[2][1] != "caddy" {
		t.Fatalf("expected rows sorted by name, got %v", rows)
	}
	if rows[0][0] != "aaaaaaaaaaaa" {
		t.Fatalf("expected short image id, got %q", rows[0][0])
	}
	if rows[1][3] != "In use" || rows[0][3] != "Unused" {
		t.Fatalf("unexpected status cells: %q %q", rows[0][3], rows[1][3])
	}
}

func TestSortColumnKeysToggleDirection(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	m, _ = press(t, m, "2")
	if got := m.activeScreen().sortState(); got.Key != "name" || got.Order != listview.Descending {
		t.Fatalf("expected name desc, got %+v", got)
	}
	if m.table.Rows()[0][1] != "caddy" {
		t.Fatalf("expected caddy first, got %v", m.table.Rows()[0])
	}

	m, _ = press(t, m, "5")
	if got := m.activeScreen().sortState(); got.Key != "size" || got.Order != listview.Ascending {
		t.Fatalf("expected size asc, got %+v", got)
	}
	if m.table.Rows()[0][1] != "busybox" {
		t.Fatalf("expected smallest image first, got %v", m.table.Rows()[0])
	}
	if !strings.Contains(m.tableColumns[4].Title, sortGlyphAsc) {
		t.Fatalf("expected sort glyph on size header, got %q", m.tableColumns[4].Title)
	}
	if !strings.Contains(m.tableColumns[1].Title, sortGlyphInactive) {
		t.Fatalf("expected inactive glyph on name header, got %q", m.tableColumns[1].Title)
	}
}

func TestCycleSortMovesToNextColumn(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	m, _ = press(t, m, "s")
	if got := m.activeScreen().sortState(); got.Key != "tag" || got.Order != listview.Ascending {
		t.Fatalf("expected tag asc after name, got %+v", got)
	}
}

func TestSearchFiltersRows(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	m, _ = press(t, m, "/")
	if !m.filterActive {
		t.Fatalf("expected search input to open")
	}
	if m.filterInput.Placeholder != "Search images..." {
		t.Fatalf("unexpected placeholder %q", m.filterInput.Placeholder)
	}
	m, _ = press(t, m, "B")
	if len(m.table.Rows()) != 1 || m.table.Rows()[0][1] != "busybox" {
		t.Fatalf("expected case-insensitive match on busybox, got %v", m.table.Rows())
	}

	m, _ = press(t, m, "enter")
	if m.filterActive {
		t.Fatalf("expected enter to close the input")
	}
	if m.activeScreen().search() != "B" {
		t.Fatalf("expected search to be kept, got %q", m.activeScreen().search())
	}

	m, _ = press(t, m, "esc")
	if m.activeScreen().search() != "" || len(m.table.Rows()) != 3 {
		t.Fatalf("expected esc to clear the search")
	}
}

func TestSearchUnavailableOnLibrary(t *testing.T) {
	client := &fakeClient{
		images: testImages(),
		library: []api.ComposeLibraryItem{
			{ProjectName: "web", Type: api.LibraryTypeFilesystem},
			{ProjectName: "api", Type: api.LibraryTypeGitHub, ID: "42"},
		},
	}
	m := newTestModel(t, client)
	m = switchTo(t, m, resource.KindComposeLibrary)
	m = feed(t, m, collectionMsg{kind: resource.KindComposeLibrary, items: client.library, total: 2})

	m, _ = press(t, m, "/")
	if m.filterActive {
		t.Fatalf("expected search to stay closed on the library")
	}
	if len(m.table.Rows()) != 2 {
		t.Fatalf("expected 2 library rows, got %d", len(m.table.Rows()))
	}
	if m.table.Rows()[0][0] != "api" || m.table.Rows()[0][1] != "GitHub" {
		t.Fatalf("unexpected first library row %v", m.table.Rows()[0])
	}
}

func TestNoDataPlaceholder(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m = feed(t, m, collectionMsg{kind: resource.KindImages, node: "1", items: testImages(), total: -1})

	if len(m.table.Rows()) != 0 {
		t.Fatalf("expected no rows when totalRows is -1, got %d", len(m.table.Rows()))
	}
	if got := m.emptyBodyMessage(); got != "No data" {
		t.Fatalf("expected No data placeholder, got %q", got)
	}
}

func TestStaleNodeCollectionIsDropped(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	m = feed(t, m, collectionMsg{kind: resource.KindImages, node: "2", items: []api.Image{{ID: "x", Name: "other"}}, total: 1})
	if len(m.table.Rows()) != 3 {
		t.Fatalf("expected rows of node 1 to be kept, got %d", len(m.table.Rows()))
	}
}

func TestScreenTabsWrapAround(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.current != resource.KindComposeLibrary {
		t.Fatalf("expected library before images, got %s", m.current)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.current != resource.KindVolumes {
		t.Fatalf("expected wrap to volumes, got %s", m.current)
	}
}

func TestBreadcrumb(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})
	if got := m.breadcrumb(); got != "Nodes > 1 > Images" {
		t.Fatalf("unexpected breadcrumb %q", got)
	}
	m = feed(t, m, nodeHeadMsg{node: "1", head: api.NodeHead{ID: "1", Name: "primary"}})
	if got := m.breadcrumb(); got != "Nodes > primary > Images" {
		t.Fatalf("unexpected breadcrumb %q", got)
	}
	m = switchTo(t, m, resource.KindComposeLibrary)
	if got := m.breadcrumb(); got != "Compose Library" {
		t.Fatalf("unexpected library breadcrumb %q", got)
	}
}

func TestQuitConfirm(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	m, _ = press(t, m, "q")
	if !m.isConfirmModalActive() {
		t.Fatalf("expected quit confirmation")
	}
	m, cmd := press(t, m, "y")
	if m.isConfirmModalActive() {
		t.Fatalf("expected confirmation to close")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestCursorStartsOnFirstRowAfterLoad(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})
	if got := m.table.Cursor(); got != 0 {
		t.Fatalf("expected cursor on first row, got %d", got)
	}

	m, _ = press(t, m, "d")
	if got := m.activeScreen().phase(); got != listview.PhaseConfirmingDelete {
		t.Fatalf("expected delete dialog on a fresh screen, got %s", got)
	}
}

func TestCursorRecoversAfterSearchMatchesNothing(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	m, _ = press(t, m, "/")
	for _, key := range []string{"z", "z", "z"} {
		m, _ = press(t, m, key)
	}
	if len(m.table.Rows()) != 0 {
		t.Fatalf("expected no rows, got %v", m.table.Rows())
	}

	m, _ = press(t, m, "esc")
	if len(m.table.Rows()) != 3 {
		t.Fatalf("expected rows back after clearing search, got %d", len(m.table.Rows()))
	}
	if got := m.table.Cursor(); got != 0 {
		t.Fatalf("expected cursor back on first row, got %d", got)
	}
}
