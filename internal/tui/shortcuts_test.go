package tui

import (
	"strings"
	"testing"

	"github.com/scottbass3/keel/internal/resource"
)

func hasHelpEntry(entries []helpEntry, action string) bool {
	for _, entry := range entries {
		if entry.Action == action {
			return true
		}
	}
	return false
}

func TestResourcePagesOfferDestructiveShortcuts(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})

	for _, kind := range []resource.Kind{resource.KindImages, resource.KindNetworks, resource.KindVolumes} {
		m = switchTo(t, m, kind)
		entries := m.currentPageHelpEntries()
		for _, action := range []string{"Search current list", "Delete selected row", "Delete all unused"} {
			if !hasHelpEntry(entries, action) {
				t.Fatalf("expected %q on %s page", action, kind)
			}
		}
	}
}

func TestLibraryPageHasNoSearchOrDelete(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})
	m = switchTo(t, m, resource.KindComposeLibrary)

	entries := m.currentPageHelpEntries()
	for _, action := range []string{"Search current list", "Delete selected row", "Delete all unused"} {
		if hasHelpEntry(entries, action) {
			t.Fatalf("did not expect %q on the library page", action)
		}
	}
	if !hasHelpEntry(entries, "Copy selected project edit route") {
		t.Fatalf("expected edit route entry on the library page")
	}
	if strings.Contains(m.shortcutHintLine(), "/ search") {
		t.Fatalf("unexpected search hint %q", m.shortcutHintLine())
	}
}

func TestSearchInputPage(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})
	m, _ = press(t, m, "/")

	if got := m.shortcutPageTitle(false); got != "Search Input" {
		t.Fatalf("unexpected page title %q", got)
	}
	if !hasHelpEntry(m.currentPageHelpEntries(), "Set search text") {
		t.Fatalf("expected search input entries")
	}
	if !strings.HasPrefix(m.shortcutHintLine(), "Search:") {
		t.Fatalf("unexpected hint line %q", m.shortcutHintLine())
	}
}

func TestHelpListsColumns(t *testing.T) {
	m := newTestModel(t, &fakeClient{images: testImages()})
	m, _ = press(t, m, "?")
	if !m.helpActive {
		t.Fatalf("expected help to open")
	}
	body := m.renderHelpSectionBody()
	if !strings.Contains(body, "Name (asc)") {
		t.Fatalf("expected active sort in help, got %q", body)
	}
	m, _ = press(t, m, "esc")
	if m.helpActive {
		t.Fatalf("expected esc to close help")
	}
}
