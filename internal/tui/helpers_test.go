package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/resource"
)

type fakeClient struct {
	mu sync.Mutex

	library  []api.ComposeLibraryItem
	images   []api.Image
	networks []api.Network
	volumes  []api.Volume

	removeErr error
	removed   []api.RemoveRequest
	pruned    []api.Resource
	report    api.PruneReport
}

func (c *fakeClient) NodeHead(_ context.Context, nodeID string) (api.NodeHead, error) {
	return api.NodeHead{ID: nodeID, Name: "node-" + nodeID}, nil
}

func (c *fakeClient) ListComposeLibrary(context.Context) (api.Collection[api.ComposeLibraryItem], error) {
	return api.Collection[api.ComposeLibraryItem]{Items: c.library, TotalRows: len(c.library)}, nil
}

func (c *fakeClient) ListImages(context.Context, string) (api.Collection[api.Image], error) {
	return api.Collection[api.Image]{Items: c.images, TotalRows: len(c.images)}, nil
}

func (c *fakeClient) ListNetworks(context.Context, string) (api.Collection[api.Network], error) {
	return api.Collection[api.Network]{Items: c.networks, TotalRows: len(c.networks)}, nil
}

func (c *fakeClient) ListVolumes(context.Context, string) (api.Collection[api.Volume], error) {
	return api.Collection[api.Volume]{Items: c.volumes, TotalRows: len(c.volumes)}, nil
}

func (c *fakeClient) Remove(_ context.Context, _ string, _ api.Resource, req api.RemoveRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.removeErr != nil {
		return c.removeErr
	}
	c.removed = append(c.removed, req)
	return nil
}

func (c *fakeClient) Prune(_ context.Context, _ string, resource api.Resource) (api.PruneReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruned = append(c.pruned, resource)
	return c.report, nil
}

func testImages() []api.Image {
	return []api.Image{
		{ID: "sha256:aaaaaaaaaaaaaaaaaaaa", Name: "alpine", Tag: "3.20", Size: 8 * 1024 * 1024},
		{ID: "sha256:bbbbbbbbbbbbbbbbbbbb", Name: "busybox", Tag: "latest", Size: 4 * 1024 * 1024, InUse: true},
		{ID: "sha256:cccccccccccccccccccc", Name: "caddy", Tag: "2", Size: 40 * 1024 * 1024},
	}
}

// newTestModel returns a sized model on node 1 with the images screen
// loaded from client.
func newTestModel(t *testing.T, client *fakeClient) Model {
	t.Helper()
	m := NewModel(Options{
		Client:     client,
		APIURL:     "https://backend.example.com/api",
		Node:       "1",
		Context:    "test",
		ConfigPath: t.TempDir() + "/config.yaml",
		Screen:     resource.KindImages,
	})
	m.width = 120
	m.height = 40
	m = feed(t, m, collectionMsg{kind: resource.KindImages, node: "1", items: client.images, total: len(client.images)})
	return m
}

func feed(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", updated)
	}
	return next
}

func switchTo(t *testing.T, m Model, kind resource.Kind) Model {
	t.Helper()
	updated, _ := m.switchScreen(kind)
	return updated.(Model)
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// collectMsgs runs cmd and flattens batches. Commands that do not return
// quickly, such as ticks, are skipped.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, sub := range batch {
				out = append(out, collectMsgs(sub)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

func findActionDone(t *testing.T, cmd tea.Cmd) actionDoneMsg {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if done, ok := msg.(actionDoneMsg); ok {
			return done
		}
	}
	t.Fatalf("expected an actionDoneMsg")
	return actionDoneMsg{}
}
