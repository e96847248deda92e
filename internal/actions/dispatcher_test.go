package actions

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/resource"
)

func newBackend(t *testing.T, status int, body string) (api.Client, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	client, err := api.NewClient(server.URL)
	require.NoError(t, err)
	return client, &calls
}

func TestRemoveSuccess(t *testing.T) {
	client, calls := newBackend(t, http.StatusOK, `{}`)
	d := New(client, "1")

	out := Remove(context.Background(), d, resource.Volumes(), api.Volume{Name: "data"})

	assert.Equal(t, 1, *calls)
	assert.True(t, out.OK())
	assert.True(t, out.Refresh)
	assert.Equal(t, "Volume deleted.", out.Notice.Text)
	assert.Equal(t, DialogCloseDelay, out.CloseDelay)
}

func TestRemoveConflictDoesNotRefresh(t *testing.T) {
	client, _ := newBackend(t, http.StatusConflict, `{"errors":{"body":"volume in use"}}`)
	d := New(client, "1")

	out := Remove(context.Background(), d, resource.Volumes(), api.Volume{Name: "data"})

	assert.False(t, out.OK())
	assert.Equal(t, LevelFailure, out.Notice.Level)
	assert.Equal(t, "volume in use", out.Notice.Text)
	assert.False(t, out.Refresh)
	assert.Zero(t, out.CloseDelay)
}

func TestRemoveMalformedErrorGivesEmptyText(t *testing.T) {
	client, _ := newBackend(t, http.StatusBadGateway, `bad gateway`)
	d := New(client, "1")

	out := Remove(context.Background(), d, resource.Images(), api.Image{ID: "sha256:1"})

	assert.False(t, out.OK())
	assert.Empty(t, out.Notice.Text)
}

func TestPruneNothingFound(t *testing.T) {
	client, _ := newBackend(t, http.StatusOK, `{"imagesDeleted":[],"spaceReclaimed":0}`)
	d := New(client, "1")

	out := Prune(context.Background(), d, resource.Images())

	assert.True(t, out.OK())
	assert.True(t, out.Refresh)
	assert.Equal(t, "Nothing found to delete", out.Notice.Text)
}

func TestPruneVolumesSummary(t *testing.T) {
	client, _ := newBackend(t, http.StatusOK, `{"volumesDeleted":[{"name":"x"}],"spaceReclaimed":1048576}`)
	d := New(client, "1", WithCloseDelay(0))

	out := Prune(context.Background(), d, resource.Volumes())

	assert.Equal(t, "1 unused volumes deleted. Space reclaimed: 1 MB", out.Notice.Text)
	assert.Zero(t, out.CloseDelay)
}

func TestPruneUnsupported(t *testing.T) {
	client, calls := newBackend(t, http.StatusOK, `{}`)
	d := New(client, "")

	out := Prune(context.Background(), d, resource.ComposeLibrary())

	assert.False(t, out.OK())
	assert.Contains(t, out.Notice.Text, "not supported")
	assert.Zero(t, *calls)
}

type failingClient struct {
	api.Client
}

func (failingClient) Prune(context.Context, string, api.Resource) (api.PruneReport, error) {
	return api.PruneReport{}, errors.New("dial tcp: connection refused")
}

func TestTransportFailureUsesErrorText(t *testing.T) {
	d := New(failingClient{}, "1")

	out := Prune(context.Background(), d, resource.Networks())

	assert.False(t, out.OK())
	assert.False(t, out.Refresh)
	assert.Equal(t, "dial tcp: connection refused", out.Notice.Text)
}

func TestMissingClient(t *testing.T) {
	d := New(nil, "1")

	out := Remove(context.Background(), d, resource.Images(), api.Image{ID: "x"})

	assert.False(t, out.OK())
	assert.NotEmpty(t, out.Notice.Text)
}
