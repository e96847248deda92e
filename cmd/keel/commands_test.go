package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottbass3/keel/internal/actions"
	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/listview"
	"github.com/scottbass3/keel/internal/resource"
)

const imagesBody = `{"items":[
	{"id":"sha256:aaaaaaaaaaaaaaaa","name":"alpine","tag":"3.20","size":8388608},
	{"id":"sha256:bbbbbbbbbbbbbbbb","name":"busybox","tag":"latest","size":4194304,"inUse":true},
	{"id":"sha256:cccccccccccccccc","name":"caddy","tag":"2","size":41943040}
],"totalRows":3}`

type backendCall struct {
	method string
	path   string
	body   string
}

func newBackend(t *testing.T, routes map[string]string) (api.Client, *[]backendCall) {
	t.Helper()
	var calls []backendCall
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		calls = append(calls, backendCall{method: r.Method, path: r.URL.Path, body: string(data)})
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"not found"}`)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	client, err := api.NewClient(server.URL)
	require.NoError(t, err)
	return client, &calls
}

func TestListRowsSortsAndFilters(t *testing.T) {
	client, _ := newBackend(t, map[string]string{"GET /nodes/1/images": imagesBody})

	result, err := listKind(context.Background(), client, "1", resource.KindImages, listOptions{sort: "size", order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Id", "Name", "Tag", "Status", "Size"}, result.headers)
	require.Len(t, result.rows, 3)
	assert.Equal(t, "caddy", result.rows[0][1])
	assert.Equal(t, "busybox", result.rows[2][1])
	assert.Equal(t, "In use", result.rows[2][3])

	result, err = listKind(context.Background(), client, "1", resource.KindImages, listOptions{search: "ALP"})
	require.NoError(t, err)
	require.Len(t, result.rows, 1)
	assert.Equal(t, "alpine", result.rows[0][1])
}

func TestListRowsNoData(t *testing.T) {
	client, _ := newBackend(t, map[string]string{"GET /nodes/1/volumes": `{"items":[{"name":"data"}],"totalRows":-1}`})

	result, err := listKind(context.Background(), client, "1", resource.KindVolumes, listOptions{})
	require.NoError(t, err)
	assert.True(t, result.noData)
	assert.Empty(t, result.rows)
}

func TestBuildQueryValidates(t *testing.T) {
	spec := resource.Images().Spec

	_, err := buildQuery(spec, listOptions{sort: "created"})
	assert.ErrorContains(t, err, "unknown sort column")

	_, err = buildQuery(spec, listOptions{order: "sideways"})
	assert.ErrorContains(t, err, "unknown sort order")

	_, err = buildQuery(resource.ComposeLibrary().Spec, listOptions{search: "web"})
	assert.ErrorContains(t, err, "search is not available")

	query, err := buildQuery(spec, listOptions{order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, listview.Sort{Key: "name", Order: listview.Descending}, query.Sort)
}

func TestRemoveByKeyRefusesInUse(t *testing.T) {
	client, calls := newBackend(t, map[string]string{"GET /nodes/1/images": imagesBody})
	d := actions.New(client, "1", actions.WithCloseDelay(0))

	_, err := removeKind(context.Background(), d, client, resource.KindImages, "sha256:bbbbbbbbbbbbbbbb")
	assert.ErrorContains(t, err, `image "busybox" cannot be deleted`)
	assert.Len(t, *calls, 1)

	_, err = removeKind(context.Background(), d, client, resource.KindImages, "missing")
	assert.ErrorContains(t, err, "no image")
}

func TestRemoveByKeyDeletes(t *testing.T) {
	client, calls := newBackend(t, map[string]string{
		"GET /nodes/1/images":         imagesBody,
		"POST /nodes/1/images/remove": `{}`,
	})
	d := actions.New(client, "1", actions.WithCloseDelay(0))

	outcome, err := removeKind(context.Background(), d, client, resource.KindImages, "sha256:aaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.True(t, outcome.OK())
	assert.Equal(t, "Image deleted.", outcome.Notice.Text)
	require.Len(t, *calls, 2)
	assert.Contains(t, (*calls)[1].body, `"id":"sha256:aaaaaaaaaaaaaaaa"`)
	assert.Contains(t, (*calls)[1].body, `"force":false`)
}

func TestPruneKind(t *testing.T) {
	client, _ := newBackend(t, map[string]string{
		"POST /nodes/1/volumes/prune": `{"volumesDeleted":["data"],"spaceReclaimed":1048576}`,
	})
	d := actions.New(client, "1", actions.WithCloseDelay(0))

	outcome, err := pruneKind(context.Background(), d, resource.KindVolumes)
	require.NoError(t, err)
	assert.True(t, outcome.OK())

	_, err = pruneKind(context.Background(), d, resource.KindComposeLibrary)
	assert.Error(t, err)
}

func TestReportTurnsFailureIntoError(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, report(&out, actions.Outcome{Notice: actions.Notice{Level: actions.LevelSuccess, Text: "Volume deleted."}}))
	assert.Contains(t, out.String(), "Volume deleted.")

	err := report(&out, actions.Outcome{Notice: actions.Notice{Level: actions.LevelFailure, Text: "volume is in use"}})
	assert.EqualError(t, err, "volume is in use")

	err = report(&out, actions.Outcome{Notice: actions.Notice{Level: actions.LevelFailure}})
	assert.EqualError(t, err, "Request failed")
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, confirm(strings.NewReader("y\n"), &out, "Delete?"))
	assert.True(t, confirm(strings.NewReader("YES\n"), &out, "Delete?"))
	assert.False(t, confirm(strings.NewReader("\n"), &out, "Delete?"))
	assert.False(t, confirm(strings.NewReader(""), &out, "Delete?"))
	assert.Contains(t, out.String(), "Delete? [y/N]")
}

func TestRenderTable(t *testing.T) {
	rendered := renderTable([]string{"Name", "Driver"}, [][]string{{"data", "local"}})
	assert.Contains(t, rendered, "Name")
	assert.Contains(t, rendered, "local")
}

func TestOpenSessionPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`contexts:
  - name: prod
    api: https://prod.example.com/api
    node: "1"
  - name: lab
    api: https://lab.example.com/api
    node: "4"
`), 0o600))
	t.Setenv("KEEL_CONTEXT", "lab")
	t.Setenv("KEEL_API", "")
	t.Setenv("KEEL_NODE", "9")

	s, err := openSession(&options{configPath: path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "lab", s.context.Name)
	assert.Equal(t, "9", s.context.Node)
	assert.Equal(t, api.DefaultTimeout, s.timeout)

	s, err = openSession(&options{configPath: path, context: "prod", node: "2"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "https://prod.example.com/api", s.context.API)
	assert.Equal(t, "2", s.context.Node)

	_, err = openSession(&options{configPath: path, context: "missing"}, io.Discard)
	assert.ErrorContains(t, err, "unknown context")
}

func TestOpenSessionWithoutBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KEEL_CONTEXT", "")
	t.Setenv("KEEL_API", "")
	t.Setenv("KEEL_NODE", "")

	s, err := openSession(&options{configPath: filepath.Join(dir, "config.yaml")}, io.Discard)
	require.NoError(t, err)
	assert.Empty(t, s.context.API)

	_, err = s.client()
	assert.ErrorContains(t, err, "no backend configured")
}
