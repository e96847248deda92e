package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []recordedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(body),
			RequestID: r.Header.Get("X-Request-ID"),
		})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)
	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), seen...)
	}
}

func newTestClient(t *testing.T, server *httptest.Server, logger RequestLogger) Client {
	t.Helper()
	client, err := NewClientWithLogger(server.URL+"/api/", logger)
	require.NoError(t, err)
	return client
}

func TestRemoveBodies(t *testing.T) {
	tests := []struct {
		name     string
		resource Resource
		req      RemoveRequest
		wantPath string
		wantBody string
	}{
		{
			name:     "image keeps force false",
			resource: ResourceImages,
			req:      RemoveRequest{ID: "sha256:abc", Force: Force(false)},
			wantPath: "/api/nodes/7/images/remove",
			wantBody: `{"id":"sha256:abc","force":false}`,
		},
		{
			name:     "network forces",
			resource: ResourceNetworks,
			req:      RemoveRequest{ID: "f00", Force: Force(true)},
			wantPath: "/api/nodes/7/networks/remove",
			wantBody: `{"id":"f00","force":true}`,
		},
		{
			name:     "volume by name only",
			resource: ResourceVolumes,
			req:      RemoveRequest{Name: "data"},
			wantPath: "/api/nodes/7/volumes/remove",
			wantBody: `{"name":"data"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server, seen := newTestServer(t, http.StatusOK, `{}`)
			client := newTestClient(t, server, nil)

			err := client.Remove(context.Background(), "7", tc.resource, tc.req)
			require.NoError(t, err)
			require.Len(t, seen(), 1)

			got := seen()[0]
			assert.Equal(t, http.MethodPost, got.Method)
			assert.Equal(t, tc.wantPath, got.Path)
			assert.JSONEq(t, tc.wantBody, got.Body)
			assert.NotEmpty(t, got.RequestID)
		})
	}
}

func TestPruneSendsAllAndDecodesReport(t *testing.T) {
	server, seen := newTestServer(t, http.StatusOK, `{"volumesDeleted":[{"name":"x"}],"spaceReclaimed":1048576}`)
	client := newTestClient(t, server, nil)

	report, err := client.Prune(context.Background(), "1", ResourceVolumes)
	require.NoError(t, err)

	require.Len(t, seen(), 1)
	assert.Equal(t, "/api/nodes/1/volumes/prune", seen()[0].Path)
	assert.JSONEq(t, `{"all":true}`, seen()[0].Body)
	assert.Equal(t, 1, report.Deleted())
	assert.Equal(t, int64(1048576), report.SpaceReclaimed)
}

func TestRemoveErrorCarriesErrorsBody(t *testing.T) {
	server, _ := newTestServer(t, http.StatusConflict, `{"errors":{"body":"volume in use"}}`)
	client := newTestClient(t, server, nil)

	err := client.Remove(context.Background(), "1", ResourceVolumes, RemoveRequest{Name: "data"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "volume in use", apiErr.Message)
	assert.Equal(t, "volume in use", Message(err))
}

func TestMalformedErrorBodyLeavesMessageEmpty(t *testing.T) {
	server, _ := newTestServer(t, http.StatusInternalServerError, `<html>oops</html>`)
	client := newTestClient(t, server, nil)

	_, err := client.Prune(context.Background(), "1", ResourceImages)
	require.Error(t, err)
	assert.Equal(t, "", Message(err))
	assert.Contains(t, err.Error(), "500")
}

func TestListCollections(t *testing.T) {
	server, seen := newTestServer(t, http.StatusOK, `{"items":[{"id":"n1","name":"bridge","driver":"bridge","scope":"local","inUse":true}],"totalRows":1}`)
	client := newTestClient(t, server, nil)

	networks, err := client.ListNetworks(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "/api/nodes/3/networks", seen()[0].Path)
	assert.Equal(t, http.MethodGet, seen()[0].Method)
	require.Len(t, networks.Items, 1)
	assert.True(t, networks.Items[0].InUse)
	assert.False(t, networks.NoData())
}

func TestListComposeLibraryNoData(t *testing.T) {
	server, seen := newTestServer(t, http.StatusOK, `{"items":[],"totalRows":-1}`)
	client := newTestClient(t, server, nil)

	library, err := client.ListComposeLibrary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/composelibrary", seen()[0].Path)
	assert.True(t, library.NoData())
}

func TestNodeHead(t *testing.T) {
	server, seen := newTestServer(t, http.StatusOK, `{"id":"5","name":"edge-01"}`)
	client := newTestClient(t, server, nil)

	head, err := client.NodeHead(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, "/api/nodes/5", seen()[0].Path)
	assert.Equal(t, NodeHead{ID: "5", Name: "edge-01"}, head)
}

func TestNodeScopedCallsRequireNode(t *testing.T) {
	server, seen := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server, nil)

	_, err := client.ListImages(context.Background(), " ")
	require.Error(t, err)
	err = client.Remove(context.Background(), "", ResourceImages, RemoveRequest{ID: "x"})
	require.Error(t, err)
	assert.Empty(t, seen())
}

func TestNodeIDCannotLeaveNodePath(t *testing.T) {
	server, seen := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server, nil)

	for _, id := range []string{"1/../../composelibrary", "..", "1?x=2", `1\2`} {
		err := client.Remove(context.Background(), id, ResourceImages, RemoveRequest{ID: "x"})
		assert.ErrorContains(t, err, "invalid node id", id)
		_, err = client.Prune(context.Background(), id, ResourceVolumes)
		assert.ErrorContains(t, err, "invalid node id", id)
	}
	assert.Empty(t, seen())
}

func TestRequestLoggerReceivesStatus(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"items":[],"totalRows":0}`)
	var logs []RequestLog
	client := newTestClient(t, server, func(entry RequestLog) {
		logs = append(logs, entry)
	})

	_, err := client.ListVolumes(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, http.MethodGet, logs[0].Method)
	assert.Equal(t, http.StatusOK, logs[0].Status)
	assert.NotEmpty(t, logs[0].RequestID)
	assert.Contains(t, logs[0].URL, "/api/nodes/1/volumes")
}

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "backend.local/api/", want: "https://backend.local/api"},
		{input: "http://localhost:8080", want: "http://localhost:8080"},
		{input: "  ", wantErr: true},
		{input: "ftp://backend.local", wantErr: true},
		{input: "http://", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseBaseURL(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestPruneReportToleratesMixedEntries(t *testing.T) {
	var report PruneReport
	err := json.Unmarshal([]byte(`{"networksDeleted":["a","b"],"imagesDeleted":[{"Deleted":"sha256:1"}]}`), &report)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Deleted())
	assert.Zero(t, report.SpaceReclaimed)
}
