package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxErrorBody = 64 << 10

// BackendClient talks to the management backend's JSON API.
type BackendClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     RequestLogger
}

func newBackendClient(baseURL *url.URL, timeout time.Duration, logger RequestLogger) *BackendClient {
	return &BackendClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *BackendClient) NodeHead(ctx context.Context, nodeID string) (NodeHead, error) {
	if err := requireNode(nodeID); err != nil {
		return NodeHead{}, err
	}
	var head NodeHead
	if err := c.doJSON(ctx, http.MethodGet, c.resolve(nodePath(nodeID), nil), nil, &head); err != nil {
		return NodeHead{}, err
	}
	return head, nil
}

func (c *BackendClient) ListComposeLibrary(ctx context.Context) (Collection[ComposeLibraryItem], error) {
	var out Collection[ComposeLibraryItem]
	if err := c.doJSON(ctx, http.MethodGet, c.resolve("/composelibrary", nil), nil, &out); err != nil {
		return Collection[ComposeLibraryItem]{}, err
	}
	return out, nil
}

func (c *BackendClient) ListImages(ctx context.Context, nodeID string) (Collection[Image], error) {
	return listNodeCollection[Image](ctx, c, nodeID, ResourceImages)
}

func (c *BackendClient) ListNetworks(ctx context.Context, nodeID string) (Collection[Network], error) {
	return listNodeCollection[Network](ctx, c, nodeID, ResourceNetworks)
}

func (c *BackendClient) ListVolumes(ctx context.Context, nodeID string) (Collection[Volume], error) {
	return listNodeCollection[Volume](ctx, c, nodeID, ResourceVolumes)
}

func (c *BackendClient) Remove(ctx context.Context, nodeID string, resource Resource, req RemoveRequest) error {
	if err := requireNode(nodeID); err != nil {
		return err
	}
	if req.ID == "" && req.Name == "" {
		return errors.New("remove request needs an id or a name")
	}
	endpoint := c.resolve(nodePath(nodeID, string(resource), "remove"), nil)
	return c.doJSON(ctx, http.MethodPost, endpoint, req, nil)
}

func (c *BackendClient) Prune(ctx context.Context, nodeID string, resource Resource) (PruneReport, error) {
	if err := requireNode(nodeID); err != nil {
		return PruneReport{}, err
	}
	var report PruneReport
	endpoint := c.resolve(nodePath(nodeID, string(resource), "prune"), nil)
	if err := c.doJSON(ctx, http.MethodPost, endpoint, PruneRequest{All: true}, &report); err != nil {
		return PruneReport{}, err
	}
	return report, nil
}

func listNodeCollection[T any](ctx context.Context, c *BackendClient, nodeID string, resource Resource) (Collection[T], error) {
	if err := requireNode(nodeID); err != nil {
		return Collection[T]{}, err
	}
	var out Collection[T]
	if err := c.doJSON(ctx, http.MethodGet, c.resolve(nodePath(nodeID, string(resource)), nil), nil, &out); err != nil {
		return Collection[T]{}, err
	}
	return out, nil
}

func (c *BackendClient) resolve(path string, query url.Values) string {
	return resolveURL(c.baseURL, path, query)
}

func (c *BackendClient) doJSON(ctx context.Context, method, endpoint string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	c.logRequest(req, resp)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return decodeError(resp.StatusCode, data)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func (c *BackendClient) logRequest(req *http.Request, resp *http.Response) {
	if c.logger == nil {
		return
	}
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.logger(RequestLog{
		Method:    req.Method,
		URL:       req.URL.String(),
		RequestID: req.Header.Get("X-Request-ID"),
		Headers:   req.Header.Clone(),
		Status:    status,
	})
}

// requireNode rejects ids that are empty or would escape /nodes/{id}.
func requireNode(nodeID string) error {
	id := strings.TrimSpace(nodeID)
	switch {
	case id == "":
		return errors.New("node id is required")
	case id == "." || id == ".." || strings.ContainsAny(id, `/\?#`):
		return fmt.Errorf("invalid node id %q", nodeID)
	}
	return nil
}
