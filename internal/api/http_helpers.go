package api

import (
	"net/url"
	"path"
	"strings"
)

// resolveURL appends p to the base path and replaces the query.
func resolveURL(base *url.URL, p string, query url.Values) string {
	resolved := *base
	resolved.Path = strings.TrimSuffix(resolved.Path, "/") + p
	resolved.RawPath = ""
	resolved.RawQuery = ""
	if query != nil {
		resolved.RawQuery = query.Encode()
	}
	return resolved.String()
}

// nodePath builds /nodes/{id}/{parts...}; stray slashes in the id collapse.
func nodePath(nodeID string, parts ...string) string {
	return path.Join(append([]string{"/nodes", strings.TrimSpace(nodeID)}, parts...)...)
}
