package api

import "encoding/json"

type Resource string

const (
	ResourceImages   Resource = "images"
	ResourceNetworks Resource = "networks"
	ResourceVolumes  Resource = "volumes"
)

// Collection is the list envelope returned by every read endpoint.
// TotalRows is -1 when the backend has no data for the scope.
type Collection[T any] struct {
	Items     []T `json:"items"`
	TotalRows int `json:"totalRows"`
}

func (c Collection[T]) NoData() bool {
	return c.TotalRows == -1
}

type NodeHead struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ComposeLibraryItem struct {
	ProjectName string `json:"projectName"`
	Type        string `json:"type"`
	ID          string `json:"id,omitempty"`
}

const (
	LibraryTypeFilesystem = "filesystem"
	LibraryTypeGitHub     = "github"
)

type Image struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Tag      string `json:"tag"`
	Size     int64  `json:"size"`
	InUse    bool   `json:"inUse"`
	Dangling bool   `json:"dangling"`
}

type Network struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Driver string `json:"driver"`
	Scope  string `json:"scope"`
	InUse  bool   `json:"inUse"`
}

type Volume struct {
	Driver string `json:"driver"`
	Name   string `json:"name"`
	InUse  bool   `json:"inUse"`
}

// RemoveRequest is the body of POST /nodes/{id}/{resource}/remove. Images and
// networks are addressed by ID, volumes by Name; Force is omitted when nil.
type RemoveRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Force *bool  `json:"force,omitempty"`
}

type PruneRequest struct {
	All bool `json:"all"`
}

// PruneReport keeps the deleted entries raw: their shape differs per resource
// and only their count is displayed.
type PruneReport struct {
	ImagesDeleted   []json.RawMessage `json:"imagesDeleted,omitempty"`
	NetworksDeleted []json.RawMessage `json:"networksDeleted,omitempty"`
	VolumesDeleted  []json.RawMessage `json:"volumesDeleted,omitempty"`
	SpaceReclaimed  int64             `json:"spaceReclaimed"`
}

func (r PruneReport) Deleted() int {
	return len(r.ImagesDeleted) + len(r.NetworksDeleted) + len(r.VolumesDeleted)
}

func Force(value bool) *bool {
	return &value
}
