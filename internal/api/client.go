package api

import "context"

type Client interface {
	NodeHead(ctx context.Context, nodeID string) (NodeHead, error)
	ListComposeLibrary(ctx context.Context) (Collection[ComposeLibraryItem], error)
	ListImages(ctx context.Context, nodeID string) (Collection[Image], error)
	ListNetworks(ctx context.Context, nodeID string) (Collection[Network], error)
	ListVolumes(ctx context.Context, nodeID string) (Collection[Volume], error)
	Remove(ctx context.Context, nodeID string, resource Resource, req RemoveRequest) error
	Prune(ctx context.Context, nodeID string, resource Resource) (PruneReport, error)
}
