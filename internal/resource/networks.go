package resource

import (
	"context"
	"fmt"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/humanize"
	"github.com/scottbass3/keel/internal/listview"
)

// SystemNetworks are created and owned by the container runtime and are
// never offered for deletion.
var SystemNetworks = []string{
	"none",
	"bridge",
	"host",
	"ingress",
	"docker_gwbridge",
	"docker_volumes-backup-extension-desktop-extension_default",
}

func IsSystemNetwork(name string) bool {
	for _, reserved := range SystemNetworks {
		if name == reserved {
			return true
		}
	}
	return false
}

func Networks() Descriptor[api.Network] {
	return Descriptor[api.Network]{
		Kind:     KindNetworks,
		Singular: "network",
		Plural:   "networks",
		Spec: listview.Spec[api.Network]{
			Columns: []listview.Column[api.Network]{
				{
					Key: "id", Title: "Id", Width: 14,
					Value: func(n api.Network) listview.Value { return listview.Text(n.ID) },
					Cell:  func(n api.Network) string { return humanize.ShortID(n.ID) },
				},
				{
					Key: "name", Title: "Name",
					Value: func(n api.Network) listview.Value { return listview.Text(n.Name) },
				},
				{
					Key: "driver", Title: "Driver", Width: 10,
					Value: func(n api.Network) listview.Value { return listview.Text(n.Driver) },
				},
				{
					Key: "scope", Title: "Scope", Width: 8,
					Value: func(n api.Network) listview.Value { return listview.Text(n.Scope) },
				},
				{
					Key: "status", Title: "Status", Width: 8,
					Value: func(n api.Network) listview.Value { return listview.StatusValue(n.InUse) },
				},
			},
			DefaultSort: listview.Sort{Key: "name", Order: listview.Ascending},
			Search:      func(n api.Network) string { return n.Name },
			Key:         func(n api.Network) string { return n.ID },
		},
		Load: func(ctx context.Context, client api.Client, nodeID string) (api.Collection[api.Network], error) {
			return client.ListNetworks(ctx, nodeID)
		},
		Deletable: func(n api.Network) bool { return !n.InUse && !IsSystemNetwork(n.Name) },
		Label:     func(n api.Network) string { return n.Name },
		Remove: &RemoveAction[api.Network]{
			Resource: api.ResourceNetworks,
			Request: func(n api.Network) api.RemoveRequest {
				return api.RemoveRequest{ID: n.ID, Force: api.Force(true)}
			},
			Success: "Network deleted.",
		},
		Prune: &PruneAction{
			Resource: api.ResourceNetworks,
			Summary: func(r api.PruneReport) string {
				if len(r.NetworksDeleted) == 0 {
					return NothingDeleted
				}
				return fmt.Sprintf("%d unused networks deleted", len(r.NetworksDeleted))
			},
		},
	}
}
