package resource

import (
	"context"
	"fmt"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/humanize"
	"github.com/scottbass3/keel/internal/listview"
)

func Volumes() Descriptor[api.Volume] {
	return Descriptor[api.Volume]{
		Kind:     KindVolumes,
		Singular: "volume",
		Plural:   "volumes",
		Spec: listview.Spec[api.Volume]{
			Columns: []listview.Column[api.Volume]{
				{
					Key: "driver", Title: "Driver", Width: 10,
					Value: func(v api.Volume) listview.Value { return listview.Text(v.Driver) },
				},
				{
					Key: "name", Title: "Name",
					Value: func(v api.Volume) listview.Value { return listview.Text(v.Name) },
				},
				{
					Key: "status", Title: "Status", Width: 8,
					Value: func(v api.Volume) listview.Value { return listview.StatusValue(v.InUse) },
				},
			},
			DefaultSort: listview.Sort{Key: "name", Order: listview.Ascending},
			Search:      func(v api.Volume) string { return v.Name },
			Key:         func(v api.Volume) string { return v.Name },
		},
		Load: func(ctx context.Context, client api.Client, nodeID string) (api.Collection[api.Volume], error) {
			return client.ListVolumes(ctx, nodeID)
		},
		Deletable: func(v api.Volume) bool { return !v.InUse },
		Label:     func(v api.Volume) string { return v.Name },
		Remove: &RemoveAction[api.Volume]{
			Resource: api.ResourceVolumes,
			Request: func(v api.Volume) api.RemoveRequest {
				return api.RemoveRequest{Name: v.Name}
			},
			Success: "Volume deleted.",
		},
		Prune: &PruneAction{
			Resource: api.ResourceVolumes,
			Summary: func(r api.PruneReport) string {
				if len(r.VolumesDeleted) == 0 {
					return NothingDeleted
				}
				return fmt.Sprintf("%d unused volumes deleted. Space reclaimed: %s",
					len(r.VolumesDeleted), humanize.BytesToMB(r.SpaceReclaimed))
			},
		},
	}
}
