package resource

import (
	"context"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/humanize"
	"github.com/scottbass3/keel/internal/listview"
)

func Images() Descriptor[api.Image] {
	return Descriptor[api.Image]{
		Kind:     KindImages,
		Singular: "image",
		Plural:   "images",
		Spec: listview.Spec[api.Image]{
			Columns: []listview.Column[api.Image]{
				{
					Key: "id", Title: "Id", Width: 14,
					Value: func(i api.Image) listview.Value { return listview.Text(i.ID) },
					Cell:  func(i api.Image) string { return humanize.ShortImageID(i.ID) },
				},
				{
					Key: "name", Title: "Name",
					Value: func(i api.Image) listview.Value { return listview.Text(i.Name) },
				},
				{
					Key: "tag", Title: "Tag", Width: 24,
					Value: func(i api.Image) listview.Value { return listview.Text(i.Tag) },
					Cell:  imageTagCell,
				},
				{
					Key: "status", Title: "Status", Width: 8,
					Value: func(i api.Image) listview.Value { return listview.StatusValue(i.InUse) },
				},
				{
					Key: "size", Title: "Size", Width: 12,
					Value: func(i api.Image) listview.Value { return listview.Number(i.Size) },
					Cell:  func(i api.Image) string { return humanize.BytesToMB(i.Size) },
				},
			},
			DefaultSort: listview.Sort{Key: "name", Order: listview.Ascending},
			Search:      func(i api.Image) string { return i.Name },
			Key:         func(i api.Image) string { return i.ID },
		},
		Load: func(ctx context.Context, client api.Client, nodeID string) (api.Collection[api.Image], error) {
			return client.ListImages(ctx, nodeID)
		},
		Deletable: func(i api.Image) bool { return !i.InUse },
		Label:     func(i api.Image) string { return i.Name },
		Remove: &RemoveAction[api.Image]{
			Resource: api.ResourceImages,
			Request: func(i api.Image) api.RemoveRequest {
				return api.RemoveRequest{ID: i.ID, Force: api.Force(false)}
			},
			Success: "Image deleted.",
		},
		Prune: &PruneAction{
			Resource: api.ResourceImages,
			Summary: func(r api.PruneReport) string {
				if len(r.ImagesDeleted) == 0 {
					return NothingDeleted
				}
				return "Unused images deleted. Space reclaimed: " + humanize.BytesToMB(r.SpaceReclaimed)
			},
		},
	}
}

func imageTagCell(i api.Image) string {
	if i.Dangling {
		return i.Tag + " (Dangling)"
	}
	return i.Tag
}
