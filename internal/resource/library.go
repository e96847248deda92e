package resource

import (
	"context"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/listview"
)

// ComposeLibrary is a small catalog, so it has no search and no destructive
// actions; rows open their edit page instead.
func ComposeLibrary() Descriptor[api.ComposeLibraryItem] {
	return Descriptor[api.ComposeLibraryItem]{
		Kind:     KindComposeLibrary,
		Singular: "library project",
		Plural:   "library projects",
		Spec: listview.Spec[api.ComposeLibraryItem]{
			Columns: []listview.Column[api.ComposeLibraryItem]{
				{
					Key: "projectName", Title: "Library Project Name",
					Value: func(i api.ComposeLibraryItem) listview.Value { return listview.Text(i.ProjectName) },
				},
				{
					Key: "type", Title: "Type", Width: 12,
					Value: func(i api.ComposeLibraryItem) listview.Value { return listview.Text(i.Type) },
					Cell:  func(i api.ComposeLibraryItem) string { return LibraryTypeLabel(i.Type) },
				},
			},
			DefaultSort: listview.Sort{Key: "projectName", Order: listview.Ascending},
			Key:         LibraryItemKey,
		},
		Load: func(ctx context.Context, client api.Client, _ string) (api.Collection[api.ComposeLibraryItem], error) {
			return client.ListComposeLibrary(ctx)
		},
		Label: func(i api.ComposeLibraryItem) string { return i.ProjectName },
		Route: LibraryEditRoute,
	}
}

func LibraryTypeLabel(kind string) string {
	switch kind {
	case api.LibraryTypeFilesystem:
		return "File System"
	case api.LibraryTypeGitHub:
		return "GitHub"
	default:
		return ""
	}
}

// LibraryItemKey identifies filesystem projects by name and GitHub projects
// by id.
func LibraryItemKey(i api.ComposeLibraryItem) string {
	if i.Type == api.LibraryTypeGitHub {
		return i.ID
	}
	return i.ProjectName
}

func LibraryEditRoute(i api.ComposeLibraryItem) (string, bool) {
	switch i.Type {
	case api.LibraryTypeFilesystem:
		if i.ProjectName == "" {
			return "", false
		}
		return "/composelibrary/" + i.Type + "/" + i.ProjectName + "/edit", true
	case api.LibraryTypeGitHub:
		if i.ID == "" {
			return "", false
		}
		return "/composelibrary/" + i.Type + "/" + i.ID + "/edit", true
	default:
		return "", false
	}
}

func LibraryCreateRoute(kind string) (string, bool) {
	switch kind {
	case api.LibraryTypeFilesystem, api.LibraryTypeGitHub:
		return "/composelibrary/" + kind + "/create", true
	default:
		return "", false
	}
}
