package resource

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown resource")

type Kind int

const (
	KindComposeLibrary Kind = iota
	KindImages
	KindNetworks
	KindVolumes
)

// Kinds lists every screen in display order.
var Kinds = []Kind{KindComposeLibrary, KindImages, KindNetworks, KindVolumes}

func (k Kind) String() string {
	switch k {
	case KindComposeLibrary:
		return "Compose Library"
	case KindImages:
		return "Images"
	case KindNetworks:
		return "Networks"
	case KindVolumes:
		return "Volumes"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) Slug() string {
	switch k {
	case KindComposeLibrary:
		return "library"
	case KindImages:
		return "images"
	case KindNetworks:
		return "networks"
	case KindVolumes:
		return "volumes"
	default:
		return ""
	}
}

// NodeScoped reports whether the collection lives under /nodes/{id}.
func (k Kind) NodeScoped() bool {
	return k != KindComposeLibrary
}

func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "library", "lib", "compose", "composelibrary", "compose-library":
		return KindComposeLibrary, nil
	case "images", "image", "img":
		return KindImages, nil
	case "networks", "network", "net":
		return KindNetworks, nil
	case "volumes", "volume", "vol":
		return KindVolumes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}
}

func KindNames() []string {
	names := make([]string, 0, len(Kinds))
	for _, kind := range Kinds {
		names = append(names, kind.Slug())
	}
	return names
}
