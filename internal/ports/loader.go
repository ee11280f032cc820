package ports

import "rosdep-sources/internal/types"

// ResourceLoaderPort is implemented by loaders that expose named resources
// and the views they feed.
type ResourceLoaderPort interface {
	GetLoadableResources() []string
	GetLoadableViews() []string
	GetViewKey(resource string) (string, error)
	GetSourceData(resource string) ([]types.DataSource, error)
}
