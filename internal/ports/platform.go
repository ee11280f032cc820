package ports

import "rosdep-sources/internal/types"

type PlatformPort interface {
	Detect() (types.PlatformTags, error)
}
