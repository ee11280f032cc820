package ports

import (
	"context"

	"rosdep-sources/internal/types"
)

type RosdepFetcherPort interface {
	Download(ctx context.Context, url string) (types.RosdepData, error)
}
