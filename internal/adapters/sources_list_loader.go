package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosdep-sources/internal/core"
	"rosdep-sources/internal/ports"
	"rosdep-sources/internal/types"
)

const (
	SourcesListResourceKey = "sources.list"
	SourcesListViewKey     = "rosdep.sources"
)

// SourcesListLoader exposes the cached sources as the single
// "sources.list" resource feeding the "rosdep.sources" view.
type SourcesListLoader struct {
	sources []types.DataSource
}

func NewSourcesListLoader(sources []types.DataSource) SourcesListLoader {
	return SourcesListLoader{sources: append([]types.DataSource(nil), sources...)}
}

// NewDefaultSourcesListLoader loads the cached sources of cacheDir that
// match the platform.
func NewDefaultSourcesListLoader(cache ports.SourcesCachePort, cacheDir string, matcher core.DataSourceMatcher) (SourcesListLoader, error) {
	cached, err := cache.LoadCached(cacheDir)
	if err != nil {
		return SourcesListLoader{}, err
	}
	matched := matcher.Filter(cached)
	log.Debug().
		Str("dir", cacheDir).
		Int("cached", len(cached)).
		Int("matched", len(matched)).
		Msg("sources list loader initialized")
	return NewSourcesListLoader(matched), nil
}

func (l SourcesListLoader) Sources() []types.DataSource {
	return append([]types.DataSource(nil), l.sources...)
}

func (l SourcesListLoader) GetLoadableResources() []string {
	return []string{SourcesListResourceKey}
}

func (l SourcesListLoader) GetLoadableViews() []string {
	return []string{SourcesListViewKey}
}

func (l SourcesListLoader) GetViewKey(resource string) (string, error) {
	if resource != SourcesListResourceKey {
		return "", unknownResourceError(resource)
	}
	return SourcesListViewKey, nil
}

// GetSourceData returns the sources of resource that carry rosdep data.
func (l SourcesListLoader) GetSourceData(resource string) ([]types.DataSource, error) {
	if resource != SourcesListResourceKey {
		return nil, unknownResourceError(resource)
	}
	var loaded []types.DataSource
	for _, source := range l.sources {
		if source.HasRosdepData() {
			loaded = append(loaded, source)
		}
	}
	return loaded, nil
}

func unknownResourceError(resource string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("loader does not provide resource %q", resource)).
		WithCause(fmt.Errorf("%w: %q", types.ErrUnknownResource, resource))
}

var _ ports.ResourceLoaderPort = SourcesListLoader{}
