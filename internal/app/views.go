package app

import (
	"context"

	"rosdep-sources/internal/adapters"
)

// Views reports the resources the sources list loader provides for this
// platform and how many cached sources with data back each of them.
func (s Service) Views(ctx context.Context, req ViewsRequest) (ViewsResult, error) {
	req.SourcesCacheDir = normalizeDir(req.SourcesCacheDir)
	if err := validateRequest(ctx, req); err != nil {
		return ViewsResult{}, err
	}
	matcher, err := s.defaultMatcher(req.Platform)
	if err != nil {
		return ViewsResult{}, err
	}
	loader, err := adapters.NewDefaultSourcesListLoader(s.Cache, req.SourcesCacheDir, matcher)
	if err != nil {
		return ViewsResult{}, err
	}
	result := ViewsResult{MatchTags: matcher.Tags()}
	for _, resource := range loader.GetLoadableResources() {
		view, err := loader.GetViewKey(resource)
		if err != nil {
			return ViewsResult{}, err
		}
		sources, err := loader.GetSourceData(resource)
		if err != nil {
			return ViewsResult{}, err
		}
		result.Views = append(result.Views, ViewEntry{Resource: resource, View: view, Sources: len(sources)})
	}
	return result, nil
}
