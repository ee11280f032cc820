package app

import (
	"context"

	"rosdep-sources/internal/core"
)

// List loads the cached sources, optionally restricted to those matching
// the platform. A cache that was never updated lists nothing.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	req.SourcesCacheDir = normalizeDir(req.SourcesCacheDir)
	if err := validateRequest(ctx, req); err != nil {
		return ListResult{}, err
	}
	sources, err := s.Cache.LoadCached(req.SourcesCacheDir)
	if err != nil {
		return ListResult{}, err
	}
	if !req.Match {
		return ListResult{Sources: sources}, nil
	}
	matcher, err := s.defaultMatcher(req.Platform)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Sources:   matcher.Filter(sources),
		MatchTags: matcher.Tags(),
	}, nil
}

func (s Service) defaultMatcher(req PlatformRequest) (core.DataSourceMatcher, error) {
	platform, err := s.platformFor(req).Detect()
	if err != nil {
		return core.DataSourceMatcher{}, err
	}
	return core.NewDefaultMatcher(platform), nil
}
