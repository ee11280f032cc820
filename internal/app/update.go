package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"rosdep-sources/internal/core"
	"rosdep-sources/internal/types"
)

// Update syncs every source of the sources list into the cache. Sources
// that fail to download are reported and skipped; the index is rewritten
// once, listing only the sources synced by this pass.
func (s Service) Update(ctx context.Context, req UpdateRequest) (UpdateResult, error) {
	req.SourcesListDir = normalizeDir(req.SourcesListDir)
	req.SourcesCacheDir = normalizeDir(req.SourcesCacheDir)
	if err := validateRequest(ctx, req); err != nil {
		return UpdateResult{}, err
	}
	sources, err := s.SourcesList.ParseDir(req.SourcesListDir)
	if err != nil {
		return UpdateResult{}, err
	}
	unlock, err := s.Cache.Lock(req.SourcesCacheDir)
	if err != nil {
		return UpdateResult{}, err
	}
	defer func() {
		if err := unlock(); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("dir", req.SourcesCacheDir).Msg("failed to unlock sources cache")
		}
	}()

	fetcher := s.fetcherFor(req.HTTPTimeoutSec)
	result := UpdateResult{}
	records := make([]types.CacheIndexRecord, 0, len(sources))
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return UpdateResult{}, err
		}
		log.Ctx(ctx).Info().Str("url", source.URL).Msg("hit")
		data, err := fetcher.Download(ctx, source.URL)
		if err != nil {
			log.Ctx(ctx).Warn().
				Err(err).
				Str("url", source.URL).
				Str("origin", source.Origin).
				Msg("failed to sync source")
			result.Failures = append(result.Failures, types.SourceFailure{Source: source, Err: err})
			if req.ErrorHandler != nil {
				req.ErrorHandler(source, err)
			}
			continue
		}
		path, err := s.Cache.WriteCacheFile(req.SourcesCacheDir, source.URL, data)
		if err != nil {
			return UpdateResult{}, err
		}
		record := core.NewCacheIndexRecord(source)
		assert.NotEmpty(ctx, record.Hash, "cache index hash must be set")
		records = append(records, record)
		result.Sources = append(result.Sources, types.CachedSource{
			Source: source.WithRosdepData(data),
			Path:   path,
		})
	}

	indexPath, err := s.Cache.WriteIndex(req.SourcesCacheDir, records)
	if err != nil {
		return UpdateResult{}, err
	}
	result.IndexPath = indexPath
	log.Ctx(ctx).Debug().
		Int("synced", len(result.Sources)).
		Int("failed", len(result.Failures)).
		Str("path", indexPath).
		Msg("sources cache updated")
	return result, nil
}
