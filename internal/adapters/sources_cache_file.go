package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"rosdep-sources/internal/core"
	"rosdep-sources/internal/ports"
	"rosdep-sources/internal/types"
)

const (
	sourcesCacheLockFile = ".lock"
	// cachedSourceURLPrefix addresses cached sources; the index keeps the
	// hash of the original url but not the url itself.
	cachedSourceURLPrefix = "cache://sources.cache/"
)

type SourcesCacheFileAdapter struct{}

func NewSourcesCacheFileAdapter() SourcesCacheFileAdapter {
	return SourcesCacheFileAdapter{}
}

// WriteCacheFile stores data under the hash of url and returns the path.
func (a SourcesCacheFileAdapter) WriteCacheFile(dir string, url string, data types.RosdepData) (string, error) {
	content, err := yaml.Marshal(data)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode rosdep data").
			WithCause(err)
	}
	path := filepath.Join(dir, core.ComputeFilenameHash(url))
	if err := writeFileAtomic(path, content); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write sources cache file").
			WithCause(err)
	}
	return path, nil
}

func (a SourcesCacheFileAdapter) WriteIndex(dir string, records []types.CacheIndexRecord) (string, error) {
	path := filepath.Join(dir, types.CacheIndexFile)
	if err := writeFileAtomic(path, []byte(core.FormatCacheIndex(records))); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write sources cache index").
			WithCause(err)
	}
	return path, nil
}

// ReadIndex returns the records of the cache index. A cache that was never
// written has no index and yields no records.
func (a SourcesCacheFileAdapter) ReadIndex(dir string) ([]types.CacheIndexRecord, error) {
	path := filepath.Join(dir, types.CacheIndexFile)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read sources cache index").
			WithCause(err)
	}
	records, problems := core.ParseCacheIndex(string(content))
	for _, problem := range problems {
		log.Warn().Err(problem).Str("path", path).Msg("skipping sources cache index entry")
	}
	return records, nil
}

// LoadCached rebuilds the cached sources in index order. Cache read
// problems never fail the load: an unreadable index reads as an empty
// cache, and a missing or unreadable data file leaves its source without
// rosdep data.
func (a SourcesCacheFileAdapter) LoadCached(dir string) ([]types.DataSource, error) {
	records, err := a.ReadIndex(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("sources cache index unavailable")
		return nil, nil
	}
	sources := make([]types.DataSource, 0, len(records))
	for _, record := range records {
		path := filepath.Join(dir, record.Hash)
		source, err := types.NewDataSource(string(record.Type), cachedSourceURLPrefix+record.Hash, record.Tags, path)
		if err != nil {
			log.Warn().Err(err).Str("hash", record.Hash).Msg("skipping sources cache index entry")
			continue
		}
		data, err := readCachedRosdepData(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("sources cache data unavailable")
			sources = append(sources, source)
			continue
		}
		sources = append(sources, source.WithRosdepData(data))
	}
	return sources, nil
}

// Lock takes the advisory lock of the cache directory, creating the
// directory when needed. The returned function releases it.
func (a SourcesCacheFileAdapter) Lock(dir string) (func() error, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create sources cache directory").
			WithCause(err)
	}
	lock := flock.New(filepath.Join(dir, sourcesCacheLockFile))
	if err := lock.Lock(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to lock sources cache directory").
			WithCause(err)
	}
	log.Debug().Str("path", lock.Path()).Msg("sources cache locked")
	return lock.Unlock, nil
}

func readCachedRosdepData(path string) (types.RosdepData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeRosdepData(content)
}

// writeFileAtomic writes through a temporary sibling and renames it into
// place, so readers never observe a partial file.
func writeFileAtomic(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

var _ ports.SourcesCachePort = SourcesCacheFileAdapter{}
