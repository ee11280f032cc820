package ports

import "rosdep-sources/internal/types"

type SourcesListPort interface {
	ParseFile(path string) ([]types.DataSource, error)
	ParseDir(dir string) ([]types.DataSource, error)
}

type SourcesCachePort interface {
	WriteCacheFile(dir string, url string, data types.RosdepData) (string, error)
	WriteIndex(dir string, records []types.CacheIndexRecord) (string, error)
	ReadIndex(dir string) ([]types.CacheIndexRecord, error)
	LoadCached(dir string) ([]types.DataSource, error)
	Lock(dir string) (func() error, error)
}
