package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"rosdep-sources/internal/core"
	"rosdep-sources/internal/ports"
	"rosdep-sources/internal/types"
)

const sourcesListSuffix = ".list"

type SourcesListFileAdapter struct{}

func NewSourcesListFileAdapter() SourcesListFileAdapter {
	return SourcesListFileAdapter{}
}

// ParseFile parses one sources list file. The path becomes the origin of
// every source it declares.
func (a SourcesListFileAdapter) ParseFile(path string) ([]types.DataSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewInvalidSourcesFileError(path, 0, "", err)
	}
	return core.ParseSourcesData(string(data), path)
}

// ParseDir parses every *.list file of dir in lexicographic filename
// order. A missing directory yields no sources.
func (a SourcesListFileAdapter) ParseDir(dir string) ([]types.DataSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("dir", dir).Msg("sources list directory does not exist")
			return nil, nil
		}
		return nil, types.NewInvalidSourcesFileError(dir, 0, "", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sourcesListSuffix) {
			continue
		}
		// Symlinks are followed; a dangling one is left for ParseFile to report.
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil && info.IsDir() {
				continue
			}
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var sources []types.DataSource
	for _, name := range names {
		path := filepath.Join(dir, name)
		parsed, err := a.ParseFile(path)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Int("sources", len(parsed)).Msg("sources list parsed")
		sources = append(sources, parsed...)
	}
	return sources, nil
}

var _ ports.SourcesListPort = SourcesListFileAdapter{}
