package core

import (
	"errors"
	"strings"

	"rosdep-sources/internal/types"
)

var errShortSourcesLine = errors.New("expected '<type> <url> [tags...]'")

// ParseSourcesData parses sources-list text. Blank lines and lines starting
// with '#' are skipped; every other line becomes one data source stamped
// with origin, in file order. An empty origin means types.DefaultOrigin.
func ParseSourcesData(data string, origin string) ([]types.DataSource, error) {
	if origin == "" {
		origin = types.DefaultOrigin
	}
	var sources []types.DataSource
	for i, raw := range strings.Split(data, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		source, err := parseSourcesLine(line, origin)
		if err != nil {
			return nil, types.NewInvalidSourcesFileError(origin, lineNo, line, err)
		}
		sources = append(sources, source)
	}
	return sources, nil
}

func parseSourcesLine(line string, origin string) (types.DataSource, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return types.DataSource{}, errShortSourcesLine
	}
	var tags []string
	if len(fields) > 2 {
		tags = fields[2:]
	}
	return types.NewDataSource(fields[0], fields[1], tags, origin)
}
