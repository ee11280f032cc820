package core

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"rosdep-sources/internal/types"
)

// ComputeFilenameHash names the cache data file for url. It hashes the url
// itself, not the content, so a re-sync overwrites the same file.
func ComputeFilenameHash(url string) string {
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}

// NewCacheIndexRecord describes source as stored in the cache index.
func NewCacheIndexRecord(source types.DataSource) types.CacheIndexRecord {
	return types.CacheIndexRecord{
		Type: source.Type,
		Hash: ComputeFilenameHash(source.URL),
		Tags: append([]string(nil), source.Tags...),
	}
}

// FormatCacheIndex renders the banner followed by one line per record.
func FormatCacheIndex(records []types.CacheIndexRecord) string {
	var builder strings.Builder
	builder.WriteString(types.CacheIndexBanner)
	builder.WriteString("\n")
	for _, record := range records {
		builder.WriteString(record.Line())
		builder.WriteString("\n")
	}
	return builder.String()
}

// ParseCacheIndex reads index content in file order. Lines that cannot be
// decoded are returned as errors next to the records that could, so a
// damaged index degrades instead of hiding every cached source.
func ParseCacheIndex(content string) ([]types.CacheIndexRecord, []error) {
	var records []types.CacheIndexRecord
	var problems []error
	for i, raw := range strings.Split(content, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			problems = append(problems, fmt.Errorf("index line %d: expected '<type> <hash> [tags...]'", lineNo))
			continue
		}
		typ := types.SourceType(fields[0])
		if !typ.Valid() {
			problems = append(problems, fmt.Errorf("index line %d: %w: %q", lineNo, types.ErrUnknownSourceType, fields[0]))
			continue
		}
		if _, err := hex.DecodeString(fields[1]); err != nil {
			problems = append(problems, fmt.Errorf("index line %d: malformed hash %q", lineNo, fields[1]))
			continue
		}
		var tags []string
		if len(fields) > 2 {
			tags = fields[2:]
		}
		records = append(records, types.CacheIndexRecord{Type: typ, Hash: fields[1], Tags: tags})
	}
	return records, problems
}
