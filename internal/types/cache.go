package types

import "strings"

// CacheIndexBanner is the first line of every sources cache index.
const CacheIndexBanner = "#autogenerated by rosdep, do not edit. use 'rosdep update' instead"

// CacheIndexFile is the name of the index inside a sources cache directory.
const CacheIndexFile = "index"

// CacheIndexRecord is one successfully cached source. Hash names the data
// file holding the source content.
type CacheIndexRecord struct {
	Type SourceType
	Hash string
	Tags []string
}

// Line renders the record for the index file. The separator before the
// tags is always written, so an untagged record ends with a space.
func (r CacheIndexRecord) Line() string {
	return string(r.Type) + " " + r.Hash + " " + strings.Join(r.Tags, " ")
}

// CachedSource pairs a synced source with the data file written for it.
type CachedSource struct {
	Source DataSource
	Path   string
}

// SourceFailure records a source that could not be synced.
type SourceFailure struct {
	Source DataSource
	Err    error
}

// PlatformTags describes the running platform for source matching.
type PlatformTags struct {
	OSName         string
	OSCodename     string
	DistroCodename string
}
