package app

import "rosdep-sources/internal/types"

type UpdateRequest struct {
	SourcesListDir  string `validate:"required"`
	SourcesCacheDir string `validate:"required"`
	HTTPTimeoutSec  int    `validate:"gte=0"`
	// ErrorHandler is called once per source that fails to sync, in
	// addition to the failure being reported in UpdateResult.
	ErrorHandler func(source types.DataSource, err error) `validate:"-"`
}

type UpdateResult struct {
	Sources   []types.CachedSource
	Failures  []types.SourceFailure
	IndexPath string
}

// PlatformRequest overrides detected platform values. Empty fields are
// detected.
type PlatformRequest struct {
	OSName        string
	OSCodename    string
	Distro        string
	OSReleasePath string
}

type ListRequest struct {
	SourcesCacheDir string `validate:"required"`
	Match           bool
	Platform        PlatformRequest
}

type ListResult struct {
	Sources   []types.DataSource
	MatchTags []string
}

type ValidateRequest struct {
	SourcesListDir string `validate:"required"`
}

type ValidateResult struct {
	Sources []types.DataSource
}

type ViewsRequest struct {
	SourcesCacheDir string `validate:"required"`
	Platform        PlatformRequest
}

type ViewEntry struct {
	Resource string
	View     string
	Sources  int
}

type ViewsResult struct {
	Views     []ViewEntry
	MatchTags []string
}
