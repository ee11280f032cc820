package core

import (
	"strings"

	"github.com/samber/lo"

	"rosdep-sources/internal/types"
)

// DataSourceMatcher selects the sources that apply to a set of platform
// tags. A source matches when every one of its tags is in the set, so an
// untagged source always matches.
type DataSourceMatcher struct {
	tags []string
}

func NewDataSourceMatcher(tags []string) DataSourceMatcher {
	cleaned := lo.Filter(tags, func(tag string, _ int) bool {
		return strings.TrimSpace(tag) != ""
	})
	return DataSourceMatcher{tags: lo.Uniq(cleaned)}
}

// NewDefaultMatcher builds a matcher from the ROS distro codename and the
// detected OS name and codename.
func NewDefaultMatcher(platform types.PlatformTags) DataSourceMatcher {
	return NewDataSourceMatcher([]string{
		platform.DistroCodename,
		platform.OSName,
		platform.OSCodename,
	})
}

func (m DataSourceMatcher) Tags() []string {
	return append([]string(nil), m.tags...)
}

func (m DataSourceMatcher) Matches(source types.DataSource) bool {
	return lo.Every(m.tags, source.Tags)
}

// Filter keeps the matching sources, preserving order.
func (m DataSourceMatcher) Filter(sources []types.DataSource) []types.DataSource {
	return lo.Filter(sources, func(source types.DataSource, _ int) bool {
		return m.Matches(source)
	})
}
