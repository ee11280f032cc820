package types

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// RosdepData is the decoded content of a rosdep source. Only its top-level
// shape (a mapping) is checked; the rules themselves are opaque here.
type RosdepData map[string]any

// DataSource is one configured rosdep feed. Values are compared on
// (Type, URL, Tags); Origin only records where the entry came from.
// RosdepData stays nil until the source content has been loaded.
type DataSource struct {
	Type       SourceType
	URL        string
	Tags       []string
	Origin     string
	RosdepData RosdepData
}

// NewDataSource validates and builds a data source. An empty origin is
// replaced by DefaultOrigin.
func NewDataSource(sourceType string, rawURL string, tags []string, origin string) (DataSource, error) {
	typ := SourceType(sourceType)
	if !typ.Valid() {
		return DataSource{}, invalidDataSourceError(fmt.Errorf("%w: %q", ErrUnknownSourceType, sourceType))
	}
	for _, tag := range tags {
		if tag == "" || strings.ContainsAny(tag, " \t\r\n") {
			return DataSource{}, invalidDataSourceError(fmt.Errorf("%w: %q", ErrInvalidTag, tag))
		}
	}
	if err := validateSourceURL(rawURL); err != nil {
		return DataSource{}, invalidDataSourceError(err)
	}
	if origin == "" {
		origin = DefaultOrigin
	}
	return DataSource{
		Type:   typ,
		URL:    rawURL,
		Tags:   slices.Clone(tags),
		Origin: origin,
	}, nil
}

func validateSourceURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidSourceURL, rawURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: %q has no scheme or host", ErrInvalidSourceURL, rawURL)
	}
	if parsed.Path == "" || parsed.Path == "/" {
		return fmt.Errorf("%w: %q has no path", ErrInvalidSourceURL, rawURL)
	}
	return nil
}

// Equal ignores Origin and RosdepData.
func (s DataSource) Equal(other DataSource) bool {
	return s.Type == other.Type && s.URL == other.URL && slices.Equal(s.Tags, other.Tags)
}

// WithRosdepData returns a copy of s carrying data.
func (s DataSource) WithRosdepData(data RosdepData) DataSource {
	out := s
	out.Tags = slices.Clone(s.Tags)
	out.RosdepData = data
	return out
}

func (s DataSource) HasRosdepData() bool {
	return s.RosdepData != nil
}

// Line renders the source in sources-list syntax.
func (s DataSource) Line() string {
	fields := append([]string{string(s.Type), s.URL}, s.Tags...)
	return strings.Join(fields, " ")
}

func (s DataSource) String() string {
	if s.Origin != "" && s.Origin != DefaultOrigin {
		return "[" + s.Origin + "]:\n" + s.Line()
	}
	return s.Line()
}

type dataSourceYAML struct {
	Type   string    `yaml:"type"`
	URL    string    `yaml:"url"`
	Tags   yaml.Node `yaml:"tags"`
	Origin string    `yaml:"origin,omitempty"`
}

func (s DataSource) MarshalYAML() (any, error) {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return struct {
		Type   string   `yaml:"type"`
		URL    string   `yaml:"url"`
		Tags   []string `yaml:"tags"`
		Origin string   `yaml:"origin,omitempty"`
	}{
		Type:   string(s.Type),
		URL:    s.URL,
		Tags:   tags,
		Origin: s.Origin,
	}, nil
}

// UnmarshalYAML decodes and validates a data source. A scalar tags value
// (tags: ubuntu) is rejected rather than read as a one-element list.
func (s *DataSource) UnmarshalYAML(value *yaml.Node) error {
	var raw dataSourceYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	var tags []string
	switch raw.Tags.Kind {
	case 0:
	case yaml.SequenceNode:
		if err := raw.Tags.Decode(&tags); err != nil {
			return invalidDataSourceError(fmt.Errorf("%w: %v", ErrTagsNotSequence, err))
		}
	case yaml.ScalarNode:
		if raw.Tags.Tag != "!!null" {
			return invalidDataSourceError(fmt.Errorf("%w: got %q", ErrTagsNotSequence, raw.Tags.Value))
		}
	default:
		return invalidDataSourceError(ErrTagsNotSequence)
	}
	source, err := NewDataSource(raw.Type, raw.URL, tags, raw.Origin)
	if err != nil {
		return err
	}
	*s = source
	return nil
}
