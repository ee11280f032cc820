package types

type SourceType string

const (
	SourceTypeYAML SourceType = "yaml"
)

// Valid reports whether the source type is one the fetcher can decode.
func (t SourceType) Valid() bool {
	switch t {
	case SourceTypeYAML:
		return true
	default:
		return false
	}
}

// DefaultOrigin labels sources parsed from an in-memory string.
const DefaultOrigin = "<string>"
