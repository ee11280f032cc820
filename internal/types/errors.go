package types

import (
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ErrInvalidSourcesFile is the root of the structural error family: every
// malformed line, unreadable list file and rejected data source matches it
// through errors.Is.
var ErrInvalidSourcesFile = errors.New("invalid sources file")

// ErrInvalidDataSource marks a data source that failed construction.
var ErrInvalidDataSource = fmt.Errorf("%w: invalid data source", ErrInvalidSourcesFile)

var (
	ErrUnknownSourceType = fmt.Errorf("%w: unknown source type", ErrInvalidDataSource)
	ErrTagsNotSequence   = fmt.Errorf("%w: tags must be a list of strings", ErrInvalidDataSource)
	ErrInvalidTag        = fmt.Errorf("%w: invalid tag", ErrInvalidDataSource)
	ErrInvalidSourceURL  = fmt.Errorf("%w: invalid url", ErrInvalidDataSource)
)

// ErrSourceListDownloadFailure matches every fetch failure.
var ErrSourceListDownloadFailure = errors.New("failed to download source list data")

// InvalidSourcesFileError carries the location of a structural failure.
// LineNo is 1-based and zero when the failure is not tied to a line, such
// as an unreadable file.
type InvalidSourcesFileError struct {
	Origin string
	LineNo int
	Line   string
	Err    error
}

func (e *InvalidSourcesFileError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("invalid sources file %s:%d: %q: %v", e.Origin, e.LineNo, e.Line, e.Err)
	}
	return fmt.Sprintf("invalid sources file %s: %v", e.Origin, e.Err)
}

func (e *InvalidSourcesFileError) Unwrap() error {
	return e.Err
}

func (e *InvalidSourcesFileError) Is(target error) bool {
	return target == ErrInvalidSourcesFile
}

// DownloadError reports why the data behind URL could not be used.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

func (e *DownloadError) Is(target error) bool {
	return target == ErrSourceListDownloadFailure
}

// ErrUnknownResource is returned by loaders asked for a resource they do
// not provide.
var ErrUnknownResource = errors.New("unknown resource")

// NewInvalidSourcesFileError reports a structural failure at origin, coded
// as an invalid argument. lineNo is zero when no line is involved.
func NewInvalidSourcesFileError(origin string, lineNo int, line string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid sources file").
		WithCause(&InvalidSourcesFileError{Origin: origin, LineNo: lineNo, Line: line, Err: err})
}

// NewDownloadError reports an unusable source, coded as unavailable.
func NewDownloadError(url string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(fmt.Sprintf("failed to download %s", url)).
		WithCause(&DownloadError{URL: url, Err: err})
}

func invalidDataSourceError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid data source").
		WithCause(err)
}
