package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rosdep-sources/internal/types"
)

const defaultRosdepYAML = `python:
  ubuntu: python-all
  debian: python
`

func newRulesServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/rosdep.yaml", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(defaultRosdepYAML))
	})
	mux.HandleFunc("/ubuntu.yaml", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("boost:\n  ubuntu: libboost-all-dev\n"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// writeSourcesList creates a sources.list.d directory holding one file per
// entry of files.
func writeSourcesList(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "sources.list.d")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

type stubPlatform struct {
	tags types.PlatformTags
	err  error
}

func (p stubPlatform) Detect() (types.PlatformTags, error) {
	return p.tags, p.err
}

type countingFetcher struct {
	calls []string
	data  map[string]types.RosdepData
}

func (f *countingFetcher) Download(_ context.Context, url string) (types.RosdepData, error) {
	f.calls = append(f.calls, url)
	if data, ok := f.data[url]; ok {
		return data, nil
	}
	return nil, types.NewDownloadError(url, os.ErrNotExist)
}
