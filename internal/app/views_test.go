package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosdep-sources/internal/adapters"
	"rosdep-sources/internal/core"
	"rosdep-sources/internal/types"
)

func TestViews(t *testing.T) {
	service, cacheDir := populatedCache(t)
	service.Platform = stubPlatform{tags: types.PlatformTags{OSName: "ubuntu", OSCodename: "jammy"}}

	// remove one data file: its source stays listed but carries no data
	require.NoError(t, os.Remove(filepath.Join(cacheDir, core.ComputeFilenameHash("http://fake/ubuntu.yaml"))))

	result, err := service.Views(t.Context(), ViewsRequest{SourcesCacheDir: cacheDir})
	require.NoError(t, err)
	require.Len(t, result.Views, 1)
	assert.Equal(t, ViewEntry{
		Resource: adapters.SourcesListResourceKey,
		View:     adapters.SourcesListViewKey,
		Sources:  1,
	}, result.Views[0])
	assert.Equal(t, []string{"ubuntu", "jammy"}, result.MatchTags)
}

func TestViewsColdCache(t *testing.T) {
	service := NewService()
	service.Platform = stubPlatform{tags: types.PlatformTags{OSName: "ubuntu"}}

	result, err := service.Views(t.Context(), ViewsRequest{SourcesCacheDir: t.TempDir()})
	require.NoError(t, err)
	require.Len(t, result.Views, 1)
	assert.Zero(t, result.Views[0].Sources)
}
