//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"rosdep-sources/internal/app"
	"rosdep-sources/internal/core"
	"rosdep-sources/internal/types"
	"rosdep-sources/tests/testutil"
)

func TestUpdateFromContainerServedRules(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	ctx := t.Context()
	endpoint, cleanup := startRulesServer(ctx, t, map[string]string{
		"base.yaml":  defaultRules,
		"jammy.yaml": jammyRules,
		"list.yaml":  "- not\n- a\n- mapping\n",
	})
	t.Cleanup(cleanup)

	listDir := testutil.WriteSourcesList(t, map[string]string{
		"20-default.list": fmt.Sprintf("yaml %s/base.yaml\nyaml %s/jammy.yaml ubuntu jammy\n", endpoint, endpoint),
		"30-broken.list":  fmt.Sprintf("yaml %s/list.yaml\nyaml %s/missing.yaml ubuntu\n", endpoint, endpoint),
	})
	cacheDir := filepath.Join(t.TempDir(), "sources.cache")

	service := app.NewService()
	result, err := service.Update(ctx, app.UpdateRequest{
		SourcesListDir:  listDir,
		SourcesCacheDir: cacheDir,
		HTTPTimeoutSec:  10,
	})
	require.NoError(t, err)
	require.Len(t, result.Sources, 2)
	require.Len(t, result.Failures, 2)
	for _, failure := range result.Failures {
		assert.ErrorIs(t, failure.Err, types.ErrSourceListDownloadFailure)
	}

	index, err := os.ReadFile(filepath.Join(cacheDir, types.CacheIndexFile))
	require.NoError(t, err)
	expected := types.CacheIndexBanner + "\n" +
		"yaml " + core.ComputeFilenameHash(endpoint+"/base.yaml") + " \n" +
		"yaml " + core.ComputeFilenameHash(endpoint+"/jammy.yaml") + " ubuntu jammy\n"
	assert.Equal(t, expected, string(index))

	listed, err := service.List(ctx, app.ListRequest{SourcesCacheDir: cacheDir})
	require.NoError(t, err)
	require.Len(t, listed.Sources, 2)
	assert.True(t, listed.Sources[1].HasRosdepData())
}

func startRulesServer(ctx context.Context, t *testing.T, files map[string]string) (string, func()) {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "python:3.12-alpine",
		ExposedPorts: []string{"8081/tcp"},
		Cmd:          []string{"python", "-c", buildRulesServerScript(files)},
		WaitingFor:   wait.ForListeningPort("8081/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8081/tcp")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("http://%s:%s/rosdep", host, port.Port())
	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return endpoint, cleanup
}

func buildRulesServerScript(files map[string]string) string {
	var builder strings.Builder
	builder.WriteString("import os\n")
	builder.WriteString("root = \"/srv/www\"\n")
	builder.WriteString("os.makedirs(os.path.join(root, \"rosdep\"), exist_ok=True)\n")
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		builder.WriteString(fmt.Sprintf("with open(os.path.join(root, \"rosdep\", %q), \"w\") as f:\n", name))
		builder.WriteString(fmt.Sprintf("    f.write(%q)\n", files[name]))
	}
	builder.WriteString("os.execvp(\"python\", [\"python\", \"-m\", \"http.server\", \"8081\", \"--directory\", root])\n")
	return builder.String()
}
