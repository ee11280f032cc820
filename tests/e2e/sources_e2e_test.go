package e2e

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosdep-sources/tests/testutil"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := testutil.RepoRoot(t)
	cmd := exec.Command("go", append([]string{"run", "./cmd/rosdep-sources"}, args...)...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestValidateCommandE2E(t *testing.T) {
	out, err := runCLI(t, "validate", "--sources-list-dir", "fixtures/sources.list.d")
	require.NoError(t, err, out)
	assert.Contains(t, out, "validated: 2 sources")
}

func TestUpdateAndListCommandE2E(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("python:\n  ubuntu: python-all\n"))
	}))
	t.Cleanup(server.Close)

	listDir := testutil.WriteSourcesList(t, map[string]string{
		"20-default.list": "yaml " + server.URL + "/rosdep.yaml ubuntu\n",
	})
	cacheDir := filepath.Join(t.TempDir(), "sources.cache")

	out, err := runCLI(t, "update", "--sources-list-dir", listDir, "--sources-cache-dir", cacheDir)
	require.NoError(t, err, out)
	require.FileExists(t, filepath.Join(cacheDir, "index"))

	out, err = runCLI(t, "list", "--sources-cache-dir", cacheDir, "--match", "--os-name", "ubuntu", "--os-codename", "noble")
	require.NoError(t, err, out)
	assert.Contains(t, out, "yaml cache://sources.cache/")
	assert.NotContains(t, out, "(no data)")
}
