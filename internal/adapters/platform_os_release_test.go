package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosdep-sources/internal/types"
)

const ubuntuOSRelease = `PRETTY_NAME="Ubuntu 22.04.4 LTS"
NAME="Ubuntu"
VERSION_ID="22.04"
VERSION="22.04.4 LTS (Jammy Jellyfish)"
VERSION_CODENAME=jammy
ID=ubuntu
ID_LIKE=debian
HOME_URL="https://www.ubuntu.com/"
UBUNTU_CODENAME=jammy
`

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlatformOSReleaseAdapterDetect(t *testing.T) {
	t.Setenv("ROS_DISTRO", "humble")
	path := writeOSRelease(t, ubuntuOSRelease)

	tags, err := NewPlatformOSReleaseAdapter(path, "", "", "").Detect()
	require.NoError(t, err)
	assert.Equal(t, types.PlatformTags{OSName: "ubuntu", OSCodename: "jammy", DistroCodename: "humble"}, tags)
}

func TestPlatformOSReleaseAdapterUbuntuCodenameFallback(t *testing.T) {
	t.Setenv("ROS_DISTRO", "")
	path := writeOSRelease(t, "ID=pop\nUBUNTU_CODENAME=noble\n")

	tags, err := NewPlatformOSReleaseAdapter(path, "", "", "").Detect()
	require.NoError(t, err)
	assert.Equal(t, types.PlatformTags{OSName: "pop", OSCodename: "noble"}, tags)
}

func TestPlatformOSReleaseAdapterOverrides(t *testing.T) {
	t.Setenv("ROS_DISTRO", "humble")
	path := writeOSRelease(t, ubuntuOSRelease)

	tags, err := NewPlatformOSReleaseAdapter(path, "debian", "", "iron").Detect()
	require.NoError(t, err)
	assert.Equal(t, types.PlatformTags{OSName: "debian", OSCodename: "jammy", DistroCodename: "iron"}, tags)

	missing := filepath.Join(t.TempDir(), "missing")
	tags, err = NewPlatformOSReleaseAdapter(missing, "ubuntu", "focal", "").Detect()
	require.NoError(t, err)
	assert.Equal(t, types.PlatformTags{OSName: "ubuntu", OSCodename: "focal", DistroCodename: "humble"}, tags)
}

func TestPlatformOSReleaseAdapterMissingFile(t *testing.T) {
	t.Setenv("ROS_DISTRO", "")
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := NewPlatformOSReleaseAdapter(missing, "", "", "").Detect()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	tags, err := NewPlatformOSReleaseAdapter(missing, "ubuntu", "", "").Detect()
	require.NoError(t, err)
	assert.Equal(t, types.PlatformTags{OSName: "ubuntu"}, tags)
}

func TestNewPlatformOSReleaseAdapterDefaultPath(t *testing.T) {
	assert.Equal(t, defaultOSReleasePath, NewPlatformOSReleaseAdapter("  ", "", "", "").Path)
}
