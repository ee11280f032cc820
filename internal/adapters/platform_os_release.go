package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/subosito/gotenv"

	"rosdep-sources/internal/ports"
	"rosdep-sources/internal/types"
)

const (
	defaultOSReleasePath = "/etc/os-release"
	rosDistroEnv         = "ROS_DISTRO"
)

// PlatformOSReleaseAdapter derives platform tags from an os-release file
// and the ROS_DISTRO environment variable. Non-empty overrides win over
// anything detected.
type PlatformOSReleaseAdapter struct {
	Path       string
	OSName     string
	OSCodename string
	Distro     string
}

func NewPlatformOSReleaseAdapter(path string, osName string, osCodename string, distro string) PlatformOSReleaseAdapter {
	if strings.TrimSpace(path) == "" {
		path = defaultOSReleasePath
	}
	return PlatformOSReleaseAdapter{
		Path:       path,
		OSName:     strings.TrimSpace(osName),
		OSCodename: strings.TrimSpace(osCodename),
		Distro:     strings.TrimSpace(distro),
	}
}

func (a PlatformOSReleaseAdapter) Detect() (types.PlatformTags, error) {
	tags := types.PlatformTags{
		OSName:         a.OSName,
		OSCodename:     a.OSCodename,
		DistroCodename: a.Distro,
	}
	if tags.DistroCodename == "" {
		tags.DistroCodename = strings.TrimSpace(os.Getenv(rosDistroEnv))
	}
	if tags.OSName != "" && tags.OSCodename != "" {
		return tags, nil
	}
	release, err := gotenv.Read(a.Path)
	if err != nil {
		if tags.OSName != "" {
			return tags, nil
		}
		return types.PlatformTags{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to detect operating system").
			WithCause(err)
	}
	if tags.OSName == "" {
		tags.OSName = strings.ToLower(strings.TrimSpace(release["ID"]))
	}
	if tags.OSCodename == "" {
		tags.OSCodename = osReleaseCodename(release)
	}
	return tags, nil
}

func osReleaseCodename(release gotenv.Env) string {
	for _, key := range []string{"VERSION_CODENAME", "UBUNTU_CODENAME"} {
		if value := strings.TrimSpace(release[key]); value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}

var _ ports.PlatformPort = PlatformOSReleaseAdapter{}
