package cli

import (
	"github.com/spf13/cobra"

	"rosdep-sources/internal/app"
)

func newAppService() app.Service {
	return app.NewService()
}

func sourcesListDir(cmd *cobra.Command) string {
	return resolveString(cmd, stringFlag(cmd, "sources-list-dir"), "sources_list_dir", "sources-list-dir")
}

func sourcesCacheDir(cmd *cobra.Command) string {
	return resolveString(cmd, stringFlag(cmd, "sources-cache-dir"), "sources_cache_dir", "sources-cache-dir")
}

func platformRequest(cmd *cobra.Command) app.PlatformRequest {
	return app.PlatformRequest{
		OSName:        resolveString(cmd, stringFlag(cmd, "os-name"), "os_name", "os-name"),
		OSCodename:    resolveString(cmd, stringFlag(cmd, "os-codename"), "os_codename", "os-codename"),
		Distro:        resolveString(cmd, stringFlag(cmd, "ros-distro"), "ros_distro", "ros-distro"),
		OSReleasePath: resolveString(cmd, stringFlag(cmd, "os-release"), "os_release_path", "os-release"),
	}
}

// stringFlag reads a local or inherited flag; missing flags read as "".
func stringFlag(cmd *cobra.Command, name string) string {
	if cmd == nil {
		return ""
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Value.String()
	}
	if flag := cmd.InheritedFlags().Lookup(name); flag != nil {
		return flag.Value.String()
	}
	return ""
}
